package backend

import "errors"

// ErrAllocation is returned when the backend cannot satisfy an allocation
// request. Fatal to the operation that requested the storage.
var ErrAllocation = errors.New("backend cannot satisfy allocation request")

// Backend hands out raw buffers for physical tile storage.
type Backend interface {
	Allocate(size uint32) ([]byte, error)
	Free(buf []byte)
	AllocatedBytes() int64
}
