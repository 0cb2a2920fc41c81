package backend

import (
	"github.com/dsnet/golib/memfile"

	"github.com/mosaicdb/mosaicdb/common"
)

// MemoryBackend serves allocations out of per-buffer memory files and
// enforces an overall capacity. Each buffer is sized and zero filled by
// growing an empty memory file, and the file handles are the accounting
// source of truth; freeing truncates the file away. Exceeding the
// capacity yields ErrAllocation with the backend state unchanged.
type MemoryBackend struct {
	latch    common.ReaderWriterLatch
	capacity int64
	files    []*memfile.File
}

func NewMemoryBackend(capacity int64) *MemoryBackend {
	return &MemoryBackend{
		latch:    common.NewRWLatch(),
		capacity: capacity,
	}
}

func (b *MemoryBackend) Allocate(size uint32) ([]byte, error) {
	b.latch.WLock()
	defer b.latch.WUnlock()
	if b.allocated()+int64(size) > b.capacity {
		return nil, ErrAllocation
	}
	// Growing from empty zero fills the buffer. The file never grows
	// again afterwards, so the returned slice stays valid for the
	// buffer's whole lifetime.
	f := memfile.New(nil)
	if err := f.Truncate(int64(size)); err != nil {
		return nil, ErrAllocation
	}
	b.files = append(b.files, f)
	return f.Bytes(), nil
}

func (b *MemoryBackend) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	b.latch.WLock()
	defer b.latch.WUnlock()
	for i, f := range b.files {
		fb := f.Bytes()
		if len(fb) == len(buf) && &fb[0] == &buf[0] {
			f.Truncate(0)
			b.files = append(b.files[:i], b.files[i+1:]...)
			return
		}
	}
}

func (b *MemoryBackend) AllocatedBytes() int64 {
	b.latch.RLock()
	defer b.latch.RUnlock()
	return b.allocated()
}

// allocated sums the live file sizes. Callers hold the latch.
func (b *MemoryBackend) allocated() int64 {
	var total int64
	for _, f := range b.files {
		total += int64(len(f.Bytes()))
	}
	return total
}
