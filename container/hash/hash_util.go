package hash

import (
	"github.com/spaolacci/murmur3"

	"github.com/mosaicdb/mosaicdb/types"
)

// HashKey folds the serialized form of every key value into one murmur3
// hash. Values serialize deterministically, so equal keys always collide
// onto the same bucket.
func HashKey(values []types.Value) uint32 {
	h := murmur3.New32()
	for _, v := range values {
		h.Write(v.Serialize())
	}
	return h.Sum32()
}
