package index

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/container/hash"
	"github.com/mosaicdb/mosaicdb/types"
)

// HashTableIndex is an in memory hash index. Each murmur3 hashed key maps
// to a set of row locations; duplicate keys accumulate.
type HashTableIndex struct {
	metadata *IndexMetadata
	latch    common.ReaderWriterLatch
	buckets  map[uint32]mapset.Set[types.RID]
}

func NewHashTableIndex(metadata *IndexMetadata) *HashTableIndex {
	return &HashTableIndex{
		metadata: metadata,
		latch:    common.NewRWLatch(),
		buckets:  make(map[uint32]mapset.Set[types.RID]),
	}
}

func (idx *HashTableIndex) GetMetadata() *IndexMetadata { return idx.metadata }

func (idx *HashTableIndex) InsertEntry(key []types.Value, rid types.RID) {
	h := hash.HashKey(key)
	idx.latch.WLock()
	defer idx.latch.WUnlock()
	bucket, ok := idx.buckets[h]
	if !ok {
		bucket = mapset.NewThreadUnsafeSet[types.RID]()
		idx.buckets[h] = bucket
	}
	bucket.Add(rid)
}

func (idx *HashTableIndex) ScanKey(key []types.Value) []types.RID {
	h := hash.HashKey(key)
	idx.latch.RLock()
	defer idx.latch.RUnlock()
	bucket, ok := idx.buckets[h]
	if !ok {
		return nil
	}
	return bucket.ToSlice()
}

func (idx *HashTableIndex) DeleteEntry(key []types.Value, rid types.RID) {
	h := hash.HashKey(key)
	idx.latch.WLock()
	defer idx.latch.WUnlock()
	if bucket, ok := idx.buckets[h]; ok {
		bucket.Remove(rid)
		if bucket.Cardinality() == 0 {
			delete(idx.buckets, h)
		}
	}
}
