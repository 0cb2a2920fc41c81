package index

import (
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/container/hash"
	"github.com/mosaicdb/mosaicdb/types"
)

// UniqHashTableIndex keeps at most one location per key; inserting an
// existing key replaces the previous entry.
type UniqHashTableIndex struct {
	metadata *IndexMetadata
	latch    common.ReaderWriterLatch
	buckets  map[uint32]types.RID
}

func NewUniqHashTableIndex(metadata *IndexMetadata) *UniqHashTableIndex {
	return &UniqHashTableIndex{
		metadata: metadata,
		latch:    common.NewRWLatch(),
		buckets:  make(map[uint32]types.RID),
	}
}

func (idx *UniqHashTableIndex) GetMetadata() *IndexMetadata { return idx.metadata }

func (idx *UniqHashTableIndex) InsertEntry(key []types.Value, rid types.RID) {
	h := hash.HashKey(key)
	idx.latch.WLock()
	defer idx.latch.WUnlock()
	idx.buckets[h] = rid
}

func (idx *UniqHashTableIndex) ScanKey(key []types.Value) []types.RID {
	h := hash.HashKey(key)
	idx.latch.RLock()
	defer idx.latch.RUnlock()
	if rid, ok := idx.buckets[h]; ok {
		return []types.RID{rid}
	}
	return nil
}

func (idx *UniqHashTableIndex) DeleteEntry(key []types.Value, rid types.RID) {
	h := hash.HashKey(key)
	idx.latch.WLock()
	defer idx.latch.WUnlock()
	if existing, ok := idx.buckets[h]; ok && existing == rid {
		delete(idx.buckets, h)
	}
}
