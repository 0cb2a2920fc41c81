package tile

import (
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/types"
)

type slotInfo struct {
	insertTxn types.TxnID
	occupied  bool
	committed bool
	deleted   bool
}

// TileGroupHeader keeps per slot occupancy and transaction bookkeeping for
// one tile group. A slot becomes visible to scanners only after its column
// values are fully written and SetSlotOccupied has run; reservation and
// finalization are separate steps so a scan never observes a half written
// row.
type TileGroupHeader struct {
	latch    common.ReaderWriterLatch
	capacity uint32
	nextSlot uint32
	slots    []slotInfo
}

func NewTileGroupHeader(capacity uint32) *TileGroupHeader {
	return &TileGroupHeader{
		latch:    common.NewRWLatch(),
		capacity: capacity,
		slots:    make([]slotInfo, capacity),
	}
}

// GetNextEmptySlot reserves the next free slot. The second return value is
// false when the group is full. The reserved slot stays invisible until
// SetSlotOccupied marks it.
func (h *TileGroupHeader) GetNextEmptySlot() (uint32, bool) {
	h.latch.WLock()
	defer h.latch.WUnlock()
	if h.nextSlot >= h.capacity {
		return 0, false
	}
	slot := h.nextSlot
	h.nextSlot++
	return slot, true
}

// SetSlotOccupied finalizes a reserved slot, recording the inserting
// transaction and making the slot observable.
func (h *TileGroupHeader) SetSlotOccupied(slot uint32, txnID types.TxnID) {
	h.latch.WLock()
	defer h.latch.WUnlock()
	h.slots[slot].insertTxn = txnID
	h.slots[slot].occupied = true
}

func (h *TileGroupHeader) IsOccupied(slot uint32) bool {
	h.latch.RLock()
	defer h.latch.RUnlock()
	return slot < h.capacity && h.slots[slot].occupied
}

func (h *TileGroupHeader) GetInsertTxn(slot uint32) types.TxnID {
	h.latch.RLock()
	defer h.latch.RUnlock()
	if !h.slots[slot].occupied {
		return types.InvalidTxnID
	}
	return h.slots[slot].insertTxn
}

func (h *TileGroupHeader) SetCommitted(slot uint32, committed bool) {
	h.latch.WLock()
	defer h.latch.WUnlock()
	h.slots[slot].committed = committed
}

func (h *TileGroupHeader) IsCommitted(slot uint32) bool {
	h.latch.RLock()
	defer h.latch.RUnlock()
	return h.slots[slot].committed
}

func (h *TileGroupHeader) SetDeleted(slot uint32, deleted bool) {
	h.latch.WLock()
	defer h.latch.WUnlock()
	h.slots[slot].deleted = deleted
}

func (h *TileGroupHeader) IsDeleted(slot uint32) bool {
	h.latch.RLock()
	defer h.latch.RUnlock()
	return h.slots[slot].deleted
}

// AllocatedSlotCount returns the number of reserved slots, occupied or not.
func (h *TileGroupHeader) AllocatedSlotCount() uint32 {
	h.latch.RLock()
	defer h.latch.RUnlock()
	return h.nextSlot
}

// GetActiveTupleCount counts occupied, non deleted slots.
func (h *TileGroupHeader) GetActiveTupleCount() uint32 {
	h.latch.RLock()
	defer h.latch.RUnlock()
	var count uint32
	for i := uint32(0); i < h.nextSlot; i++ {
		if h.slots[i].occupied && !h.slots[i].deleted {
			count++
		}
	}
	return count
}

func (h *TileGroupHeader) Capacity() uint32 { return h.capacity }
