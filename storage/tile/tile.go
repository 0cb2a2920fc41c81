package tile

import (
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/backend"
	"github.com/mosaicdb/mosaicdb/types"
)

// Tile is a contiguous column major buffer for a subset of columns over a
// fixed number of row slots. Column i occupies the region
// [columnOffsets[i], columnOffsets[i] + capacity * stride(i)) and the value
// of (column i, slot s) starts at columnOffsets[i] + s * stride(i).
//
// Capacity alignment across the tiles of one tile group is what makes a
// single slot index valid in every tile of the group.
type Tile struct {
	schema        *schema.Schema
	capacity      uint32
	data          []byte
	columnOffsets []uint32
	backend       backend.Backend
}

// NewTile allocates storage for the given column subset and slot capacity
// from the backend. Returns backend.ErrAllocation when the backend cannot
// provide the buffer.
func NewTile(sch *schema.Schema, capacity uint32, be backend.Backend) (*Tile, error) {
	size := sch.Length() * capacity
	data, err := be.Allocate(size)
	if err != nil {
		return nil, err
	}
	offsets := make([]uint32, sch.GetColumnCount())
	var off uint32
	for i := uint32(0); i < sch.GetColumnCount(); i++ {
		offsets[i] = off
		off += sch.GetColumn(i).FixedLength() * capacity
	}
	return &Tile{
		schema:        sch,
		capacity:      capacity,
		data:          data,
		columnOffsets: offsets,
		backend:       be,
	}, nil
}

func (t *Tile) GetSchema() *schema.Schema { return t.schema }

func (t *Tile) Capacity() uint32 { return t.capacity }

func (t *Tile) slotLocation(colIdx uint32, slot uint32) uint32 {
	common.Assert(colIdx < t.schema.GetColumnCount(), "tile column index %d out of range", colIdx)
	common.Assert(slot < t.capacity, "tile slot %d beyond capacity %d", slot, t.capacity)
	return t.columnOffsets[colIdx] + slot*t.schema.GetColumn(colIdx).FixedLength()
}

// SetValue serializes the value into the slot of the given column.
func (t *Tile) SetValue(colIdx uint32, slot uint32, value types.Value) {
	loc := t.slotLocation(colIdx, slot)
	copy(t.data[loc:], value.Serialize())
}

// GetValue decodes the value stored at the slot of the given column.
func (t *Tile) GetValue(colIdx uint32, slot uint32) types.Value {
	loc := t.slotLocation(colIdx, slot)
	return types.NewValueFromBytes(t.data[loc:], t.schema.GetColumn(colIdx).GetType())
}

// Free returns the tile's buffer to the backend. The tile must not be used
// afterwards.
func (t *Tile) Free() {
	if t.data != nil {
		t.backend.Free(t.data)
		t.data = nil
	}
}
