package tile

import (
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/types"
)

// ColumnLocator resolves a table schema column ordinal to its physical
// home inside a tile group: which tile, and which column of that tile.
type ColumnLocator struct {
	TileOffset   uint32
	ColumnOffset uint32
}

// TileGroup is one vertical partition instance: an ordered set of tiles
// whose column subsets partition the full table schema, all sized to the
// same slot capacity, plus the occupancy header.
//
// The canonical column id rule: table schema ordinals are assigned left to
// right across the partitioning scheme at creation time, so column id c of
// the table resolves to the same locator for the lifetime of the group.
type TileGroup struct {
	id       types.TileGroupID
	tiles    []*Tile
	header   *TileGroupHeader
	locators []ColumnLocator
	capacity uint32
}

func (g *TileGroup) ID() types.TileGroupID { return g.id }

func (g *TileGroup) GetHeader() *TileGroupHeader { return g.header }

func (g *TileGroup) GetTileCount() uint32 { return uint32(len(g.tiles)) }

func (g *TileGroup) GetTile(tileOffset uint32) *Tile { return g.tiles[tileOffset] }

func (g *TileGroup) Capacity() uint32 { return g.capacity }

// ColumnCount returns the number of table schema columns stored across all
// tiles of this group.
func (g *TileGroup) ColumnCount() uint32 { return uint32(len(g.locators)) }

// LocateColumn maps a table schema column ordinal to its tile and the
// column offset within that tile.
func (g *TileGroup) LocateColumn(tableColID uint32) ColumnLocator {
	common.Assert(tableColID < uint32(len(g.locators)),
		"column id %d outside tile group layout of %d columns", tableColID, len(g.locators))
	return g.locators[tableColID]
}

// GetValue reads the value of a table schema column at the given slot.
func (g *TileGroup) GetValue(tableColID uint32, slot uint32) types.Value {
	loc := g.LocateColumn(tableColID)
	return g.tiles[loc.TileOffset].GetValue(loc.ColumnOffset, slot)
}

// SetValue writes the value of a table schema column at the given slot.
func (g *TileGroup) SetValue(tableColID uint32, slot uint32, value types.Value) {
	loc := g.LocateColumn(tableColID)
	g.tiles[loc.TileOffset].SetValue(loc.ColumnOffset, slot, value)
}

// InsertTuple reserves the next free slot, writes every column value, then
// marks the slot occupied by txnID. Returns false when the group is full.
func (g *TileGroup) InsertTuple(values []types.Value, txnID types.TxnID) (uint32, bool) {
	common.Assert(uint32(len(values)) == g.ColumnCount(),
		"tuple width %d does not match tile group layout of %d columns", len(values), g.ColumnCount())
	slot, ok := g.header.GetNextEmptySlot()
	if !ok {
		return 0, false
	}
	for colID, value := range values {
		g.SetValue(uint32(colID), slot, value)
	}
	g.header.SetSlotOccupied(slot, txnID)
	return slot, true
}

// Free releases the storage of every tile in the group. The caller must
// guarantee no logical tile still borrows from this group.
func (g *TileGroup) Free() {
	for _, t := range g.tiles {
		t.Free()
	}
}

// GetTileSchemas returns the vertical partitioning scheme of this group.
func (g *TileGroup) GetTileSchemas() []*schema.Schema {
	schemas := make([]*schema.Schema, 0, len(g.tiles))
	for _, t := range g.tiles {
		schemas = append(schemas, t.GetSchema())
	}
	return schemas
}
