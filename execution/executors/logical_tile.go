package executors

import (
	"errors"

	"github.com/mosaicdb/mosaicdb/catalog/column"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/tile"
	"github.com/mosaicdb/mosaicdb/types"
)

// ErrIndexOutOfRange is returned for logical row or column indexes beyond
// the tile's extents. A caller bug, never recovered from.
var ErrIndexOutOfRange = errors.New("logical tile index out of range")

type columnSource int

const (
	sourceBorrowed columnSource = iota
	sourceOwned
)

// logicalColumn resolves one logical column position to physical storage:
// either borrowed from a tile group's tile, or one of the tile's own
// freshly materialized tiles. Exactly one of the two, never both.
type logicalColumn struct {
	source    columnSource
	baseTile  *tile.Tile // borrowed storage, not owned by the logical tile
	ownedIdx  int        // index into ownedTiles when source == sourceOwned
	colOffset uint32     // column position within the resolved tile
	desc      *column.Column
}

// LogicalTile is a query time view over physical rows: an ordered column
// mapping plus a position list sending each logical row to a physical row
// slot. Selection is a shorter position list; projection is a smaller or
// reordered column mapping; materialization swaps borrowed columns for
// owned ones. Immutable once built, consumed by exactly one downstream
// operator.
//
// Visibility is captured when the tile is built. A row deleted afterwards
// is still served; the spec makes re-validation the consumer's problem.
type LogicalTile struct {
	columns      []logicalColumn
	positionList []uint32
	ownedTiles   []*tile.Tile
}

func (lt *LogicalTile) NumCols() uint32 {
	return uint32(len(lt.columns))
}

func (lt *LogicalTile) NumTuples() uint32 {
	return uint32(len(lt.positionList))
}

// GetColumnInfo returns the descriptor of a logical column.
func (lt *LogicalTile) GetColumnInfo(colIdx uint32) *column.Column {
	common.Assert(colIdx < lt.NumCols(), "logical column %d out of %d", colIdx, lt.NumCols())
	return lt.columns[colIdx].desc
}

func (lt *LogicalTile) resolve(row uint32, colIdx uint32) types.Value {
	col := lt.columns[colIdx]
	slot := lt.positionList[row]
	switch col.source {
	case sourceBorrowed:
		return col.baseTile.GetValue(col.colOffset, slot)
	case sourceOwned:
		return lt.ownedTiles[col.ownedIdx].GetValue(col.colOffset, slot)
	default:
		panic("logical column resolves to neither borrowed nor owned storage")
	}
}

// GetValue reads the value at (logical row, logical column), resolving
// the column mapping and the position list.
func (lt *LogicalTile) GetValue(row uint32, colIdx uint32) (types.Value, error) {
	if row >= lt.NumTuples() || colIdx >= lt.NumCols() {
		return types.Value{}, ErrIndexOutOfRange
	}
	return lt.resolve(row, colIdx), nil
}

// RowIterator walks the live logical row indexes of a tile. Finite and
// restartable: a fresh iterator starts over.
type RowIterator struct {
	numTuples uint32
	cur       uint32
}

func (lt *LogicalTile) Iterator() *RowIterator {
	return &RowIterator{numTuples: lt.NumTuples()}
}

func (it *RowIterator) End() bool {
	return it.cur >= it.numTuples
}

func (it *RowIterator) Current() uint32 {
	return it.cur
}

func (it *RowIterator) Next() uint32 {
	it.cur++
	return it.cur
}

// RowView exposes one logical row for predicate evaluation; it implements
// expression.Row over logical column ids.
type RowView struct {
	lt  *LogicalTile
	row uint32
}

func (lt *LogicalTile) RowView(row uint32) RowView {
	common.Assert(row < lt.NumTuples(), "logical row %d out of %d", row, lt.NumTuples())
	return RowView{lt: lt, row: row}
}

func (v RowView) GetColumnValue(colID uint32) types.Value {
	common.Assert(colID < v.lt.NumCols(), "logical column %d out of %d", colID, v.lt.NumCols())
	return v.lt.resolve(v.row, colID)
}

// filteredCopy builds a tile over the same storage with a position list
// restricted to the kept logical rows. Owned tiles move to the copy; the
// receiver must be considered consumed afterwards.
func (lt *LogicalTile) filteredCopy(keepRows []uint32) *LogicalTile {
	positions := make([]uint32, 0, len(keepRows))
	for _, row := range keepRows {
		common.Assert(row < lt.NumTuples(), "filtered row %d out of %d", row, lt.NumTuples())
		positions = append(positions, lt.positionList[row])
	}
	out := &LogicalTile{
		columns:      lt.columns,
		positionList: positions,
		ownedTiles:   lt.ownedTiles,
	}
	lt.ownedTiles = nil
	return out
}

// Release frees the tile's owned storage. Borrowed storage belongs to the
// tile groups and stays untouched.
func (lt *LogicalTile) Release() {
	for _, t := range lt.ownedTiles {
		t.Free()
	}
	lt.ownedTiles = nil
}
