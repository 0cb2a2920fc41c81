package executors

import (
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/storage/tile"
)

func borrowedColumn(group *tile.TileGroup, tableColID uint32) logicalColumn {
	loc := group.LocateColumn(tableColID)
	baseTile := group.GetTile(loc.TileOffset)
	return logicalColumn{
		source:    sourceBorrowed,
		baseTile:  baseTile,
		colOffset: loc.ColumnOffset,
		desc:      baseTile.GetSchema().GetColumn(loc.ColumnOffset),
	}
}

// WrapTileGroup builds a logical tile covering every physical column of
// the group in table schema order, with an identity position list over the
// currently occupied, non deleted slots. No predicate, no projection; used
// when a non leaf operator ingests raw storage without a preceding scan.
func WrapTileGroup(group *tile.TileGroup) *LogicalTile {
	columns := make([]logicalColumn, 0, group.ColumnCount())
	for colID := uint32(0); colID < group.ColumnCount(); colID++ {
		columns = append(columns, borrowedColumn(group, colID))
	}
	header := group.GetHeader()
	positions := make([]uint32, 0, header.GetActiveTupleCount())
	for slot := uint32(0); slot < header.AllocatedSlotCount(); slot++ {
		if header.IsOccupied(slot) && !header.IsDeleted(slot) {
			positions = append(positions, slot)
		}
	}
	return &LogicalTile{columns: columns, positionList: positions}
}

// newProjectedTile builds a scan output tile: the given physical slots of
// one group, projected to the given table column ids in caller order.
// Duplicates and reordering are allowed.
func newProjectedTile(group *tile.TileGroup, slots []uint32, columnIDs []uint32) *LogicalTile {
	columns := make([]logicalColumn, 0, len(columnIDs))
	for _, colID := range columnIDs {
		columns = append(columns, borrowedColumn(group, colID))
	}
	return &LogicalTile{columns: columns, positionList: slots}
}

// newOwnedTile wraps one freshly materialized tile: every logical column
// is owned and the position list is the identity over the dense rows.
func newOwnedTile(owned *tile.Tile, outputSchema *schema.Schema, numRows uint32) *LogicalTile {
	columns := make([]logicalColumn, 0, outputSchema.GetColumnCount())
	for colIdx := uint32(0); colIdx < outputSchema.GetColumnCount(); colIdx++ {
		columns = append(columns, logicalColumn{
			source:    sourceOwned,
			ownedIdx:  0,
			colOffset: colIdx,
			desc:      outputSchema.GetColumn(colIdx),
		})
	}
	positions := make([]uint32, numRows)
	for i := range positions {
		positions[i] = uint32(i)
	}
	return &LogicalTile{
		columns:      columns,
		positionList: positions,
		ownedTiles:   []*tile.Tile{owned},
	}
}
