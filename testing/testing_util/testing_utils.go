package testing_util

import (
	"strconv"

	"github.com/mosaicdb/mosaicdb/catalog/column"
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/access"
	"github.com/mosaicdb/mosaicdb/storage/backend"
	"github.com/mosaicdb/mosaicdb/storage/tile"
	"github.com/mosaicdb/mosaicdb/types"
)

// Shared fixtures for storage and executor tests: a four column test
// table (two integers, a float, a varchar) whose cell values are derived
// from the tuple id, so tests can reconstruct which original tuple a
// scanned row came from.

// GetColumnInfo returns the descriptor of test column idx.
func GetColumnInfo(idx uint32) *column.Column {
	switch idx {
	case 0:
		return column.NewColumn("col_a", types.Integer, false)
	case 1:
		return column.NewColumn("col_b", types.Integer, false)
	case 2:
		return column.NewColumn("col_c", types.Float, false)
	case 3:
		return column.NewColumn("col_d", types.Varchar, false)
	default:
		panic("test table has four columns")
	}
}

// PopulatedValue computes the deterministic cell value of (tuple, column).
func PopulatedValue(tupleID int32, colID int32) int32 {
	return tupleID*10 + colID
}

// TupleValues builds the full row of values for one tuple id.
func TupleValues(tupleID int32) []types.Value {
	return []types.Value{
		types.NewInteger(PopulatedValue(tupleID, 0)),
		types.NewInteger(PopulatedValue(tupleID, 1)),
		types.NewFloat(float32(PopulatedValue(tupleID, 2))),
		types.NewVarchar(strconv.Itoa(int(PopulatedValue(tupleID, 3)))),
	}
}

// TestSchema builds the full four column test schema.
func TestSchema() *schema.Schema {
	return schema.NewSchema([]*column.Column{
		GetColumnInfo(0), GetColumnInfo(1), GetColumnInfo(2), GetColumnInfo(3),
	})
}

// PartitionSchemas builds a vertical partitioning scheme: one schema per
// column id group, columns re-created so each partition owns its offsets.
func PartitionSchemas(groups ...[]uint32) []*schema.Schema {
	schemas := make([]*schema.Schema, 0, len(groups))
	for _, group := range groups {
		cols := make([]*column.Column, 0, len(group))
		for _, colID := range group {
			cols = append(cols, GetColumnInfo(colID))
		}
		schemas = append(schemas, schema.NewSchema(cols))
	}
	return schemas
}

// CreateTestTable builds an empty test table over a fresh memory backend.
func CreateTestTable(groupCapacity uint32) *tile.DataTable {
	be := backend.NewMemoryBackend(common.DefaultBackendCapacity)
	return tile.NewDataTable("test_table", TestSchema(), groupCapacity, be)
}

// AddTileGroup appends a tile group with the given vertical partitioning
// to the table.
func AddTileGroup(table *tile.DataTable, partitions []*schema.Schema, capacity uint32) (*tile.TileGroup, error) {
	group, err := tile.NewTileGroup(tile.NextTileGroupID(), partitions, capacity, table.GetBackend())
	if err != nil {
		return nil, err
	}
	table.AddTileGroup(group)
	return group, nil
}

// PopulateTileGroup inserts rowCount tuples with ids 0..rowCount-1 into
// the group under txn and records them in the write set.
func PopulateTileGroup(group *tile.TileGroup, rowCount int32, txn *access.Transaction) {
	for i := int32(0); i < rowCount; i++ {
		slot, ok := group.InsertTuple(TupleValues(i), txn.ID())
		common.Assert(ok, "test tile group overflow at tuple %d", i)
		txn.RecordWrite(group, slot)
	}
}
