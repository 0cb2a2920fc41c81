package executors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaicdb/mosaicdb/storage/access"
	testingutil "github.com/mosaicdb/mosaicdb/testing/testing_util"
)

func TestWrapTileGroupCoversAllColumnsAndRows(t *testing.T) {
	table := testingutil.CreateTestTable(10)
	group, err := testingutil.AddTileGroup(table, testingutil.PartitionSchemas([]uint32{0, 1}, []uint32{2, 3}), 10)
	require.NoError(t, err)

	mgr := access.NewTransactionManager()
	txn := mgr.Begin()
	testingutil.PopulateTileGroup(group, 6, txn)
	mgr.Commit(txn)

	lt := WrapTileGroup(group)
	require.EqualValues(t, 4, lt.NumCols())
	require.EqualValues(t, 6, lt.NumTuples())

	for row := uint32(0); row < lt.NumTuples(); row++ {
		v0, err := lt.GetValue(row, 0)
		require.NoError(t, err)
		require.EqualValues(t, testingutil.PopulatedValue(int32(row), 0), v0.ToInteger())
		v3, err := lt.GetValue(row, 3)
		require.NoError(t, err)
		require.Equal(t, strconv.Itoa(int(testingutil.PopulatedValue(int32(row), 3))), v3.ToVarchar())
	}
}

func TestWrapTileGroupSkipsDeletedRows(t *testing.T) {
	table := testingutil.CreateTestTable(10)
	group, err := testingutil.AddTileGroup(table, testingutil.PartitionSchemas([]uint32{0, 1, 2, 3}), 10)
	require.NoError(t, err)

	mgr := access.NewTransactionManager()
	txn := mgr.Begin()
	testingutil.PopulateTileGroup(group, 5, txn)
	mgr.Commit(txn)
	group.GetHeader().SetDeleted(2, true)

	lt := WrapTileGroup(group)
	require.EqualValues(t, 4, lt.NumTuples())

	// row 2 of the view is physical slot 3: visibility is captured at
	// construction, the mapping skips the hole
	v, err := lt.GetValue(2, 0)
	require.NoError(t, err)
	require.EqualValues(t, testingutil.PopulatedValue(3, 0), v.ToInteger())
}

func TestLogicalTileIndexOutOfRange(t *testing.T) {
	table := testingutil.CreateTestTable(10)
	group, err := testingutil.AddTileGroup(table, testingutil.PartitionSchemas([]uint32{0, 1, 2, 3}), 10)
	require.NoError(t, err)

	mgr := access.NewTransactionManager()
	txn := mgr.Begin()
	testingutil.PopulateTileGroup(group, 3, txn)
	mgr.Commit(txn)

	lt := WrapTileGroup(group)
	_, err = lt.GetValue(3, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = lt.GetValue(0, 4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRowIteratorIsRestartable(t *testing.T) {
	table := testingutil.CreateTestTable(10)
	group, err := testingutil.AddTileGroup(table, testingutil.PartitionSchemas([]uint32{0, 1, 2, 3}), 10)
	require.NoError(t, err)

	mgr := access.NewTransactionManager()
	txn := mgr.Begin()
	testingutil.PopulateTileGroup(group, 4, txn)
	mgr.Commit(txn)

	lt := WrapTileGroup(group)
	for pass := 0; pass < 2; pass++ {
		var rows []uint32
		for it := lt.Iterator(); !it.End(); it.Next() {
			rows = append(rows, it.Current())
		}
		require.Equal(t, []uint32{0, 1, 2, 3}, rows)
	}
}
