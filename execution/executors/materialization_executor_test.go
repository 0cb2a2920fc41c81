package executors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaicdb/mosaicdb/catalog/column"
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/execution/plans"
	"github.com/mosaicdb/mosaicdb/storage/access"
	testingutil "github.com/mosaicdb/mosaicdb/testing/testing_util"
	"github.com/mosaicdb/mosaicdb/types"
)

// newMatInput builds one committed single group table with rowCount tuples
// and returns its wrapped logical tile plus a reader context.
func newMatInput(t *testing.T, rowCount int32) (*LogicalTile, *ExecutorContext) {
	t.Helper()
	table := testingutil.CreateTestTable(uint32(rowCount))
	mgr := access.NewTransactionManager()
	loader := mgr.Begin()
	group, err := testingutil.AddTileGroup(table, testingutil.PartitionSchemas([]uint32{0, 1, 2, 3}), uint32(rowCount))
	require.NoError(t, err)
	testingutil.PopulateTileGroup(group, rowCount, loader)
	mgr.Commit(loader)
	return WrapTileGroup(group), NewExecutorContext(mgr, mgr.Begin(), table.GetBackend())
}

// mockChild feeds exactly the given tiles, then exhaustion.
func mockChild(tiles ...*LogicalTile) *MockExecutor {
	child := new(MockExecutor)
	child.On("Init").Return(nil)
	for _, lt := range tiles {
		child.On("Execute").Return(true, nil).Once()
		child.On("GetOutput").Return(lt, nil).Once()
	}
	child.On("Execute").Return(false, nil).Maybe()
	return child
}

func identityMapping(cols uint32) []plans.ColumnMapping {
	mapping := make([]plans.ColumnMapping, 0, cols)
	for i := uint32(0); i < cols; i++ {
		mapping = append(mapping, plans.NewColumnMapping(i, i))
	}
	return mapping
}

func TestMaterializationIdentityRoundTrip(t *testing.T) {
	in, ctx := newMatInput(t, 8)
	names := []string{"out_a", "out_b", "out_c", "out_d"}
	plan := plans.NewMaterializationPlanNode(nil, identityMapping(4), names, testingutil.TestSchema())
	exec := NewMaterializationExecutor(ctx, plan)
	exec.AddChild(mockChild(in))
	require.NoError(t, exec.Init())

	ok, err := exec.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	out, err := exec.GetOutput()
	require.NoError(t, err)

	require.EqualValues(t, 4, out.NumCols())
	require.EqualValues(t, 8, out.NumTuples())
	for i, name := range names {
		require.Equal(t, name, out.GetColumnInfo(uint32(i)).GetColumnName())
	}
	for row := uint32(0); row < out.NumTuples(); row++ {
		id := int32(row)
		v0, err := out.GetValue(row, 0)
		require.NoError(t, err)
		require.EqualValues(t, testingutil.PopulatedValue(id, 0), v0.ToInteger())
		v2, err := out.GetValue(row, 2)
		require.NoError(t, err)
		require.EqualValues(t, float32(testingutil.PopulatedValue(id, 2)), v2.ToFloat())
		v3, err := out.GetValue(row, 3)
		require.NoError(t, err)
		require.Equal(t, strconv.Itoa(int(testingutil.PopulatedValue(id, 3))), v3.ToVarchar())
	}
	out.Release()

	ok, err = exec.Execute()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMaterializationFanOut(t *testing.T) {
	in, ctx := newMatInput(t, 4)
	outSchema := schema.NewSchema([]*column.Column{
		column.NewColumn("left", types.Integer, false),
		column.NewColumn("right", types.Integer, false),
	})
	mapping := []plans.ColumnMapping{plans.NewColumnMapping(0, 0), plans.NewColumnMapping(0, 1)}
	plan := plans.NewMaterializationPlanNode(nil, mapping, []string{"left", "right"}, outSchema)
	exec := NewMaterializationExecutor(ctx, plan)
	exec.AddChild(mockChild(in))
	require.NoError(t, exec.Init())

	ok, err := exec.Execute()
	require.NoError(t, err)
	require.True(t, ok)
	out, err := exec.GetOutput()
	require.NoError(t, err)

	require.EqualValues(t, 2, out.NumCols())
	for row := uint32(0); row < out.NumTuples(); row++ {
		want := testingutil.PopulatedValue(int32(row), 0)
		l, err := out.GetValue(row, 0)
		require.NoError(t, err)
		r, err := out.GetValue(row, 1)
		require.NoError(t, err)
		require.EqualValues(t, want, l.ToInteger())
		require.EqualValues(t, want, r.ToInteger())
	}
	out.Release()
}

func TestMaterializationSchemaMismatch(t *testing.T) {
	oneInt := schema.NewSchema([]*column.Column{column.NewColumn("x", types.Integer, false)})
	twoInts := schema.NewSchema([]*column.Column{
		column.NewColumn("x", types.Integer, false),
		column.NewColumn("y", types.Integer, false),
	})

	cases := []struct {
		name    string
		mapping []plans.ColumnMapping
		names   []string
		schema  *schema.Schema
	}{
		{"old column out of range", []plans.ColumnMapping{plans.NewColumnMapping(9, 0)}, []string{"x"}, oneInt},
		{"new column out of range", []plans.ColumnMapping{plans.NewColumnMapping(0, 5)}, []string{"x"}, oneInt},
		{"duplicate new column", []plans.ColumnMapping{plans.NewColumnMapping(0, 0), plans.NewColumnMapping(1, 0)}, []string{"x"}, oneInt},
		{"uncovered new column", []plans.ColumnMapping{plans.NewColumnMapping(0, 0)}, []string{"x", "y"}, twoInts},
		{"type change", []plans.ColumnMapping{plans.NewColumnMapping(2, 0)}, []string{"x"}, oneInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, ctx := newMatInput(t, 3)
			plan := plans.NewMaterializationPlanNode(nil, tc.mapping, tc.names, tc.schema)
			exec := NewMaterializationExecutor(ctx, plan)
			exec.AddChild(mockChild(in))
			require.NoError(t, exec.Init())

			_, err := exec.Execute()
			require.ErrorIs(t, err, ErrSchemaMismatch)
			_, err = exec.GetOutput()
			require.ErrorIs(t, err, ErrNoOutputAvailable, "a failed Execute leaves no partial output")
		})
	}
}

func TestMaterializationInitErrors(t *testing.T) {
	_, ctx := newMatInput(t, 1)

	// no child to pull from
	plan := plans.NewMaterializationPlanNode(nil, identityMapping(4), []string{"a", "b", "c", "d"}, testingutil.TestSchema())
	exec := NewMaterializationExecutor(ctx, plan)
	require.ErrorIs(t, exec.Init(), ErrInvalidPlan)

	// column name count disagreeing with the output schema
	plan = plans.NewMaterializationPlanNode(nil, identityMapping(4), []string{"only_one"}, testingutil.TestSchema())
	exec = NewMaterializationExecutor(ctx, plan)
	exec.AddChild(mockChild())
	require.ErrorIs(t, exec.Init(), ErrSchemaMismatch)
}

func TestExecutionEngineScanThenMaterialize(t *testing.T) {
	table, ctx := newScanEnv(t)

	// project col_a, col_b, col_d out of the scan, then rename and swap the
	// two integer columns while materializing
	scan := plans.NewSeqScanPlanNode(table, scanPredicate(), []uint32{0, 1, 3})
	outSchema := schema.CopySchema(testingutil.TestSchema(), []uint32{1, 0, 3})
	mapping := []plans.ColumnMapping{
		plans.NewColumnMapping(1, 0),
		plans.NewColumnMapping(0, 1),
		plans.NewColumnMapping(2, 2),
	}
	mat := plans.NewMaterializationPlanNode(scan, mapping, []string{"second", "first", "text"}, outSchema)

	engine := &ExecutionEngine{}
	tiles, err := engine.Execute(mat, ctx)
	require.NoError(t, err)
	require.Len(t, tiles, 2, "one materialized tile per scanned tile group")

	for _, out := range tiles {
		require.EqualValues(t, 3, out.NumCols())
		require.EqualValues(t, len(matchIDs), out.NumTuples())
		require.Equal(t, "second", out.GetColumnInfo(0).GetColumnName())
		for row := uint32(0); row < out.NumTuples(); row++ {
			first, err := out.GetValue(row, 1)
			require.NoError(t, err)
			id := first.ToInteger() / 10
			second, err := out.GetValue(row, 0)
			require.NoError(t, err)
			require.EqualValues(t, testingutil.PopulatedValue(id, 1), second.ToInteger())
			text, err := out.GetValue(row, 2)
			require.NoError(t, err)
			require.Equal(t, strconv.Itoa(int(testingutil.PopulatedValue(id, 3))), text.ToVarchar())
		}
		out.Release()
	}
}

func TestExecutionEngineRejectsUnknownPlan(t *testing.T) {
	_, ctx := newMatInput(t, 1)
	engine := &ExecutionEngine{}
	_, err := engine.BuildExecutor(unknownPlan{}, ctx)
	require.ErrorIs(t, err, ErrInvalidPlan)
}

type unknownPlan struct{}

func (unknownPlan) GetChildAt(uint32) plans.Plan { return nil }
func (unknownPlan) GetChildren() []plans.Plan    { return nil }
func (unknownPlan) GetType() plans.PlanType      { return plans.PlanType(-1) }
func (unknownPlan) GetDebugStr() string          { return "unknownPlan" }
