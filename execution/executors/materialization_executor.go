package executors

import (
	"fmt"

	"github.com/mosaicdb/mosaicdb/catalog/column"
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/execution/plans"
	"github.com/mosaicdb/mosaicdb/storage/tile"
)

// MaterializationExecutor copies each input tile into freshly owned
// storage under the plan's old to new column remapping, producing dense,
// identity indexed logical tiles. A configuration that does not line up
// with the actual input discards the whole output tile for that Execute.
type MaterializationExecutor struct {
	BaseExecutor
	plan *plans.MaterializationPlanNode
	// output schema with the plan's column names applied
	namedSchema *schema.Schema
}

func NewMaterializationExecutor(context *ExecutorContext, plan *plans.MaterializationPlanNode) *MaterializationExecutor {
	return &MaterializationExecutor{BaseExecutor: NewBaseExecutor(context), plan: plan}
}

func (e *MaterializationExecutor) Init() error {
	if err := e.markInitialized(); err != nil {
		return err
	}
	if len(e.children) != 1 {
		return ErrInvalidPlan
	}

	declared := e.plan.GetOutputSchema()
	names := e.plan.GetColumnNames()
	if uint32(len(names)) != declared.GetColumnCount() {
		return fmt.Errorf("%w: %d column names for %d output columns",
			ErrSchemaMismatch, len(names), declared.GetColumnCount())
	}
	columns := make([]*column.Column, 0, declared.GetColumnCount())
	for i := uint32(0); i < declared.GetColumnCount(); i++ {
		src := declared.GetColumn(i)
		columns = append(columns, column.NewColumn(names[i], src.GetType(), src.IsNullable()))
	}
	e.namedSchema = schema.NewSchema(columns)

	return e.children[0].Init()
}

func (e *MaterializationExecutor) Execute() (bool, error) {
	if err := e.ensureInitialized(); err != nil {
		return false, err
	}
	if e.exhausted() {
		return false, nil
	}
	e.Release()

	child := e.children[0]
	for {
		ok, err := child.Execute()
		if err != nil {
			return false, err
		}
		if !ok {
			e.markExhausted()
			return false, nil
		}
		in, err := child.GetOutput()
		if err != nil {
			return false, err
		}
		if in.NumTuples() == 0 {
			in.Release()
			continue
		}

		out, err := e.materialize(in)
		in.Release()
		if err != nil {
			return false, err
		}
		e.bufferOutput(out)
		common.Logger.Debugw("materialization produced tile",
			"rows", out.NumTuples(), "cols", out.NumCols())
		return true, nil
	}
}

// materialize validates the mapping against the input tile, then copies
// every (row, old) value into (row, new) of a freshly allocated tile.
func (e *MaterializationExecutor) materialize(in *LogicalTile) (*LogicalTile, error) {
	mapping := e.plan.GetOldToNewCols()
	outCols := e.namedSchema.GetColumnCount()

	covered := make([]bool, outCols)
	for _, m := range mapping {
		if m.First >= in.NumCols() {
			return nil, fmt.Errorf("%w: old column %d outside input of %d columns",
				ErrSchemaMismatch, m.First, in.NumCols())
		}
		if m.Second >= outCols {
			return nil, fmt.Errorf("%w: new column %d outside output schema of %d columns",
				ErrSchemaMismatch, m.Second, outCols)
		}
		if covered[m.Second] {
			return nil, fmt.Errorf("%w: new column %d has multiple sources", ErrSchemaMismatch, m.Second)
		}
		if in.GetColumnInfo(m.First).GetType() != e.namedSchema.GetColumn(m.Second).GetType() {
			return nil, fmt.Errorf("%w: column %d -> %d changes type", ErrSchemaMismatch, m.First, m.Second)
		}
		covered[m.Second] = true
	}
	for newCol, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("%w: output column %d has no source", ErrSchemaMismatch, newCol)
		}
	}

	numRows := in.NumTuples()
	owned, err := tile.NewTile(e.namedSchema, numRows, e.context.GetBackend())
	if err != nil {
		return nil, err
	}
	for row := uint32(0); row < numRows; row++ {
		for _, m := range mapping {
			v, err := in.GetValue(row, m.First)
			if err != nil {
				// Validation above makes this unreachable; drop the whole
				// tile rather than return it partially populated.
				owned.Free()
				return nil, err
			}
			owned.SetValue(m.Second, row, v)
		}
	}
	return newOwnedTile(owned, e.namedSchema, numRows), nil
}
