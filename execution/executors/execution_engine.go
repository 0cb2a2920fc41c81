package executors

import (
	"fmt"

	"github.com/mosaicdb/mosaicdb/execution/plans"
)

// ExecutionEngine is the top level query driver: it turns a plan tree into
// an executor tree (closed dispatch on the plan type; a new operator means
// a new case, not a subclass) and drains it.
type ExecutionEngine struct{}

// BuildExecutor constructs the executor tree mirroring the plan tree.
func (e *ExecutionEngine) BuildExecutor(plan plans.Plan, context *ExecutorContext) (Executor, error) {
	var exec Executor
	switch p := plan.(type) {
	case *plans.SeqScanPlanNode:
		exec = NewSeqScanExecutor(context, p)
	case *plans.MaterializationPlanNode:
		exec = NewMaterializationExecutor(context, p)
	default:
		return nil, fmt.Errorf("%w: unknown plan node %T", ErrInvalidPlan, plan)
	}
	for _, childPlan := range plan.GetChildren() {
		child, err := e.BuildExecutor(childPlan, context)
		if err != nil {
			return nil, err
		}
		exec.AddChild(child)
	}
	return exec, nil
}

// Execute runs the plan to exhaustion and returns every produced tile.
// Ownership of the tiles passes to the caller.
func (e *ExecutionEngine) Execute(plan plans.Plan, context *ExecutorContext) ([]*LogicalTile, error) {
	root, err := e.BuildExecutor(plan, context)
	if err != nil {
		return nil, err
	}
	if err := root.Init(); err != nil {
		return nil, err
	}
	var tiles []*LogicalTile
	for {
		ok, err := root.Execute()
		if err != nil {
			for _, t := range tiles {
				t.Release()
			}
			return nil, err
		}
		if !ok {
			return tiles, nil
		}
		out, err := root.GetOutput()
		if err != nil {
			for _, t := range tiles {
				t.Release()
			}
			return nil, err
		}
		tiles = append(tiles, out)
	}
}
