package executors

import (
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/execution/plans"
	"github.com/mosaicdb/mosaicdb/storage/tile"
	"github.com/mosaicdb/mosaicdb/types"
)

// SeqScanExecutor scans a data table tile group by tile group (leaf mode)
// or filters the logical tiles of its child (non leaf mode). Every
// successful Execute buffers exactly one logical tile holding at least one
// row; empty tile groups and fully filtered inputs are skipped, never
// yielded.
type SeqScanExecutor struct {
	BaseExecutor
	plan         *plans.SeqScanPlanNode
	nextGroupIdx uint32
}

func NewSeqScanExecutor(context *ExecutorContext, plan *plans.SeqScanPlanNode) *SeqScanExecutor {
	return &SeqScanExecutor{BaseExecutor: NewBaseExecutor(context), plan: plan}
}

func (e *SeqScanExecutor) Init() error {
	if err := e.markInitialized(); err != nil {
		return err
	}
	switch len(e.children) {
	case 0:
		if e.plan.GetTable() == nil {
			return ErrInvalidPlan
		}
		e.nextGroupIdx = 0
		return nil
	case 1:
		return e.children[0].Init()
	default:
		return ErrInvalidPlan
	}
}

func (e *SeqScanExecutor) Execute() (bool, error) {
	if err := e.ensureInitialized(); err != nil {
		return false, err
	}
	if e.exhausted() {
		return false, nil
	}
	// A tile the consumer never claimed is dropped before buffering the
	// next one.
	e.Release()

	if len(e.children) == 0 {
		return e.executeLeaf()
	}
	return e.executeNonLeaf()
}

// executeLeaf advances the tile group cursor until one group yields at
// least one visible, matching row. One output tile never spans groups.
func (e *SeqScanExecutor) executeLeaf() (bool, error) {
	table := e.plan.GetTable()
	for e.nextGroupIdx < table.GetTileGroupCount() {
		group, err := table.GetTileGroup(e.nextGroupIdx)
		if err != nil {
			return false, err
		}
		e.nextGroupIdx++

		slots := e.matchingSlots(group)
		if len(slots) == 0 {
			continue
		}
		columnIDs := e.plan.GetColumnIDs()
		if len(columnIDs) == 0 {
			// No projection configured: pass through every column.
			columnIDs = make([]uint32, group.ColumnCount())
			for i := range columnIDs {
				columnIDs[i] = uint32(i)
			}
		}
		e.bufferOutput(newProjectedTile(group, slots, columnIDs))
		common.Logger.Debugw("seq scan produced tile",
			"tile_group_id", group.ID(), "rows", len(slots), "cols", len(columnIDs))
		return true, nil
	}
	e.markExhausted()
	return false, nil
}

// matchingSlots collects the row slots of one group that are visible to
// the executor's transaction and pass the predicate.
func (e *SeqScanExecutor) matchingSlots(group *tile.TileGroup) []uint32 {
	header := group.GetHeader()
	txnMgr := e.context.GetTransactionManager()
	txn := e.context.GetTransaction()
	predicate := e.plan.GetPredicate()

	var slots []uint32
	for slot := uint32(0); slot < header.AllocatedSlotCount(); slot++ {
		if !txnMgr.IsVisible(header, slot, txn) {
			continue
		}
		if predicate != nil && !predicate.Evaluate(groupRowView{group: group, slot: slot}).ToBoolean() {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// executeNonLeaf pulls tiles from the child and filters their rows by the
// predicate. Column ids are ignored: a preceding operator already chose
// the projection.
func (e *SeqScanExecutor) executeNonLeaf() (bool, error) {
	child := e.children[0]
	predicate := e.plan.GetPredicate()
	for {
		ok, err := child.Execute()
		if err != nil {
			return false, err
		}
		if !ok {
			e.markExhausted()
			return false, nil
		}
		childTile, err := child.GetOutput()
		if err != nil {
			return false, err
		}

		if predicate == nil {
			if childTile.NumTuples() == 0 {
				childTile.Release()
				continue
			}
			e.bufferOutput(childTile)
			return true, nil
		}

		var keep []uint32
		for it := childTile.Iterator(); !it.End(); it.Next() {
			row := it.Current()
			if predicate.Evaluate(childTile.RowView(row)).ToBoolean() {
				keep = append(keep, row)
			}
		}
		if len(keep) == 0 {
			childTile.Release()
			continue
		}
		e.bufferOutput(childTile.filteredCopy(keep))
		return true, nil
	}
}

// groupRowView exposes one physical row of a tile group for predicate
// evaluation; column ids are table schema ordinals.
type groupRowView struct {
	group *tile.TileGroup
	slot  uint32
}

func (v groupRowView) GetColumnValue(colID uint32) types.Value {
	return v.group.GetValue(colID, v.slot)
}
