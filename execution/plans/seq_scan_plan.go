package plans

import (
	"fmt"

	"github.com/mosaicdb/mosaicdb/execution/expression"
	"github.com/mosaicdb/mosaicdb/storage/tile"
)

// SeqScanPlanNode describes a sequential scan. A nil table means the scan
// runs in non leaf mode over the logical tiles of its child, in which case
// columnIDs are ignored (an upstream operator already projected).
type SeqScanPlanNode struct {
	*AbstractPlanNode
	table     *tile.DataTable
	predicate expression.Expression
	columnIDs []uint32
}

func NewSeqScanPlanNode(table *tile.DataTable, predicate expression.Expression, columnIDs []uint32) *SeqScanPlanNode {
	return &SeqScanPlanNode{
		AbstractPlanNode: &AbstractPlanNode{},
		table:            table,
		predicate:        predicate,
		columnIDs:        columnIDs,
	}
}

// NewSeqScanPlanNodeWithChild builds the non leaf variant filtering the
// output of the child plan.
func NewSeqScanPlanNodeWithChild(child Plan, predicate expression.Expression) *SeqScanPlanNode {
	return &SeqScanPlanNode{
		AbstractPlanNode: &AbstractPlanNode{children: []Plan{child}},
		predicate:        predicate,
	}
}

func (p *SeqScanPlanNode) GetTable() *tile.DataTable { return p.table }

func (p *SeqScanPlanNode) GetPredicate() expression.Expression { return p.predicate }

func (p *SeqScanPlanNode) GetColumnIDs() []uint32 { return p.columnIDs }

func (p *SeqScanPlanNode) GetType() PlanType { return SeqScan }

func (p *SeqScanPlanNode) GetDebugStr() string {
	table := "<child>"
	if p.table != nil {
		table = p.table.GetName()
	}
	return fmt.Sprintf("SeqScanPlanNode [table=%s cols=%v predicate=%v]", table, p.columnIDs, p.predicate != nil)
}
