package plans

import (
	"fmt"

	pair "github.com/notEpsilon/go-pair"

	"github.com/mosaicdb/mosaicdb/catalog/schema"
)

// ColumnMapping is one (old logical column, new output column) entry of a
// materialization. The mapping is ordered; one old column may fan out to
// several new columns, but every new column has exactly one source.
type ColumnMapping = pair.Pair[uint32, uint32]

func NewColumnMapping(oldCol uint32, newCol uint32) ColumnMapping {
	return ColumnMapping{First: oldCol, Second: newCol}
}

// MaterializationPlanNode describes copying a logical tile into freshly
// owned storage under a column remapping, with new column names and an
// owned output schema.
type MaterializationPlanNode struct {
	*AbstractPlanNode
	oldToNewCols []ColumnMapping
	columnNames  []string
	outputSchema *schema.Schema
}

func NewMaterializationPlanNode(child Plan, oldToNewCols []ColumnMapping, columnNames []string, outputSchema *schema.Schema) *MaterializationPlanNode {
	var children []Plan
	if child != nil {
		children = []Plan{child}
	}
	return &MaterializationPlanNode{
		AbstractPlanNode: &AbstractPlanNode{children: children},
		oldToNewCols:     oldToNewCols,
		columnNames:      columnNames,
		outputSchema:     outputSchema,
	}
}

func (p *MaterializationPlanNode) GetOldToNewCols() []ColumnMapping { return p.oldToNewCols }

func (p *MaterializationPlanNode) GetColumnNames() []string { return p.columnNames }

func (p *MaterializationPlanNode) GetOutputSchema() *schema.Schema { return p.outputSchema }

func (p *MaterializationPlanNode) GetType() PlanType { return Materialization }

func (p *MaterializationPlanNode) GetDebugStr() string {
	return fmt.Sprintf("MaterializationPlanNode [mapping=%v names=%v]", p.oldToNewCols, p.columnNames)
}
