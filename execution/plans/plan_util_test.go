package plans

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaicdb/mosaicdb/catalog/column"
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/types"
)

func TestPlanTreeString(t *testing.T) {
	outSchema := schema.NewSchema([]*column.Column{column.NewColumn("a", types.Integer, false)})
	scan := NewSeqScanPlanNode(nil, nil, []uint32{0})
	filter := NewSeqScanPlanNodeWithChild(scan, nil)
	mat := NewMaterializationPlanNode(filter, []ColumnMapping{NewColumnMapping(0, 0)}, []string{"a"}, outSchema)

	rendered := PlanTreeString(mat)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "MaterializationPlanNode"))
	require.True(t, strings.HasPrefix(lines[1], "  SeqScanPlanNode"))
	require.True(t, strings.HasPrefix(lines[2], "    SeqScanPlanNode"))
}

func TestPlanChildAccess(t *testing.T) {
	scan := NewSeqScanPlanNode(nil, nil, nil)
	parent := NewSeqScanPlanNodeWithChild(scan, nil)

	require.Equal(t, SeqScan, parent.GetType())
	require.Len(t, parent.GetChildren(), 1)
	require.Same(t, scan, parent.GetChildAt(0).(*SeqScanPlanNode))
	require.Nil(t, parent.GetChildAt(1))
	require.Nil(t, scan.GetChildAt(0))
}
