package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

// ColumnValue yields the value of one column of the row under evaluation.
type ColumnValue struct {
	colIndex uint32
}

func NewColumnValue(colIndex uint32) Expression {
	return &ColumnValue{colIndex: colIndex}
}

func (c *ColumnValue) Evaluate(row Row) types.Value {
	return row.GetColumnValue(c.colIndex)
}

func (c *ColumnValue) GetColIndex() uint32 { return c.colIndex }

func (c *ColumnValue) GetChildAt(childIdx uint32) Expression { return nil }

func (c *ColumnValue) GetType() ExpressionType { return ExpressionTypeColumnValue }
