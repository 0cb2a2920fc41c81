package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

type ConstantValue struct {
	value types.Value
}

func NewConstantValue(value types.Value) Expression {
	return &ConstantValue{value: value}
}

func (c *ConstantValue) Evaluate(row Row) types.Value {
	return c.value
}

func (c *ConstantValue) GetChildAt(childIdx uint32) Expression { return nil }

func (c *ConstantValue) GetType() ExpressionType { return ExpressionTypeConstantValue }
