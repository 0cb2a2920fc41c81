package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

type ComparisonType int

const (
	Equal ComparisonType = iota
	NotEqual
	GreaterThan
	GreaterThanOrEqual
	LessThan
	LessThanOrEqual
)

// Comparison compares the results of its two children.
type Comparison struct {
	children       [2]Expression
	comparisonType ComparisonType
}

func NewComparison(left Expression, right Expression, comparisonType ComparisonType) Expression {
	return &Comparison{children: [2]Expression{left, right}, comparisonType: comparisonType}
}

func (c *Comparison) Evaluate(row Row) types.Value {
	lhs := c.children[0].Evaluate(row)
	rhs := c.children[1].Evaluate(row)
	return types.NewBoolean(c.performComparison(lhs, rhs))
}

func (c *Comparison) performComparison(lhs types.Value, rhs types.Value) bool {
	switch c.comparisonType {
	case Equal:
		return lhs.CompareEquals(rhs)
	case NotEqual:
		return lhs.CompareNotEquals(rhs)
	case GreaterThan:
		return lhs.CompareGreaterThan(rhs)
	case GreaterThanOrEqual:
		return lhs.CompareGreaterThanOrEqual(rhs)
	case LessThan:
		return lhs.CompareLessThan(rhs)
	case LessThanOrEqual:
		return lhs.CompareLessThanOrEqual(rhs)
	default:
		panic("illegal comparison type")
	}
}

func (c *Comparison) GetChildAt(childIdx uint32) Expression {
	if childIdx >= 2 {
		return nil
	}
	return c.children[childIdx]
}

func (c *Comparison) GetType() ExpressionType { return ExpressionTypeComparison }
