package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

type ConjunctionType int

const (
	And ConjunctionType = iota
	Or
)

// Conjunction combines two boolean valued children with AND or OR.
type Conjunction struct {
	children        [2]Expression
	conjunctionType ConjunctionType
}

func NewConjunction(left Expression, right Expression, conjunctionType ConjunctionType) Expression {
	return &Conjunction{children: [2]Expression{left, right}, conjunctionType: conjunctionType}
}

func (c *Conjunction) Evaluate(row Row) types.Value {
	lhs := c.children[0].Evaluate(row).ToBoolean()
	rhs := c.children[1].Evaluate(row).ToBoolean()
	switch c.conjunctionType {
	case And:
		return types.NewBoolean(lhs && rhs)
	case Or:
		return types.NewBoolean(lhs || rhs)
	default:
		panic("illegal conjunction type")
	}
}

func (c *Conjunction) GetChildAt(childIdx uint32) Expression {
	if childIdx >= 2 {
		return nil
	}
	return c.children[childIdx]
}

func (c *Conjunction) GetType() ExpressionType { return ExpressionTypeConjunction }
