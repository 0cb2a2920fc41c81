package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

type ExpressionType int

const (
	ExpressionTypeInvalid ExpressionType = iota
	ExpressionTypeConstantValue
	ExpressionTypeColumnValue
	ExpressionTypeComparison
	ExpressionTypeConjunction
)

// Row is the single tuple view a predicate is evaluated against. Logical
// tile rows and raw tile group rows both implement it.
type Row interface {
	GetColumnValue(colID uint32) types.Value
}

// Expression is an opaque boolean or scalar valued evaluator over one row.
type Expression interface {
	Evaluate(row Row) types.Value
	GetChildAt(childIdx uint32) Expression
	GetType() ExpressionType
}
