package expression

import (
	"github.com/mosaicdb/mosaicdb/types"
)

// Convenience factories for building predicate trees in tests and by the
// (external) planner.

func ConstantValueFactory(value types.Value) Expression {
	return NewConstantValue(value)
}

func ColumnValueFactory(colIndex uint32) Expression {
	return NewColumnValue(colIndex)
}

func ComparisonFactory(comparisonType ComparisonType, left Expression, right Expression) Expression {
	return NewComparison(left, right, comparisonType)
}

func ConjunctionFactory(conjunctionType ConjunctionType, left Expression, right Expression) Expression {
	return NewConjunction(left, right, conjunctionType)
}
