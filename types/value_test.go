package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueSerializeRoundTrip(t *testing.T) {
	for _, v := range []Value{
		NewInteger(-42),
		NewFloat(3.5),
		NewBoolean(true),
		NewVarchar("hello"),
		NewNull(Integer),
		NewNull(Varchar),
	} {
		buf := v.Serialize()
		require.Len(t, buf, int(v.Size()))
		got := NewValueFromBytes(buf, v.ValueType())
		require.True(t, v.CompareEquals(got), "round trip changed %v to %v", v, got)
	}
}

func TestValueComparisons(t *testing.T) {
	require.True(t, NewInteger(1).CompareLessThan(NewInteger(2)))
	require.True(t, NewInteger(2).CompareGreaterThanOrEqual(NewInteger(2)))
	require.True(t, NewVarchar("a").CompareLessThan(NewVarchar("b")))
	require.False(t, NewNull(Integer).CompareLessThan(NewInteger(1)))
	require.True(t, NewNull(Integer).CompareEquals(NewNull(Integer)))
	require.False(t, NewNull(Integer).CompareEquals(NewInteger(0)))
}

func TestVarcharTruncatedToMaxLen(t *testing.T) {
	long := make([]byte, MaxVarcharLen+100)
	for i := range long {
		long[i] = 'x'
	}
	v := NewVarchar(string(long))
	require.Len(t, v.ToVarchar(), MaxVarcharLen)
}
