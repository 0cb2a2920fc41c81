package types

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Value is a tagged, copyable view over a single column datum. All values
// carry their type and compare only against values of the same type.
type Value struct {
	valueType TypeID
	isNull    bool
	integer   *int32
	boolean   *bool
	varchar   *string
	float     *float32
}

func NewInteger(value int32) Value {
	return Value{valueType: Integer, integer: &value}
}

func NewFloat(value float32) Value {
	return Value{valueType: Float, float: &value}
}

func NewBoolean(value bool) Value {
	return Value{valueType: Boolean, boolean: &value}
}

func NewVarchar(value string) Value {
	if len(value) > MaxVarcharLen {
		value = value[:MaxVarcharLen]
	}
	return Value{valueType: Varchar, varchar: &value}
}

func NewNull(valueType TypeID) Value {
	return Value{valueType: valueType, isNull: true}
}

func (v Value) ValueType() TypeID { return v.valueType }

func (v Value) IsNull() bool { return v.isNull }

func (v *Value) SetNull() { v.isNull = true }

func (v Value) ToBoolean() bool {
	if v.isNull || v.valueType != Boolean {
		return false
	}
	return *v.boolean
}

func (v Value) ToInteger() int32 {
	if v.isNull || v.integer == nil {
		return 0
	}
	return *v.integer
}

func (v Value) ToFloat() float32 {
	if v.isNull || v.float == nil {
		return 0
	}
	return *v.float
}

func (v Value) ToVarchar() string {
	if v.isNull || v.varchar == nil {
		return ""
	}
	return *v.varchar
}

func (v Value) CompareEquals(right Value) bool {
	if v.isNull && right.isNull {
		return true
	}
	if v.isNull || right.isNull {
		return false
	}
	switch v.valueType {
	case Integer:
		return *v.integer == *right.integer
	case Float:
		return *v.float == *right.float
	case Varchar:
		return *v.varchar == *right.varchar
	case Boolean:
		return *v.boolean == *right.boolean
	}
	return false
}

func (v Value) CompareNotEquals(right Value) bool {
	return !v.CompareEquals(right)
}

func (v Value) CompareGreaterThan(right Value) bool {
	if v.isNull || right.isNull {
		return false
	}
	switch v.valueType {
	case Integer:
		return *v.integer > *right.integer
	case Float:
		return *v.float > *right.float
	case Varchar:
		return *v.varchar > *right.varchar
	}
	return false
}

func (v Value) CompareGreaterThanOrEqual(right Value) bool {
	return v.CompareEquals(right) || v.CompareGreaterThan(right)
}

func (v Value) CompareLessThan(right Value) bool {
	if v.isNull || right.isNull {
		return false
	}
	return !v.CompareGreaterThanOrEqual(right)
}

func (v Value) CompareLessThanOrEqual(right Value) bool {
	if v.isNull || right.isNull {
		return false
	}
	return !v.CompareGreaterThan(right)
}

// Size returns the serialized stride of this value in bytes.
func (v Value) Size() uint32 {
	return v.valueType.Size()
}

// Serialize encodes the value into exactly Size() bytes: a one byte null
// marker, then the type specific payload, zero padded for Varchar.
func (v Value) Serialize() []byte {
	buf := make([]byte, v.Size())
	if v.isNull {
		buf[0] = 1
		return buf
	}
	switch v.valueType {
	case Boolean:
		if *v.boolean {
			buf[1] = 1
		}
	case Integer:
		binary.LittleEndian.PutUint32(buf[1:], uint32(*v.integer))
	case Float:
		binary.LittleEndian.PutUint32(buf[1:], math.Float32bits(*v.float))
	case Varchar:
		binary.LittleEndian.PutUint16(buf[1:], uint16(len(*v.varchar)))
		copy(buf[3:], *v.varchar)
	default:
		panic(fmt.Sprintf("cannot serialize value of type %v", v.valueType))
	}
	return buf
}

// NewValueFromBytes decodes a value previously written by Serialize. The
// input must hold at least valueType.Size() bytes.
func NewValueFromBytes(data []byte, valueType TypeID) Value {
	if data[0] == 1 {
		return NewNull(valueType)
	}
	switch valueType {
	case Boolean:
		return NewBoolean(data[1] == 1)
	case Integer:
		return NewInteger(int32(binary.LittleEndian.Uint32(data[1:])))
	case Float:
		return NewFloat(math.Float32frombits(binary.LittleEndian.Uint32(data[1:])))
	case Varchar:
		length := binary.LittleEndian.Uint16(data[1:])
		return NewVarchar(string(data[3 : 3+length]))
	default:
		panic(fmt.Sprintf("cannot deserialize value of type %v", valueType))
	}
}

func (v Value) String() string {
	if v.isNull {
		return "NULL"
	}
	switch v.valueType {
	case Boolean:
		return strconv.FormatBool(*v.boolean)
	case Integer:
		return strconv.FormatInt(int64(*v.integer), 10)
	case Float:
		return strconv.FormatFloat(float64(*v.float), 'g', -1, 32)
	case Varchar:
		return *v.varchar
	default:
		return "INVALID"
	}
}
