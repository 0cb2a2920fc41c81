package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Integer
	Float
	Varchar
)

// MaxVarcharLen caps the inlined payload of a Varchar column so that every
// column type has a fixed serialized stride.
const MaxVarcharLen = 255

// Size returns the serialized stride of a value of this type in bytes.
// Every encoding starts with a one byte null marker. Varchar adds a two
// byte length prefix and is padded to MaxVarcharLen.
func (t TypeID) Size() uint32 {
	switch t {
	case Boolean:
		return 1 + 1
	case Integer:
		return 1 + 4
	case Float:
		return 1 + 4
	case Varchar:
		return 1 + 2 + MaxVarcharLen
	default:
		return 0
	}
}

func (t TypeID) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case Varchar:
		return "VARCHAR"
	default:
		return "INVALID"
	}
}
