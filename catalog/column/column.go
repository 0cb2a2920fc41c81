package column

import (
	"github.com/mosaicdb/mosaicdb/types"
)

// Column describes one attribute of a schema: name, type, serialized
// stride, max payload for variable width types, and nullability. The
// column offset is assigned by the owning schema.
type Column struct {
	columnName     string
	columnType     types.TypeID
	fixedLength    uint32 // serialized stride of one slot of this column
	variableLength uint32 // max payload bytes for Varchar, 0 otherwise
	columnOffset   uint32 // byte offset within one row of the owning schema
	nullable       bool
}

func NewColumn(name string, columnType types.TypeID, nullable bool) *Column {
	c := &Column{
		columnName:  name,
		columnType:  columnType,
		fixedLength: columnType.Size(),
		nullable:    nullable,
	}
	if columnType == types.Varchar {
		c.variableLength = types.MaxVarcharLen
	}
	return c
}

func (c *Column) GetColumnName() string { return c.columnName }

func (c *Column) GetType() types.TypeID { return c.columnType }

func (c *Column) FixedLength() uint32 { return c.fixedLength }

func (c *Column) VariableLength() uint32 { return c.variableLength }

func (c *Column) GetOffset() uint32 { return c.columnOffset }

func (c *Column) SetOffset(offset uint32) { c.columnOffset = offset }

func (c *Column) IsNullable() bool { return c.nullable }
