package schema

import (
	"github.com/mosaicdb/mosaicdb/catalog/column"
)

// Schema is an immutable ordered sequence of column descriptors. Column
// offsets are assigned once at construction.
type Schema struct {
	length  uint32 // total serialized stride of one row
	columns []*column.Column
}

func NewSchema(columns []*column.Column) *Schema {
	s := &Schema{}
	var currentOffset uint32
	for _, col := range columns {
		col.SetOffset(currentOffset)
		currentOffset += col.FixedLength()
		s.columns = append(s.columns, col)
	}
	s.length = currentOffset
	return s
}

func (s *Schema) GetColumn(colIndex uint32) *column.Column {
	return s.columns[colIndex]
}

func (s *Schema) GetColumns() []*column.Column {
	return s.columns
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

// Length returns the serialized stride of one full row of this schema.
func (s *Schema) Length() uint32 {
	return s.length
}

func (s *Schema) GetColIndex(columnName string) int {
	for i, col := range s.columns {
		if col.GetColumnName() == columnName {
			return i
		}
	}
	return -1
}

// CopySchema builds a fresh schema from the given attribute ordinals of
// the source schema. Columns are re-created so the copy owns its offsets.
func CopySchema(from *Schema, attrs []uint32) *Schema {
	columns := make([]*column.Column, 0, len(attrs))
	for _, attr := range attrs {
		src := from.GetColumn(attr)
		columns = append(columns, column.NewColumn(src.GetColumnName(), src.GetType(), src.IsNullable()))
	}
	return NewSchema(columns)
}
