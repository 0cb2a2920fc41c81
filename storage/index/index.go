package index

import (
	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/types"
)

type IndexKind int

const (
	IndexKindInvalid IndexKind = iota
	IndexKindHashTable
	IndexKindUniqHashTable
	IndexKindSkipList
)

func (k IndexKind) String() string {
	switch k {
	case IndexKindHashTable:
		return "HASH_TABLE"
	case IndexKindUniqHashTable:
		return "UNIQ_HASH_TABLE"
	case IndexKindSkipList:
		return "SKIP_LIST"
	default:
		return "INVALID"
	}
}

// IndexMetadata carries everything the factory needs to build an index:
// identity, the key attribute ordinals of the tuple schema, the derived
// key schema, and the index kind to dispatch on.
type IndexMetadata struct {
	name      string
	tableName string
	keyAttrs  []uint32
	keySchema *schema.Schema
	kind      IndexKind
}

func NewIndexMetadata(name string, tableName string, tupleSchema *schema.Schema, keyAttrs []uint32, kind IndexKind) *IndexMetadata {
	return &IndexMetadata{
		name:      name,
		tableName: tableName,
		keyAttrs:  keyAttrs,
		keySchema: schema.CopySchema(tupleSchema, keyAttrs),
		kind:      kind,
	}
}

func (m *IndexMetadata) GetName() string { return m.name }

func (m *IndexMetadata) GetTableName() string { return m.tableName }

func (m *IndexMetadata) GetKeyAttrs() []uint32 { return m.keyAttrs }

func (m *IndexMetadata) GetKeySchema() *schema.Schema { return m.keySchema }

func (m *IndexMetadata) GetKind() IndexKind { return m.kind }

func (m *IndexMetadata) GetIndexColumnCount() uint32 { return uint32(len(m.keyAttrs)) }

// Index is the opaque key to location capability the rest of the system
// consumes. Scan and materialization executors never call it; plain scans
// iterate tile groups directly.
type Index interface {
	GetMetadata() *IndexMetadata
	InsertEntry(key []types.Value, rid types.RID)
	ScanKey(key []types.Value) []types.RID
	DeleteEntry(key []types.Value, rid types.RID)
}
