package tile

import (
	"errors"
	"sync/atomic"

	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/common"
	"github.com/mosaicdb/mosaicdb/storage/backend"
	"github.com/mosaicdb/mosaicdb/types"
)

// ErrOutOfRange is returned for tile group indexes beyond the table's
// current group count. Indicates a caller bug, never retried.
var ErrOutOfRange = errors.New("tile group index out of range")

var nextTileGroupID int32 = -1

// NextTileGroupID hands out process wide unique tile group ids.
func NextTileGroupID() types.TileGroupID {
	return types.TileGroupID(atomic.AddInt32(&nextTileGroupID, 1))
}

// DataTable owns one logical schema and an ordered, growable sequence of
// tile groups. Groups are only ever appended; a scan holding an index into
// the sequence never sees it shrink.
type DataTable struct {
	name           string
	schema         *schema.Schema
	defaultScheme  []*schema.Schema
	groupCapacity  uint32
	backend        backend.Backend
	tileGroupLatch common.ReaderWriterLatch
	tileGroups     []*TileGroup
}

// NewDataTable builds a table whose self appended tile groups use the
// whole schema as a single tile (callers may still add groups with any
// partitioning scheme via AddTileGroup).
func NewDataTable(name string, sch *schema.Schema, groupCapacity uint32, be backend.Backend) *DataTable {
	return &DataTable{
		name:           name,
		schema:         sch,
		defaultScheme:  []*schema.Schema{sch},
		groupCapacity:  groupCapacity,
		backend:        be,
		tileGroupLatch: common.NewRWLatch(),
	}
}

func (t *DataTable) GetName() string { return t.name }

func (t *DataTable) GetSchema() *schema.Schema { return t.schema }

func (t *DataTable) GetBackend() backend.Backend { return t.backend }

// AddTileGroup appends a tile group to the table.
func (t *DataTable) AddTileGroup(group *TileGroup) {
	t.tileGroupLatch.WLock()
	t.tileGroups = append(t.tileGroups, group)
	count := len(t.tileGroups)
	t.tileGroupLatch.WUnlock()
	common.Logger.Debugw("tile group added", "table", t.name, "tile_group_id", group.ID(), "group_count", count)
}

// GetTileGroup returns a non owning reference to the group at the given
// position, or ErrOutOfRange.
func (t *DataTable) GetTileGroup(idx uint32) (*TileGroup, error) {
	t.tileGroupLatch.RLock()
	defer t.tileGroupLatch.RUnlock()
	if idx >= uint32(len(t.tileGroups)) {
		return nil, ErrOutOfRange
	}
	return t.tileGroups[idx], nil
}

func (t *DataTable) GetTileGroupCount() uint32 {
	t.tileGroupLatch.RLock()
	defer t.tileGroupLatch.RUnlock()
	return uint32(len(t.tileGroups))
}

// InsertTuple writes the tuple into the most recently added group with a
// free slot, appending a fresh default partitioned group when the table is
// full. The transaction bookkeeping of the caller (write set, commit) is
// handled by the access layer, not here.
func (t *DataTable) InsertTuple(values []types.Value, txnID types.TxnID) (types.RID, error) {
	t.tileGroupLatch.RLock()
	var last *TileGroup
	if len(t.tileGroups) > 0 {
		last = t.tileGroups[len(t.tileGroups)-1]
	}
	t.tileGroupLatch.RUnlock()

	if last != nil {
		if slot, ok := last.InsertTuple(values, txnID); ok {
			return types.NewRID(last.ID(), slot), nil
		}
	}

	group, err := NewTileGroup(NextTileGroupID(), t.defaultScheme, t.groupCapacity, t.backend)
	if err != nil {
		return types.RID{}, err
	}
	t.AddTileGroup(group)
	slot, ok := group.InsertTuple(values, txnID)
	common.Assert(ok, "fresh tile group %d rejected insert", group.ID())
	return types.NewRID(group.ID(), slot), nil
}
