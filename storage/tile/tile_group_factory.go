package tile

import (
	"fmt"

	"github.com/mosaicdb/mosaicdb/catalog/schema"
	"github.com/mosaicdb/mosaicdb/storage/backend"
	"github.com/mosaicdb/mosaicdb/types"
)

// NewTileGroup allocates one tile per schema of the partitioning scheme,
// all aligned to the same slot capacity. On an allocation failure the
// already allocated tiles are freed and the error is surfaced.
func NewTileGroup(id types.TileGroupID, partitions []*schema.Schema, capacity uint32, be backend.Backend) (*TileGroup, error) {
	if len(partitions) == 0 {
		return nil, fmt.Errorf("tile group %d: empty partitioning scheme", id)
	}
	tiles := make([]*Tile, 0, len(partitions))
	for _, part := range partitions {
		t, err := NewTile(part, capacity, be)
		if err != nil {
			for _, allocated := range tiles {
				allocated.Free()
			}
			return nil, fmt.Errorf("tile group %d: %w", id, err)
		}
		tiles = append(tiles, t)
	}

	// Table schema ordinals map onto the scheme left to right.
	var locators []ColumnLocator
	for tileOffset, part := range partitions {
		for colOffset := uint32(0); colOffset < part.GetColumnCount(); colOffset++ {
			locators = append(locators, ColumnLocator{
				TileOffset:   uint32(tileOffset),
				ColumnOffset: colOffset,
			})
		}
	}

	return &TileGroup{
		id:       id,
		tiles:    tiles,
		header:   NewTileGroupHeader(capacity),
		locators: locators,
		capacity: capacity,
	}, nil
}
