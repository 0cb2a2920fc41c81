package types

import "fmt"

// RID identifies a physical row slot: the tile group it lives in and the
// slot offset within that group.
type RID struct {
	TileGroupID TileGroupID
	SlotNum     uint32
}

func NewRID(tileGroupID TileGroupID, slotNum uint32) RID {
	return RID{TileGroupID: tileGroupID, SlotNum: slotNum}
}

func (r RID) String() string {
	return fmt.Sprintf("RID(%d, %d)", r.TileGroupID, r.SlotNum)
}
