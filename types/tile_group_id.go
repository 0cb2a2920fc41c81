package types

type TileGroupID int32

const InvalidTileGroupID TileGroupID = -1

func (id TileGroupID) IsValid() bool {
	return id != InvalidTileGroupID
}
