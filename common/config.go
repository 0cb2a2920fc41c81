package common

const (
	// DefaultTileGroupCapacity is the row slot capacity used when a data
	// table appends a tile group on its own.
	DefaultTileGroupCapacity uint32 = 1024

	// DefaultBackendCapacity bounds the memory backend used by tests and
	// the default table construction path (1 GiB).
	DefaultBackendCapacity int64 = 1 << 30
)
