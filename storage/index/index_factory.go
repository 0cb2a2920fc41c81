package index

import (
	"errors"
	"fmt"
)

// ErrUnsupportedIndexKind is returned by the factory for metadata whose
// kind has no implementation. Surfaced at construction time.
var ErrUnsupportedIndexKind = errors.New("unsupported index kind")

// GetInstance dispatches on the metadata's index kind and builds one of
// the closed set of index implementations.
func GetInstance(metadata *IndexMetadata) (Index, error) {
	switch metadata.GetKind() {
	case IndexKindHashTable:
		return NewHashTableIndex(metadata), nil
	case IndexKindUniqHashTable:
		return NewUniqHashTableIndex(metadata), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedIndexKind, metadata.GetKind())
	}
}
