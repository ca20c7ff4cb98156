package engine

import (
	"errors"

	"catalog-sync/core/catalog"
)

var (
	// ErrUnknownCatalog is returned for names not in the registry.
	ErrUnknownCatalog = catalog.ErrUnknownCatalog
	// ErrDeltaUnsupported is returned when a cursor is sent to a catalog
	// without delta sync.
	ErrDeltaUnsupported = errors.New("catalog does not support delta sync")
	// ErrStorageUnavailable wraps every storage failure of a page build.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
