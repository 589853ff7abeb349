package port

import "smells/internal/domain"

// ResultCache stores per-file scan results keyed by path. An entry is only
// valid for the exact size and modification time it was stored under.
type ResultCache interface {
	Get(path string, modTime, size int64) (domain.FileResult, bool, error)

	Put(path string, modTime, size int64, result domain.FileResult) error

	Clear() error

	Close() error
}
