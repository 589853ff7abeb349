package port

import "smells/internal/domain"

// Scanner is one language's heuristic function extractor.
type Scanner interface {
	// ParseFunctions extracts function records from raw file content in a
	// single forward pass. It never fails: malformed input degrades to
	// fewer or truncated records.
	ParseFunctions(content string) []domain.Function

	// ShouldSkip reports whether a path is a build artifact, vendored
	// dependency, or generated file for this language.
	ShouldSkip(path string) bool

	// Language returns the language this scanner handles.
	Language() domain.Language

	// Extensions returns the file extensions (without dot) this scanner
	// claims.
	Extensions() []string
}
