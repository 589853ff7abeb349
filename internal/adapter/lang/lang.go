package lang

import (
	"fmt"
	"strings"

	"smells/internal/domain"
	"smells/internal/port"
)

// ForLanguage returns the scanner for a language.
func ForLanguage(l domain.Language) (port.Scanner, error) {
	switch l {
	case domain.LanguageElixir:
		return &ElixirScanner{}, nil
	case domain.LanguageDart:
		return &DartScanner{}, nil
	case domain.LanguageTypeScript:
		return &TypeScriptScanner{}, nil
	case domain.LanguagePython:
		return &PythonScanner{}, nil
	case domain.LanguageRust:
		return &RustScanner{}, nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", l)
	}
}

// Supported lists all languages with a scanner, in a stable order.
func Supported() []domain.Language {
	return []domain.Language{
		domain.LanguageElixir,
		domain.LanguageDart,
		domain.LanguageTypeScript,
		domain.LanguagePython,
		domain.LanguageRust,
	}
}

// CountLines reports how many lines a file has, counted the same way the
// scanners attribute line numbers.
func CountLines(content string) int {
	return len(splitLines(content))
}

// splitLines splits content the way the scanners count lines: one element
// per line, no trailing empty line for a trailing newline, and the \r of a
// \r\n pair stripped. Empty content has zero lines.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		lines = lines[:last]
	}
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	if n := len(lines); n > 0 && strings.HasSuffix(content, "\n") {
		lines[n-1] = strings.TrimSuffix(lines[n-1], "\r")
	}
	return lines
}

// pathContains reports whether the slash-normalized path contains the
// given fragment. Skip predicates match on substrings, not path segments.
func pathContains(path, fragment string) bool {
	return strings.Contains(toSlash(path), fragment)
}

func toSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
