package lang

import (
	"regexp"
	"strings"

	"smells/internal/domain"
)

// RustScanner extracts fn definitions from Rust source.
type RustScanner struct{}

var rustFnPattern = regexp.MustCompile(`^\s*(pub(\([^)]*\))?\s+)?(async\s+)?(unsafe\s+)?fn\s+([a-zA-Z_][a-zA-Z0-9_]*)`)

func (s *RustScanner) Language() domain.Language {
	return domain.LanguageRust
}

func (s *RustScanner) Extensions() []string {
	return []string{"rs"}
}

func (s *RustScanner) ParseFunctions(content string) []domain.Function {
	return scanBraceLanguage(content, quoteSplit, func(line string) signature {
		if caps := rustFnPattern.FindStringSubmatch(line); caps != nil {
			return signature{name: caps[5], matched: true}
		}
		return signature{}
	})
}

func (s *RustScanner) ShouldSkip(path string) bool {
	p := toSlash(path)
	return strings.Contains(p, "/target/") || strings.Contains(p, "/.git/")
}
