package lang

import (
	"regexp"
	"strings"

	"smells/internal/domain"
)

// TypeScriptScanner extracts function and arrow-function definitions from
// TypeScript source.
type TypeScriptScanner struct{}

var (
	tsFuncPattern  = regexp.MustCompile(`^\s*(export\s+)?(async\s+)?function\s+([a-zA-Z_][a-zA-Z0-9_]*)`)
	tsArrowPattern = regexp.MustCompile(`^\s*(export\s+)?(const|let|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=:].*=>`)
)

func (s *TypeScriptScanner) Language() domain.Language {
	return domain.LanguageTypeScript
}

func (s *TypeScriptScanner) Extensions() []string {
	return []string{"ts", "tsx"}
}

func (s *TypeScriptScanner) ParseFunctions(content string) []domain.Function {
	return scanBraceLanguage(content, quoteSplitBacktick, tsMatchSignature)
}

func tsMatchSignature(line string) signature {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "type ") || strings.HasPrefix(trimmed, "interface ") {
		return signature{}
	}

	// Single-expression arrows carry no block to measure.
	if strings.Contains(line, "=>") && !strings.Contains(line, "{") {
		return signature{}
	}

	if caps := tsFuncPattern.FindStringSubmatch(line); caps != nil {
		return signature{name: caps[3], matched: true}
	}
	if caps := tsArrowPattern.FindStringSubmatch(line); caps != nil {
		return signature{name: caps[3], matched: true}
	}

	return signature{}
}

func (s *TypeScriptScanner) ShouldSkip(path string) bool {
	p := toSlash(path)

	if strings.Contains(p, "/node_modules/") ||
		strings.Contains(p, "/dist/") ||
		strings.Contains(p, "/build/") ||
		strings.Contains(p, "/.git/") {
		return true
	}

	// Type declaration files hold no executable bodies.
	return strings.HasSuffix(p, ".d.ts")
}
