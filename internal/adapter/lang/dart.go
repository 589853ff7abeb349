package lang

import (
	"regexp"
	"strings"

	"smells/internal/domain"
)

// DartScanner extracts method definitions from Dart source.
type DartScanner struct{}

var dartMethodPattern = regexp.MustCompile(
	`^\s*(static\s+)?(void|bool|int|double|String|Future|Widget|State|List|Map|Set|dynamic|[A-Z][a-zA-Z0-9_<>,?\s]*)\s+([a-z_][a-zA-Z0-9_]*)\s*\(`,
)

func (s *DartScanner) Language() domain.Language {
	return domain.LanguageDart
}

func (s *DartScanner) Extensions() []string {
	return []string{"dart"}
}

func (s *DartScanner) ParseFunctions(content string) []domain.Function {
	return scanBraceLanguage(content, quoteShared, dartMatchSignature)
}

func dartMatchSignature(line string) signature {
	caps := dartMethodPattern.FindStringSubmatch(line)
	if caps == nil {
		return signature{}
	}

	// Arrow bodies, abstract signatures, and getters are candidates by
	// pattern but carry no block; the whole line is dropped from the
	// brace count, matching how the extent tracker has always behaved.
	if strings.Contains(line, "=>") && !strings.Contains(line, "{") {
		return signature{consume: true}
	}
	if strings.HasSuffix(strings.TrimSpace(line), ";") {
		return signature{consume: true}
	}
	if strings.Contains(line, " get ") {
		return signature{consume: true}
	}

	return signature{name: caps[3], matched: true}
}

func (s *DartScanner) ShouldSkip(path string) bool {
	p := toSlash(path)

	if strings.Contains(p, "/.dart_tool/") ||
		strings.Contains(p, "/build/") ||
		strings.Contains(p, "/.git/") {
		return true
	}

	// Generated files.
	return strings.HasSuffix(p, ".g.dart") ||
		strings.HasSuffix(p, ".freezed.dart") ||
		strings.HasSuffix(p, ".gen.dart") ||
		strings.Contains(p, "firebase_options.dart")
}
