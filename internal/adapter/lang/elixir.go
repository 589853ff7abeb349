package lang

import (
	"regexp"
	"strings"

	"smells/internal/domain"
)

// ElixirScanner extracts def/defp/defmacro/defmacrop definitions from
// Elixir source, using do/end keyword balance as the closure rule.
type ElixirScanner struct{}

var elixirDefPattern = regexp.MustCompile(`^\s*(def|defp|defmacro|defmacrop)\s+([a-z_][a-zA-Z0-9_?!]*)`)

// Constructs that open an implicit scope; a line pairing one of these
// with "do" widens the nesting estimate even when the do/end balance
// spans multiple lines.
var elixirNestingKeywords = []string{"case", "cond", "if", "unless", "with", "try", "receive", "for"}

func (s *ElixirScanner) Language() domain.Language {
	return domain.LanguageElixir
}

func (s *ElixirScanner) Extensions() []string {
	return []string{"ex", "exs"}
}

func (s *ElixirScanner) ParseFunctions(content string) []domain.Function {
	lines := splitLines(content)
	var functions []domain.Function

	inFunc := false
	depth := 0
	maxNesting := 0
	funcName := ""
	funcStart := 0

	for i, line := range lines {
		lineNum := i + 1

		if caps := elixirDefPattern.FindStringSubmatch(line); caps != nil {
			// Single-line ", do:" clauses have no block; the line is
			// dropped from the keyword count entirely.
			if strings.Contains(line, ", do:") {
				continue
			}

			if inFunc && funcStart > 0 {
				functions = append(functions, domain.Function{
					Name:       funcName,
					StartLine:  funcStart,
					LineCount:  lineNum - funcStart,
					MaxNesting: maxNesting,
				})
			}

			funcName = caps[2]
			funcStart = lineNum
			inFunc = true
			depth = 0
			maxNesting = 0

			dos, ends := countDoEnd(line)
			depth += dos - ends
			continue
		}

		dos, ends := countDoEnd(line)
		depth += dos - ends

		if inFunc {
			if depth > 0 && depth > maxNesting {
				maxNesting = depth
			}
			if k := countNestingKeywords(line); k > maxNesting {
				maxNesting = k
			}

			if depth <= 0 && lineNum > funcStart {
				functions = append(functions, domain.Function{
					Name:       funcName,
					StartLine:  funcStart,
					LineCount:  lineNum - funcStart + 1,
					MaxNesting: maxNesting,
				})
				inFunc = false
				funcStart = 0
				maxNesting = 0
			}
		}
	}

	if inFunc && funcStart > 0 {
		functions = append(functions, domain.Function{
			Name:       funcName,
			StartLine:  funcStart,
			LineCount:  len(lines) - funcStart + 1,
			MaxNesting: maxNesting,
		})
	}

	return functions
}

func (s *ElixirScanner) ShouldSkip(path string) bool {
	p := toSlash(path)
	return strings.Contains(p, "/deps/") ||
		strings.Contains(p, "/_build/") ||
		strings.Contains(p, "/.git/")
}

// countDoEnd counts whole-word do and end tokens on a line, with anything
// after a # treated as a comment. A bare do inside a non-block construct
// is still counted; that imprecision is accepted.
func countDoEnd(line string) (dos, ends int) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	for _, word := range strings.Fields(line) {
		switch word {
		case "do":
			dos++
		case "end":
			ends++
		}
	}

	return dos, ends
}

// countNestingKeywords estimates implicit scope depth from a single line:
// each scope keyword co-occurring with "do", plus an fn/-> pair, counts
// one unit. Matching is plain substring search, so multi-line constructs
// can be missed and unrelated text can over-count.
func countNestingKeywords(line string) int {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	depth := 0
	for _, kw := range elixirNestingKeywords {
		if strings.Contains(line, kw) && strings.Contains(line, "do") {
			depth++
		}
	}

	if strings.Contains(line, "fn") && strings.Contains(line, "->") {
		depth++
	}

	return depth
}
