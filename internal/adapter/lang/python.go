package lang

import (
	"regexp"
	"strings"

	"smells/internal/domain"
)

// PythonScanner extracts def/async def definitions from Python source.
// Extents close on de-indentation instead of delimiter balance, and the
// line that de-indents out of a function is not counted into it.
type PythonScanner struct{}

var pyDefPattern = regexp.MustCompile(`^(\s*)(async\s+)?def\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`)

func (s *PythonScanner) Language() domain.Language {
	return domain.LanguagePython
}

func (s *PythonScanner) Extensions() []string {
	return []string{"py"}
}

func (s *PythonScanner) ParseFunctions(content string) []domain.Function {
	lines := splitLines(content)
	var functions []domain.Function

	inFunc := false
	funcIndent := 0
	maxNesting := 0
	funcName := ""
	funcStart := 0

	for i, line := range lines {
		lineNum := i + 1

		if caps := pyDefPattern.FindStringSubmatch(line); caps != nil {
			if inFunc && funcStart > 0 {
				functions = append(functions, domain.Function{
					Name:       funcName,
					StartLine:  funcStart,
					LineCount:  lineNum - funcStart,
					MaxNesting: maxNesting,
				})
			}

			funcName = caps[3]
			funcStart = lineNum
			funcIndent = len(caps[1])
			inFunc = true
			maxNesting = 0
			continue
		}

		if !inFunc {
			continue
		}

		// Blank and comment-only lines neither close the function nor
		// contribute nesting.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := measureIndent(line)

		if indent <= funcIndent && lineNum > funcStart {
			functions = append(functions, domain.Function{
				Name:       funcName,
				StartLine:  funcStart,
				LineCount:  lineNum - funcStart,
				MaxNesting: maxNesting,
			})
			inFunc = false
			funcStart = 0
			maxNesting = 0
			continue
		}

		if indent > funcIndent {
			// Nesting estimated in units of four spaces.
			if depth := (indent - funcIndent) / 4; depth > maxNesting {
				maxNesting = depth
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

// measureIndent counts leading whitespace characters; a tab counts as one.
func measureIndent(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\v' && r != '\f' {
			break
		}
		n++
	}
	return n
}

func (s *PythonScanner) ShouldSkip(path string) bool {
	p := toSlash(path)
	return strings.Contains(p, "/__pycache__/") ||
		strings.Contains(p, "/.venv/") ||
		strings.Contains(p, "/venv/") ||
		strings.Contains(p, "/env/") ||
		strings.Contains(p, "/.git/") ||
		strings.Contains(p, "/site-packages/")
}
