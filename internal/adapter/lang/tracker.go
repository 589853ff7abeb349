package lang

import "smells/internal/domain"

// signature is the result of testing a line for a function definition.
type signature struct {
	name    string
	matched bool
	// consume marks an excluded candidate line that must not feed the
	// delimiter counter at all (Dart arrow bodies, abstract signatures,
	// getters).
	consume bool
}

// scanBraceLanguage is the shared extent tracker for brace-delimited
// languages. A signature match opens a record, finalizing any open one at
// the preceding line; depth returning to the opening baseline closes the
// record inclusive of the closing line; end of file closes inclusively.
// A signature inside an open function is treated as a sibling, so local
// definitions truncate their enclosing function. The depth counter runs
// across the whole file and is never reset between functions.
func scanBraceLanguage(content string, mode quoteMode, match func(string) signature) []domain.Function {
	lines := splitLines(content)
	var functions []domain.Function

	inFunc := false
	braceDepth := 0
	baseDepth := 0
	maxNesting := 0
	funcName := ""
	funcStart := 0

	for i, line := range lines {
		lineNum := i + 1

		sig := match(line)
		if sig.consume {
			continue
		}
		if sig.matched {
			if inFunc && funcStart > 0 {
				functions = append(functions, domain.Function{
					Name:       funcName,
					StartLine:  funcStart,
					LineCount:  lineNum - funcStart,
					MaxNesting: maxNesting,
				})
			}

			funcName = sig.name
			funcStart = lineNum
			inFunc = true
			baseDepth = braceDepth
			maxNesting = 0

			opens, closes := countBraces(line, mode)
			braceDepth += opens - closes
			continue
		}

		opens, closes := countBraces(line, mode)
		braceDepth += opens - closes

		if inFunc {
			if rel := braceDepth - baseDepth; rel > maxNesting {
				maxNesting = rel
			}

			if braceDepth <= baseDepth && lineNum > funcStart {
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
