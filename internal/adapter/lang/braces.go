package lang

// quoteMode selects how a brace counter tracks literals. Dart folds both
// quote kinds into one flag; Rust keeps string and char literals separate;
// TypeScript adds backtick template literals on top of the split flags.
type quoteMode int

const (
	quoteShared quoteMode = iota
	quoteSplit
	quoteSplitBacktick
)

// countBraces scans one line and counts structural { and } occurring
// outside string/char literals and outside a // line comment. Literal
// state does not carry across lines, so multi-line strings and block
// comments are not recognized.
func countBraces(line string, mode quoteMode) (opens, closes int) {
	if mode == quoteShared {
		return countBracesShared(line)
	}

	inString := false
	inChar := false
	escapeNext := false

	for i := 0; i < len(line); i++ {
		if escapeNext {
			escapeNext = false
			continue
		}

		c := line[i]

		if (inString || inChar) && c == '\\' {
			escapeNext = true
			continue
		}

		if !inString && !inChar && c == '/' && i+1 < len(line) && line[i+1] == '/' {
			break
		}

		if c == '"' && !inChar {
			inString = !inString
		} else if c == '\'' && !inString {
			inChar = !inChar
		} else if mode == quoteSplitBacktick && c == '`' && !inChar && !inString {
			inString = !inString
		}

		if !inString && !inChar {
			switch c {
			case '{':
				opens++
			case '}':
				closes++
			}
		}
	}

	return opens, closes
}

// countBracesShared is the Dart variant: a single literal flag toggled by
// either quote character, escapes honored only inside a literal.
func countBracesShared(line string) (opens, closes int) {
	inString := false
	escapeNext := false

	for i := 0; i < len(line); i++ {
		if escapeNext {
			escapeNext = false
			continue
		}

		c := line[i]

		if inString && c == '\\' {
			escapeNext = true
			continue
		}

		if !inString && c == '/' && i+1 < len(line) && line[i+1] == '/' {
			break
		}

		if c == '"' || c == '\'' {
			inString = !inString
		}

		if !inString {
			switch c {
			case '{':
				opens++
			case '}':
				closes++
			}
		}
	}

	return opens, closes
}
