package domain

// Language identifies a supported language variant.
type Language string

const (
	LanguageElixir     Language = "elixir"
	LanguageDart       Language = "dart"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageRust       Language = "rust"
)

// DisplayName returns the human-facing name of the language.
func (l Language) DisplayName() string {
	switch l {
	case LanguageElixir:
		return "Elixir"
	case LanguageDart:
		return "Dart"
	case LanguageTypeScript:
		return "TypeScript"
	case LanguagePython:
		return "Python"
	case LanguageRust:
		return "Rust"
	default:
		return string(l)
	}
}

// Function is one detected function or method within a file.
// Name may be empty when extraction fails; the record is still reported.
type Function struct {
	Name       string `json:"name"`
	StartLine  int    `json:"start_line"`
	LineCount  int    `json:"line_count"`
	MaxNesting int    `json:"max_nesting"`
}

// Severity classifies an issue.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Check type tags carried on issues.
const (
	CheckFileLength     = "file-length"
	CheckFunctionLength = "function-length"
	CheckNestingDepth   = "nesting-depth"
)

// Issue is one over-threshold finding.
type Issue struct {
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line,omitempty"`
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type"`
	Value    int      `json:"value"`
	Limit    int      `json:"limit"`
	Message  string   `json:"-"`
}

// Report accumulates findings across a scan.
type Report struct {
	Issues       []Issue
	FilesScanned int
}

func (r *Report) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *Report) ErrorCount() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}

func (r *Report) WarningCount() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// ExitCode maps findings to the process exit status: 2 for any error,
// 1 for warnings only, 0 for a clean scan.
func (r *Report) ExitCode() int {
	if r.ErrorCount() > 0 {
		return 2
	}
	if r.WarningCount() > 0 {
		return 1
	}
	return 0
}

// FileResult is the outcome of scanning a single file.
type FileResult struct {
	Path      string     `json:"path"`
	LineCount int        `json:"line_count"`
	Functions []Function `json:"functions"`
}

// DetectedLanguage pairs a language with the source directory to scan.
type DetectedLanguage struct {
	Language  Language
	SourceDir string
}
