package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"smells/internal/domain"
)

// Filter restricts which severities a text report shows.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterErrors   Filter = "errors"
	FilterWarnings Filter = "warnings"
)

// ANSI color codes.
const (
	red    = "\x1b[0;31m"
	yellow = "\x1b[1;33m"
	green  = "\x1b[0;32m"
	bold   = "\x1b[1m"
	reset  = "\x1b[0m"
)

// IsTerminal reports whether stdout is a TTY; color is only used then.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Text renders the human-readable report.
func Text(w io.Writer, report *domain.Report, projectDir string, languages []domain.Language, filter Filter, useColor bool) {
	b, r, rd, yl, gn := bold, reset, red, yellow, green
	if !useColor {
		b, r, rd, yl, gn = "", "", "", "", ""
	}

	fmt.Fprintf(w, "%s=== Code Smells Report ===%s\n", b, r)
	fmt.Fprintf(w, "Project: %s\n", projectDir)
	fmt.Fprintf(w, "Languages: %s\n", joinLanguages(languages))

	var errors, warnings []domain.Issue
	for _, issue := range report.Issues {
		if issue.Severity == domain.SeverityError {
			errors = append(errors, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}

	if filter != FilterWarnings && len(errors) > 0 {
		fmt.Fprintf(w, "\n%s--- ERRORS (%d) ---%s\n", b, len(errors), r)
		for _, issue := range errors {
			fmt.Fprintf(w, "%sERROR%s  %s\n", rd, r, issue.Message)
		}
	}

	if filter != FilterErrors && len(warnings) > 0 {
		fmt.Fprintf(w, "\n%s--- WARNINGS (%d) ---%s\n", b, len(warnings), r)
		for _, issue := range warnings {
			fmt.Fprintf(w, "%sWARN%s   %s\n", yl, r, issue.Message)
		}
	}

	fmt.Fprintf(w, "\n%s--- SUMMARY ---%s\n", b, r)
	fmt.Fprintf(w, "Files scanned: %d\n", report.FilesScanned)
	if n := report.ErrorCount(); n > 0 {
		fmt.Fprintf(w, "Errors: %s%d%s\n", rd, n, r)
	} else {
		fmt.Fprintf(w, "Errors: %s0%s\n", gn, r)
	}
	if n := report.WarningCount(); n > 0 {
		fmt.Fprintf(w, "Warnings: %s%d%s\n", yl, n, r)
	} else {
		fmt.Fprintf(w, "Warnings: %s0%s\n", gn, r)
	}
}

type jsonReport struct {
	Project   string         `json:"project"`
	Languages []string       `json:"languages"`
	Issues    []domain.Issue `json:"issues"`
	Summary   jsonSummary    `json:"summary"`
}

type jsonSummary struct {
	Files    int `json:"files"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// JSON renders the machine-readable report.
func JSON(w io.Writer, report *domain.Report, projectDir string, languages []domain.Language) error {
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		names = append(names, string(l))
	}

	issues := report.Issues
	if issues == nil {
		issues = []domain.Issue{}
	}

	out := jsonReport{
		Project:   projectDir,
		Languages: names,
		Issues:    issues,
		Summary: jsonSummary{
			Files:    report.FilesScanned,
			Errors:   report.ErrorCount(),
			Warnings: report.WarningCount(),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func joinLanguages(languages []domain.Language) string {
	s := ""
	for i, l := range languages {
		if i > 0 {
			s += ", "
		}
		s += string(l)
	}
	return s
}
