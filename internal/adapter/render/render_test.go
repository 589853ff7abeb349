package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"smells/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		FilesScanned: 3,
		Issues: []domain.Issue{
			{
				Severity: domain.SeverityError,
				File:     "src/big.rs",
				Type:     domain.CheckFileLength,
				Value:    700,
				Limit:    600,
				Message:  "src/big.rs (700 lines, limit: 600)",
			},
			{
				Severity: domain.SeverityWarning,
				File:     "src/main.rs",
				Line:     10,
				Name:     "run",
				Type:     domain.CheckFunctionLength,
				Value:    45,
				Limit:    40,
				Message:  "src/main.rs:10 run (45 lines)",
			},
		},
	}
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport(), "/proj", []domain.Language{domain.LanguageRust}, FilterAll, false)
	out := buf.String()

	for _, want := range []string{
		"=== Code Smells Report ===",
		"Project: /proj",
		"Languages: rust",
		"--- ERRORS (1) ---",
		"ERROR  src/big.rs (700 lines, limit: 600)",
		"--- WARNINGS (1) ---",
		"WARN   src/main.rs:10 run (45 lines)",
		"Files scanned: 3",
		"Errors: 1",
		"Warnings: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestTextReportFilters(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport(), "/proj", []domain.Language{domain.LanguageRust}, FilterErrors, false)
	out := buf.String()
	if strings.Contains(out, "--- WARNINGS") {
		t.Error("errors filter should hide warnings section")
	}
	if !strings.Contains(out, "--- ERRORS") {
		t.Error("errors filter should keep errors section")
	}

	buf.Reset()
	Text(&buf, sampleReport(), "/proj", []domain.Language{domain.LanguageRust}, FilterWarnings, false)
	out = buf.String()
	if strings.Contains(out, "--- ERRORS") {
		t.Error("warnings filter should hide errors section")
	}
}

func TestTextReportNoColorByDefaultWriter(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport(), "/proj", []domain.Language{domain.LanguageRust}, FilterAll, false)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected no ANSI escapes with color disabled")
	}
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport(), "/proj", []domain.Language{domain.LanguageRust, domain.LanguagePython}); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Project   string   `json:"project"`
		Languages []string `json:"languages"`
		Issues    []struct {
			Severity string `json:"severity"`
			File     string `json:"file"`
			Line     int    `json:"line"`
			Name     string `json:"name"`
			Type     string `json:"type"`
			Value    int    `json:"value"`
			Limit    int    `json:"limit"`
		} `json:"issues"`
		Summary struct {
			Files    int `json:"files"`
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Project != "/proj" {
		t.Errorf("unexpected project: %q", decoded.Project)
	}
	if len(decoded.Languages) != 2 || decoded.Languages[0] != "rust" {
		t.Errorf("unexpected languages: %v", decoded.Languages)
	}
	if len(decoded.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(decoded.Issues))
	}
	if decoded.Issues[0].Severity != "error" || decoded.Issues[0].Type != "file-length" {
		t.Errorf("unexpected first issue: %+v", decoded.Issues[0])
	}
	if decoded.Issues[1].Line != 10 || decoded.Issues[1].Name != "run" {
		t.Errorf("unexpected second issue: %+v", decoded.Issues[1])
	}
	if decoded.Summary.Files != 3 || decoded.Summary.Errors != 1 || decoded.Summary.Warnings != 1 {
		t.Errorf("unexpected summary: %+v", decoded.Summary)
	}

	// The human message is not part of the wire format.
	if strings.Contains(buf.String(), "700 lines, limit") {
		t.Error("message field leaked into JSON")
	}
}

func TestJSONReportEmptyIssues(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, &domain.Report{FilesScanned: 1}, "/proj", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"issues": []`) {
		t.Errorf("expected empty issues array, got:\n%s", buf.String())
	}
}
