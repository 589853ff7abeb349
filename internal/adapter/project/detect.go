package project

import (
	"os"
	"path/filepath"
	"strings"

	"smells/internal/domain"
)

// DetectLanguages inspects a project directory for marker files and
// returns each detected language with the source directory to scan.
func DetectLanguages(projectDir string) []domain.DetectedLanguage {
	var detected []domain.DetectedLanguage

	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(projectDir, name))
		return err == nil
	}
	isDir := func(name string) bool {
		info, err := os.Stat(filepath.Join(projectDir, name))
		return err == nil && info.IsDir()
	}

	if exists("mix.exs") {
		detected = append(detected, domain.DetectedLanguage{
			Language:  domain.LanguageElixir,
			SourceDir: "lib",
		})
	}

	if exists("pubspec.yaml") {
		detected = append(detected, domain.DetectedLanguage{
			Language:  domain.LanguageDart,
			SourceDir: "lib",
		})
	}

	if exists("tsconfig.json") || hasTypeScriptFiles(projectDir) {
		sourceDir := "."
		if isDir("src") {
			sourceDir = "src"
		}
		detected = append(detected, domain.DetectedLanguage{
			Language:  domain.LanguageTypeScript,
			SourceDir: sourceDir,
		})
	}

	if exists("setup.py") || exists("pyproject.toml") || exists("requirements.txt") {
		sourceDir := "."
		if isDir("src") {
			sourceDir = "src"
		}
		detected = append(detected, domain.DetectedLanguage{
			Language:  domain.LanguagePython,
			SourceDir: sourceDir,
		})
	}

	if exists("Cargo.toml") {
		detected = append(detected, domain.DetectedLanguage{
			Language:  domain.LanguageRust,
			SourceDir: "src",
		})
	}

	return detected
}

// hasTypeScriptFiles checks common locations for .ts/.tsx files when a
// package.json exists without a tsconfig.json.
func hasTypeScriptFiles(projectDir string) bool {
	if _, err := os.Stat(filepath.Join(projectDir, "package.json")); err != nil {
		return false
	}

	for _, dir := range []string{"src", "lib", "."} {
		entries, err := os.ReadDir(filepath.Join(projectDir, dir))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			ext := filepath.Ext(entry.Name())
			if ext == ".ts" || ext == ".tsx" {
				return true
			}
		}
	}
	return false
}

// ParseLanguageList parses a comma-separated language list from the CLI,
// pairing each known language with its conventional source directory.
// Unknown names are dropped.
func ParseLanguageList(input string) []domain.DetectedLanguage {
	var detected []domain.DetectedLanguage

	for _, part := range strings.Split(input, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		var lang domain.Language
		var sourceDir string

		switch name {
		case "elixir":
			lang, sourceDir = domain.LanguageElixir, "lib"
		case "dart":
			lang, sourceDir = domain.LanguageDart, "lib"
		case "typescript":
			lang, sourceDir = domain.LanguageTypeScript, "src"
		case "python":
			lang, sourceDir = domain.LanguagePython, "."
		case "rust":
			lang, sourceDir = domain.LanguageRust, "src"
		default:
			continue
		}

		detected = append(detected, domain.DetectedLanguage{
			Language:  lang,
			SourceDir: sourceDir,
		})
	}

	return detected
}
