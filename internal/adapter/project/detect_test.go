package project

import (
	"os"
	"path/filepath"
	"testing"

	"smells/internal/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDetectLanguagesMarkers(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "mix.exs"))
	touch(t, filepath.Join(tmpDir, "Cargo.toml"))

	detected := DetectLanguages(tmpDir)
	if len(detected) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(detected))
	}
	if detected[0].Language != domain.LanguageElixir || detected[0].SourceDir != "lib" {
		t.Errorf("unexpected first detection: %+v", detected[0])
	}
	if detected[1].Language != domain.LanguageRust || detected[1].SourceDir != "src" {
		t.Errorf("unexpected second detection: %+v", detected[1])
	}
}

func TestDetectTypeScriptPrefersSrc(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "tsconfig.json"))
	touch(t, filepath.Join(tmpDir, "src", "index.ts"))

	detected := DetectLanguages(tmpDir)
	if len(detected) != 1 {
		t.Fatalf("expected 1 language, got %d", len(detected))
	}
	if detected[0].Language != domain.LanguageTypeScript || detected[0].SourceDir != "src" {
		t.Errorf("unexpected detection: %+v", detected[0])
	}
}

func TestDetectTypeScriptViaPackageJSON(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "package.json"))
	touch(t, filepath.Join(tmpDir, "lib", "main.ts"))

	detected := DetectLanguages(tmpDir)
	if len(detected) != 1 || detected[0].Language != domain.LanguageTypeScript {
		t.Fatalf("expected typescript via package.json, got %+v", detected)
	}
}

func TestDetectNothing(t *testing.T) {
	tmpDir := t.TempDir()
	if detected := DetectLanguages(tmpDir); len(detected) != 0 {
		t.Errorf("expected no languages, got %+v", detected)
	}
}

func TestParseLanguageList(t *testing.T) {
	detected := ParseLanguageList("rust, Python,unknown,dart")
	if len(detected) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(detected))
	}
	if detected[0].Language != domain.LanguageRust || detected[0].SourceDir != "src" {
		t.Errorf("unexpected rust detection: %+v", detected[0])
	}
	if detected[1].Language != domain.LanguagePython || detected[1].SourceDir != "." {
		t.Errorf("unexpected python detection: %+v", detected[1])
	}
	if detected[2].Language != domain.LanguageDart || detected[2].SourceDir != "lib" {
		t.Errorf("unexpected dart detection: %+v", detected[2])
	}
}
