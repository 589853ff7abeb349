package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"smells/internal/domain"
)

// Config holds all configuration for the scanner.
type Config struct {
	Scan       ScanConfig            `yaml:"scan"`
	Output     OutputConfig          `yaml:"output"`
	Thresholds map[string]Thresholds `yaml:"thresholds"`
}

// ScanConfig holds walking and caching configuration.
type ScanConfig struct {
	Excludes  []string `yaml:"excludes"`  // extra exclude globs on top of the language skip rules
	Languages []string `yaml:"languages"` // force these languages instead of auto-detection
	Cache     bool     `yaml:"cache"`
}

// OutputConfig holds report rendering configuration.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "json"
}

// Thresholds are the warning/error limits applied to one language.
// A zero field in a config file override keeps the default.
type Thresholds struct {
	FileWarn  int `yaml:"file_warn"`
	FileError int `yaml:"file_error"`
	FuncWarn  int `yaml:"func_warn"`
	FuncError int `yaml:"func_error"`
	NestWarn  int `yaml:"nest_warn"`
	NestError int `yaml:"nest_error"`
}

// Overrides are CLI-level threshold overrides; zero means unset.
type Overrides struct {
	FileWarn  int
	FileError int
	FuncWarn  int
	FuncError int
	NestWarn  int
	NestError int
}

// DefaultThresholds returns the built-in limits for a language.
func DefaultThresholds(lang domain.Language) Thresholds {
	switch lang {
	case domain.LanguageElixir:
		return Thresholds{FileWarn: 300, FileError: 500, FuncWarn: 30, FuncError: 50, NestWarn: 4, NestError: 6}
	case domain.LanguageDart:
		return Thresholds{FileWarn: 400, FileError: 600, FuncWarn: 40, FuncError: 70, NestWarn: 4, NestError: 6}
	case domain.LanguageTypeScript:
		return Thresholds{FileWarn: 250, FileError: 400, FuncWarn: 50, FuncError: 80, NestWarn: 4, NestError: 6}
	case domain.LanguagePython:
		return Thresholds{FileWarn: 300, FileError: 500, FuncWarn: 30, FuncError: 50, NestWarn: 4, NestError: 6}
	case domain.LanguageRust:
		return Thresholds{FileWarn: 400, FileError: 600, FuncWarn: 40, FuncError: 60, NestWarn: 4, NestError: 6}
	default:
		return Thresholds{FileWarn: 300, FileError: 500, FuncWarn: 30, FuncError: 50, NestWarn: 4, NestError: 6}
	}
}

// ThresholdsFor resolves the limits for a language: defaults, then any
// non-zero fields from the config file.
func (c *Config) ThresholdsFor(lang domain.Language) Thresholds {
	t := DefaultThresholds(lang)
	override, ok := c.Thresholds[string(lang)]
	if !ok {
		return t
	}
	if override.FileWarn > 0 {
		t.FileWarn = override.FileWarn
	}
	if override.FileError > 0 {
		t.FileError = override.FileError
	}
	if override.FuncWarn > 0 {
		t.FuncWarn = override.FuncWarn
	}
	if override.FuncError > 0 {
		t.FuncError = override.FuncError
	}
	if override.NestWarn > 0 {
		t.NestWarn = override.NestWarn
	}
	if override.NestError > 0 {
		t.NestError = override.NestError
	}
	return t
}

// WithOverrides applies CLI flag overrides on top of resolved thresholds.
func (t Thresholds) WithOverrides(o Overrides) Thresholds {
	if o.FileWarn > 0 {
		t.FileWarn = o.FileWarn
	}
	if o.FileError > 0 {
		t.FileError = o.FileError
	}
	if o.FuncWarn > 0 {
		t.FuncWarn = o.FuncWarn
	}
	if o.FuncError > 0 {
		t.FuncError = o.FuncError
	}
	if o.NestWarn > 0 {
		t.NestWarn = o.NestWarn
	}
	if o.NestError > 0 {
		t.NestError = o.NestError
	}
	return t
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			Cache:    true,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults if
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a project directory, trying
// smells.yaml first and then .smells/config.yaml.
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "smells.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".smells", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the scan-result cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".smells", "cache.db")
}

// EnsureSmellsDir ensures the .smells directory exists.
func EnsureSmellsDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".smells"), 0755)
}
