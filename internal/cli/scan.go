package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"smells/config"
	"smells/internal/adapter/project"
	"smells/internal/adapter/render"
	"smells/internal/adapter/store"
	"smells/internal/domain"
	"smells/internal/port"
	"smells/internal/usecase"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a project for code smells",
	Long: `Scan a project directory for oversized files, long functions, and
deep nesting. Languages are detected from project manifests (mix.exs,
pubspec.yaml, tsconfig.json, pyproject.toml, Cargo.toml) unless given
explicitly with --lang.

Exit code is 2 when errors were found, 1 for warnings only, 0 when clean.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var (
	scanCheck    string
	scanLangs    string
	scanFormat   string
	errorsOnly   bool
	warningsOnly bool
	noCache      bool
	overrides    config.Overrides
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanCheck, "check", "c", "all", "check to run: all, file-length, functions, nesting")
	scanCmd.Flags().StringVarP(&scanLangs, "lang", "l", "", "comma-separated languages to scan (default: auto-detect)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "", "output format: text or json (default from config)")
	scanCmd.Flags().BoolVarP(&errorsOnly, "errors", "e", false, "show errors only")
	scanCmd.Flags().BoolVarP(&warningsOnly, "warnings", "w", false, "show warnings only")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the scan result cache")

	scanCmd.Flags().IntVar(&overrides.FileWarn, "file-warn", 0, "override file length warning threshold")
	scanCmd.Flags().IntVar(&overrides.FileError, "file-error", 0, "override file length error threshold")
	scanCmd.Flags().IntVar(&overrides.FuncWarn, "func-warn", 0, "override function length warning threshold")
	scanCmd.Flags().IntVar(&overrides.FuncError, "func-error", 0, "override function length error threshold")
	scanCmd.Flags().IntVar(&overrides.NestWarn, "nest-warn", 0, "override nesting depth warning threshold")
	scanCmd.Flags().IntVar(&overrides.NestError, "nest-error", 0, "override nesting depth error threshold")
}

func runScan(cmd *cobra.Command, args []string) error {
	projectDir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	check, err := usecase.ParseCheckType(scanCheck)
	if err != nil {
		return err
	}

	languages, err := resolveLanguages(projectDir)
	if err != nil {
		return err
	}

	format := scanFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format: %s (want text or json)", format)
	}

	cache := openCache(projectDir)
	if cache != nil {
		defer cache.Close()
	}

	// Progress display only makes sense on an interactive text run.
	var progress usecase.ProgressFunc
	if format == "text" && render.IsTerminal() {
		progress = newProgressCallback()
	}

	scanUC := usecase.NewScanUseCase(cfg, cache)
	report, err := scanUC.Scan(usecase.ScanOptions{
		ProjectDir: projectDir,
		Languages:  languages,
		Check:      check,
		Overrides:  overrides,
		Progress:   progress,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	renderReport(report, projectDir, languages, format)

	if code := report.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}

// resolveProjectDir turns the optional positional argument into an
// absolute, verified directory path.
func resolveProjectDir(args []string) (string, error) {
	dir := rootDir
	if len(args) > 0 {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}

	return abs, nil
}

// resolveLanguages picks the language set: the --lang flag wins, then
// the config file, then manifest auto-detection.
func resolveLanguages(projectDir string) ([]domain.DetectedLanguage, error) {
	if scanLangs != "" {
		languages := project.ParseLanguageList(scanLangs)
		if len(languages) == 0 {
			return nil, fmt.Errorf("no supported languages in %q (supported: elixir, dart, typescript, python, rust)", scanLangs)
		}
		return languages, nil
	}

	if len(cfg.Scan.Languages) > 0 {
		languages := project.ParseLanguageList(strings.Join(cfg.Scan.Languages, ","))
		if len(languages) > 0 {
			return languages, nil
		}
	}

	languages := project.DetectLanguages(projectDir)
	if len(languages) == 0 {
		return nil, fmt.Errorf("no supported languages detected in %s (supported: elixir, dart, typescript, python, rust)", projectDir)
	}
	return languages, nil
}

// openCache opens the bbolt result cache under .smells/. A cache that
// cannot be opened disables caching rather than failing the scan.
func openCache(projectDir string) port.ResultCache {
	if noCache || !cfg.Scan.Cache {
		return nil
	}

	if err := config.EnsureSmellsDir(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cache disabled: %v\n", err)
		return nil
	}

	cache, err := store.NewBoltCache(config.CacheDBPath(projectDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cache disabled: %v\n", err)
		return nil
	}
	return cache
}

// newProgressCallback builds a progress bar that initializes itself on
// the first report, once the total file count is known.
func newProgressCallback() usecase.ProgressFunc {
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var initialized bool

	return func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)
	}
}

func renderReport(report *domain.Report, projectDir string, languages []domain.DetectedLanguage, format string) {
	langs := make([]domain.Language, 0, len(languages))
	for _, l := range languages {
		langs = append(langs, l.Language)
	}

	if format == "json" {
		if err := render.JSON(os.Stdout, report, projectDir, langs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	filter := render.FilterAll
	switch {
	case errorsOnly:
		filter = render.FilterErrors
	case warningsOnly:
		filter = render.FilterWarnings
	}

	render.Text(os.Stdout, report, projectDir, langs, filter, render.IsTerminal())
}
