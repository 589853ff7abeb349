package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"smells/internal/adapter/project"
	"smells/internal/adapter/render"
	"smells/internal/domain"
	"smells/internal/usecase"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Rescan the project whenever source files change",
	Long: `Watch the project tree and rerun the scan after files change. Events
are debounced so a burst of writes (e.g. a formatter pass) triggers a
single rescan. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var (
	watchLangs    string
	watchCheck    string
	watchDebounce time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchLangs, "lang", "l", "", "comma-separated languages to scan (default: auto-detect)")
	watchCmd.Flags().StringVarP(&watchCheck, "check", "c", "all", "check to run: all, file-length, functions, nesting")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "delay before rescanning after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	projectDir, err := resolveProjectDir(args)
	if err != nil {
		return err
	}

	check, err := usecase.ParseCheckType(watchCheck)
	if err != nil {
		return err
	}

	var languages []domain.DetectedLanguage
	if watchLangs != "" {
		languages = project.ParseLanguageList(watchLangs)
	} else {
		languages = project.DetectLanguages(projectDir)
	}
	if len(languages) == 0 {
		return fmt.Errorf("no supported languages detected in %s", projectDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, projectDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", projectDir, err)
	}

	rescan := func() {
		report, scanErr := runWatchScan(projectDir, languages, check)
		if scanErr != nil {
			fmt.Fprintf(os.Stderr, "Scan failed: %v\n", scanErr)
			return
		}
		langs := make([]domain.Language, 0, len(languages))
		for _, l := range languages {
			langs = append(langs, l.Language)
		}
		render.Text(os.Stdout, report, projectDir, langs, render.FilterAll, render.IsTerminal())
	}

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", projectDir)
	rescan()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-sigs:
			fmt.Println("\nStopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldIgnoreWatchPath(event.Name) {
				continue
			}

			// Newly created directories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = addWatchRecursive(watcher, event.Name)
				}
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if pending {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
			}
			timer.Reset(watchDebounce)
			pending = true

		case <-timer.C:
			if pending {
				pending = false
				rescan()
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", watchErr)
		}
	}
}

func runWatchScan(projectDir string, languages []domain.DetectedLanguage, check usecase.CheckType) (*domain.Report, error) {
	cache := openCache(projectDir)
	if cache != nil {
		defer cache.Close()
	}

	scanUC := usecase.NewScanUseCase(cfg, cache)
	return scanUC.Scan(usecase.ScanOptions{
		ProjectDir: projectDir,
		Languages:  languages,
		Check:      check,
	})
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && shouldSkipWatchDir(entry.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func shouldSkipWatchDir(name string) bool {
	switch name {
	case "node_modules", "vendor", "deps", "_build", "target", "dist", "build", "__pycache__":
		return true
	}
	return strings.HasPrefix(name, ".")
}

func shouldIgnoreWatchPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swx") || strings.HasPrefix(base, ".#") {
		return true
	}
	return base == ".DS_Store" || strings.Contains(filepath.ToSlash(path), "/.smells/")
}
