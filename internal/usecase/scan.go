package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smells/config"
	"smells/internal/adapter/fs"
	"smells/internal/adapter/lang"
	"smells/internal/domain"
	"smells/internal/port"
)

// CheckType selects which checks a scan runs.
type CheckType string

const (
	CheckAll        CheckType = "all"
	CheckFileLength CheckType = "file-length"
	CheckFunctions  CheckType = "functions"
	CheckNesting    CheckType = "nesting"
)

// ParseCheckType validates a check type name from the CLI.
func ParseCheckType(s string) (CheckType, error) {
	switch CheckType(s) {
	case CheckAll, CheckFileLength, CheckFunctions, CheckNesting:
		return CheckType(s), nil
	default:
		return "", fmt.Errorf("unknown check type: %s (want all, file-length, functions, nesting)", s)
	}
}

// ProgressFunc reports scan progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// ScanUseCase runs the configured checks over a project.
type ScanUseCase struct {
	cfg   *config.Config
	cache port.ResultCache // nil disables caching
}

func NewScanUseCase(cfg *config.Config, cache port.ResultCache) *ScanUseCase {
	return &ScanUseCase{cfg: cfg, cache: cache}
}

// ScanOptions parameterize a single scan.
type ScanOptions struct {
	ProjectDir string
	Languages  []domain.DetectedLanguage
	Check      CheckType
	Overrides  config.Overrides
	Progress   ProgressFunc
}

type scanTarget struct {
	scanner    port.Scanner
	thresholds config.Thresholds
	file       port.FileInfo
}

// Scan walks every detected language's source directory, extracts
// function records, and compares them (and raw line counts) against the
// resolved thresholds. Unreadable files are skipped, never fatal.
func (u *ScanUseCase) Scan(opts ScanOptions) (*domain.Report, error) {
	report := &domain.Report{}

	targets, err := u.collectTargets(opts)
	if err != nil {
		return nil, err
	}

	for i, target := range targets {
		if opts.Progress != nil {
			opts.Progress(i, len(targets), target.file.Path)
		}

		result, ok := u.scanFile(target.scanner, target.file)
		if !ok {
			continue
		}
		report.FilesScanned++

		relPath := relativeTo(opts.ProjectDir, target.file.Path)
		u.checkResult(report, opts.Check, target.thresholds, relPath, result)
	}

	if opts.Progress != nil {
		opts.Progress(len(targets), len(targets), "")
	}

	return report, nil
}

// collectTargets walks each language's source directory and pairs every
// candidate file with its scanner and resolved thresholds.
func (u *ScanUseCase) collectTargets(opts ScanOptions) ([]scanTarget, error) {
	var targets []scanTarget

	for _, det := range opts.Languages {
		sourcePath := filepath.Join(opts.ProjectDir, det.SourceDir)
		info, err := os.Stat(sourcePath)
		if err != nil || !info.IsDir() {
			continue
		}

		scanner, err := lang.ForLanguage(det.Language)
		if err != nil {
			return nil, err
		}

		thresholds := u.cfg.ThresholdsFor(det.Language).WithOverrides(opts.Overrides)

		walker := fs.NewWalker(
			fs.IncludesForExtensions(scanner.Extensions()),
			u.cfg.Scan.Excludes,
		)
		files, err := walker.Walk(sourcePath)
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", sourcePath, err)
		}

		for _, file := range files {
			if scanner.ShouldSkip(file.Path) {
				continue
			}
			targets = append(targets, scanTarget{
				scanner:    scanner,
				thresholds: thresholds,
				file:       file,
			})
		}
	}

	return targets, nil
}

// scanFile produces the line count and function records for one file,
// consulting the cache first.
func (u *ScanUseCase) scanFile(scanner port.Scanner, file port.FileInfo) (domain.FileResult, bool) {
	if u.cache != nil {
		if cached, found, err := u.cache.Get(file.Path, file.ModTime, file.Size); err == nil && found {
			return cached, true
		}
	}

	content, err := fs.ReadFile(file.Path)
	if err != nil {
		return domain.FileResult{}, false
	}

	result := domain.FileResult{
		Path:      file.Path,
		LineCount: lang.CountLines(content),
		Functions: scanner.ParseFunctions(content),
	}

	if u.cache != nil {
		// Best effort; a failed write never fails the scan.
		_ = u.cache.Put(file.Path, file.ModTime, file.Size, result)
	}

	return result, true
}

func (u *ScanUseCase) checkResult(report *domain.Report, check CheckType, t config.Thresholds, relPath string, result domain.FileResult) {
	if check == CheckAll || check == CheckFileLength {
		checkFileLength(report, t, relPath, result.LineCount)
	}
	if check == CheckAll || check == CheckFunctions {
		for _, fn := range result.Functions {
			checkFunctionLength(report, t, relPath, fn)
		}
	}
	if check == CheckAll || check == CheckNesting {
		for _, fn := range result.Functions {
			checkNestingDepth(report, t, relPath, fn)
		}
	}
}

func checkFileLength(report *domain.Report, t config.Thresholds, relPath string, lineCount int) {
	severity, limit := classify(lineCount, t.FileWarn, t.FileError)
	if severity == "" {
		return
	}
	report.AddIssue(domain.Issue{
		Severity: severity,
		File:     relPath,
		Type:     domain.CheckFileLength,
		Value:    lineCount,
		Limit:    limit,
		Message:  fmt.Sprintf("%s (%d lines, limit: %d)", relPath, lineCount, limit),
	})
}

func checkFunctionLength(report *domain.Report, t config.Thresholds, relPath string, fn domain.Function) {
	severity, limit := classify(fn.LineCount, t.FuncWarn, t.FuncError)
	if severity == "" {
		return
	}
	report.AddIssue(domain.Issue{
		Severity: severity,
		File:     relPath,
		Line:     fn.StartLine,
		Name:     fn.Name,
		Type:     domain.CheckFunctionLength,
		Value:    fn.LineCount,
		Limit:    limit,
		Message:  fmt.Sprintf("%s:%d %s (%d lines)", relPath, fn.StartLine, fn.Name, fn.LineCount),
	})
}

func checkNestingDepth(report *domain.Report, t config.Thresholds, relPath string, fn domain.Function) {
	severity, limit := classify(fn.MaxNesting, t.NestWarn, t.NestError)
	if severity == "" {
		return
	}
	report.AddIssue(domain.Issue{
		Severity: severity,
		File:     relPath,
		Line:     fn.StartLine,
		Name:     fn.Name,
		Type:     domain.CheckNestingDepth,
		Value:    fn.MaxNesting,
		Limit:    limit,
		Message:  fmt.Sprintf("%s:%d %s (depth: %d)", relPath, fn.StartLine, fn.Name, fn.MaxNesting),
	})
}

// classify compares a value against its warn/error limits; an empty
// severity means the value is within limits.
func classify(value, warn, errLimit int) (domain.Severity, int) {
	if value > errLimit {
		return domain.SeverityError, errLimit
	}
	if value > warn {
		return domain.SeverityWarning, warn
	}
	return "", 0
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
