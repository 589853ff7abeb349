package fs

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"smells/internal/port"
)

// Walker lists candidate source files under a root, filtered by
// doublestar include/exclude globs matched against root-relative paths.
type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	// The scanner's own state directory is never source.
	excludes = append([]string{".smells/**"}, excludes...)
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// IncludesForExtensions builds include globs matching the given file
// extensions (without dots) anywhere under the root.
func IncludesForExtensions(exts []string) []string {
	includes := make([]string, 0, len(exts))
	for _, ext := range exts {
		includes = append(includes, "**/*."+ext)
	}
	return includes
}

func (w *Walker) Walk(root string) ([]port.FileInfo, error) {
	var files []port.FileInfo

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if w.shouldExclude(relPath + "/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, port.FileInfo{
				Path:    path,
				ModTime: info.ModTime().Unix(),
				Size:    info.Size(),
			})
		}

		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ReadFile reads a file as text; callers treat failures as "file skipped".
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
