package store

import (
	"path/filepath"
	"testing"

	"smells/internal/domain"
)

func newTestCache(t *testing.T) *BoltCache {
	t.Helper()
	cache, err := NewBoltCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestCachePutGet(t *testing.T) {
	cache := newTestCache(t)

	result := domain.FileResult{
		Path:      "/proj/src/main.rs",
		LineCount: 42,
		Functions: []domain.Function{
			{Name: "main", StartLine: 1, LineCount: 10, MaxNesting: 2},
		},
	}

	if err := cache.Put(result.Path, 1000, 512, result); err != nil {
		t.Fatal(err)
	}

	got, found, err := cache.Get(result.Path, 1000, 512)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.LineCount != 42 || len(got.Functions) != 1 {
		t.Errorf("unexpected result: %+v", got)
	}
	if got.Functions[0].Name != "main" || got.Functions[0].MaxNesting != 2 {
		t.Errorf("unexpected function: %+v", got.Functions[0])
	}
}

func TestCacheStaleOnModTime(t *testing.T) {
	cache := newTestCache(t)

	result := domain.FileResult{Path: "/proj/a.py", LineCount: 5}
	if err := cache.Put(result.Path, 1000, 100, result); err != nil {
		t.Fatal(err)
	}

	if _, found, _ := cache.Get(result.Path, 2000, 100); found {
		t.Error("expected miss for changed mtime")
	}
	if _, found, _ := cache.Get(result.Path, 1000, 101); found {
		t.Error("expected miss for changed size")
	}
}

func TestCacheMissUnknownPath(t *testing.T) {
	cache := newTestCache(t)
	if _, found, _ := cache.Get("/nowhere.ts", 0, 0); found {
		t.Error("expected miss for unknown path")
	}
}

func TestCacheClear(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Put("/proj/a.ex", 1, 1, domain.FileResult{Path: "/proj/a.ex"}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := cache.Get("/proj/a.ex", 1, 1); found {
		t.Error("expected miss after clear")
	}
}
