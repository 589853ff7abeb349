package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
	"smells/internal/domain"
)

var (
	bucketResults = []byte("results")
)

// BoltCache persists per-file scan results between runs. Entries are
// keyed by path and carry the size and mtime they were computed for, so
// a changed file is simply a cache miss.
type BoltCache struct {
	db *bbolt.DB
}

func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketResults)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltCache{db: db}, nil
}

type resultEntry struct {
	ModTime   int64             `json:"mod_time"`
	Size      int64             `json:"size"`
	LineCount int               `json:"line_count"`
	Functions []domain.Function `json:"functions"`
}

func (c *BoltCache) Get(path string, modTime, size int64) (domain.FileResult, bool, error) {
	var result domain.FileResult
	found := false

	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketResults).Get([]byte(path))
		if data == nil {
			return nil
		}

		var entry resultEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return err
		}
		if entry.ModTime != modTime || entry.Size != size {
			return nil
		}

		result = domain.FileResult{
			Path:      path,
			LineCount: entry.LineCount,
			Functions: entry.Functions,
		}
		found = true
		return nil
	})

	return result, found, err
}

func (c *BoltCache) Put(path string, modTime, size int64, result domain.FileResult) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		entry := resultEntry{
			ModTime:   modTime,
			Size:      size,
			LineCount: result.LineCount,
			Functions: result.Functions,
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketResults).Put([]byte(path), data)
	})
}

func (c *BoltCache) Clear() error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketResults); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketResults)
		return err
	})
}

func (c *BoltCache) Close() error {
	return c.db.Close()
}
