// ABOUTME: Badger-backed fallback cache for calendar data.
// ABOUTME: One named key holds the JSON form of both profiles' calendars.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/harper/bench/internal/models"
)

// CacheKey is the single key the calendar blob lives under. The name
// predates the second profile and is kept for data compatibility.
const CacheKey = "knight_calendar_data"

type cacheBlob struct {
	Knight map[string]models.DailyData `json:"Knight"`
	Hornet map[string]models.DailyData `json:"Hornet"`
}

// Cache is the disk-backed calendar store used when no remote is
// configured, and as a warm-start copy when one is.
type Cache struct {
	db *badger.DB
}

// DefaultCachePath returns the XDG data path for the cache.
func DefaultCachePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bench", "calendar")
}

// OpenCache opens (creating if needed) the badger store at path.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Load reads the calendar blob once. An absent or corrupt blob yields
// empty maps for both profiles; no error is surfaced for that case.
func (c *Cache) Load() map[models.Profile]map[string]models.DailyData {
	empty := map[models.Profile]map[string]models.DailyData{
		models.Knight: {},
		models.Hornet: {},
	}

	var raw []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(CacheKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			fmt.Fprintf(os.Stderr, "bench: read calendar cache: %v\n", err)
		}
		return empty
	}

	var blob cacheBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return empty
	}
	if blob.Knight == nil {
		blob.Knight = map[string]models.DailyData{}
	}
	if blob.Hornet == nil {
		blob.Hornet = map[string]models.DailyData{}
	}
	return map[models.Profile]map[string]models.DailyData{
		models.Knight: blob.Knight,
		models.Hornet: blob.Hornet,
	}
}

// Save serializes both profiles' calendars in full under CacheKey.
func (c *Cache) Save(calendars map[models.Profile]map[string]models.DailyData) error {
	blob := cacheBlob{
		Knight: calendars[models.Knight],
		Hornet: calendars[models.Hornet],
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal calendar cache: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(CacheKey), data)
	})
}
