package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/bugsniff/bugsniff/internal/types"
)

// Entry caches the analysis result for one file at a given content hash.
// On a later scan, a matching hash lets the engine reuse the stored
// result without re-analyzing the file.
type Entry struct {
	Hash   string       `json:"hash"`
	Result types.Result `json:"result"`
}

// DB maps repo-relative paths to cached entries.
type DB struct {
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits.
	// Fall back to repo root if .git does not exist.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "bugsniffcache.json")
	}
	return filepath.Join(root, ".bugsniffcache.json")
}

// Load reads the cache for root. A missing or corrupt cache yields an
// empty DB plus the underlying error; callers can ignore it.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save writes the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(defaultPath(root), b, 0644)
}

// Hash returns a 16-char hex digest of b, keyed for cache comparisons.
func Hash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
