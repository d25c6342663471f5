// Package store persists provisioned address records to a local JSON
// file with expiration-aware querying.
//
// The storage model is whole-collection read-modify-write: every
// mutating operation reads the full collection, applies the change, and
// rewrites the file through a temporary path with an atomic rename.
// This assumes a single process owning the file and small collections
// (a single user's addresses); it does not scale past that and is not
// meant to.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

// DefaultExpirationWindow is how long a record stays active after its
// last save.
const DefaultExpirationWindow = 7 * 24 * time.Hour

// ErrRecordNotFound is returned by Get when no record has the address.
var ErrRecordNotFound = errors.New("address record not found")

// Store is a file-backed collection of address records.
type Store struct {
	path   string
	window time.Duration
	log    *zap.Logger
	now    func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithExpirationWindow sets how long a record stays active after a save.
// Default: 7 days.
func WithExpirationWindow(window time.Duration) StoreOption {
	return func(s *Store) {
		s.window = window
	}
}

// WithLogger sets the logger used for non-fatal storage conditions.
func WithLogger(log *zap.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store backed by the JSON file at path. The file and its
// parent directory are created lazily on first use.
func New(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		window: DefaultExpirationWindow,
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Init ensures the backing file and its parent directory exist,
// creating an empty collection when absent. It is idempotent and safe
// to call before every operation; reads and writes also initialize
// lazily, so calling it is optional.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat store file: %w", err)
	}
	return s.persist(nil)
}

// Save upserts a record keyed by rec.Address. On first creation
// CreatedAt is set to now; on every save UpdatedAt is set to now and
// ExpiresAt is recomputed as now plus the expiration window, refreshing
// the record's lifetime.
func (s *Store) Save(rec AddressRecord) error {
	if rec.Address == "" {
		return fmt.Errorf("record address is empty")
	}

	records, err := s.load()
	if err != nil {
		return err
	}

	now := s.now()
	rec.UpdatedAt = now
	rec.ExpiresAt = now.Add(s.window)

	updated := false
	for i := range records {
		if records[i].Address == rec.Address {
			rec.CreatedAt = records[i].CreatedAt
			records[i] = rec
			updated = true
			break
		}
	}
	if !updated {
		rec.CreatedAt = now
		records = append(records, rec)
	}

	return s.persist(records)
}

// Get returns the record for the address, or ErrRecordNotFound.
func (s *Store) Get(address string) (*AddressRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Address == address {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, ErrRecordNotFound
}

// List returns records ordered by creation time. When includeExpired is
// false, records whose expiry has passed (or is exactly now) are
// filtered out; expiry is evaluated at call time, never cached.
func (s *Store) List(includeExpired bool) ([]AddressRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]AddressRecord, 0, len(records))
	for _, rec := range records {
		if !includeExpired && rec.Expired(now) {
			continue
		}
		out = append(out, rec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Remove deletes the record for the address. It reports false, with no
// error, when the address is not present.
func (s *Store) Remove(address string) (bool, error) {
	records, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range records {
		if records[i].Address == address {
			records = append(records[:i], records[i+1:]...)
			if err := s.persist(records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// CleanupExpired removes every expired record in a single pass and
// returns how many were removed. The file is rewritten only when at
// least one record was dropped.
func (s *Store) CleanupExpired() (int, error) {
	records, err := s.load()
	if err != nil {
		return 0, err
	}

	now := s.now()
	kept := records[:0]
	removed := 0
	for _, rec := range records {
		if rec.Expired(now) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}

	if removed == 0 {
		return 0, nil
	}
	if err := s.persist(kept); err != nil {
		return 0, err
	}

	s.log.Info("removed expired address records", zap.Int("count", removed))
	return removed, nil
}

// load reads the full collection. A missing file is an empty
// collection; an unreadable or corrupt file degrades to an empty
// collection with a logged warning rather than failing the operation.
func (s *Store) load() ([]AddressRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		s.log.Warn("failed to read address store, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil, nil
	}

	if len(data) == 0 {
		return nil, nil
	}

	var records []AddressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("address store is corrupt, treating as empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return nil, nil
	}
	return records, nil
}

// persist rewrites the whole collection through a temporary file and an
// atomic rename, so a crash mid-write never leaves a truncated store.
func (s *Store) persist(records []AddressRecord) error {
	if records == nil {
		records = []AddressRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal address records: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".addresses-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("set store file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
