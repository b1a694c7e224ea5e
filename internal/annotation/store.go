package annotation

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"shotlog/internal/fileutil"
	"shotlog/internal/timecode"
)

// Store holds the full annotation set for one sidecar file during a single
// save operation. The file on disk is the durable copy; every save re-reads
// it fresh, so a Store is never cached across operations.
type Store struct {
	path    string
	records []Record
	skipped int
}

// Load reads the sidecar file at path into a Store. A missing file yields an
// empty store. Lines without a valid timestamp prefix are dropped and
// counted; legacy and foreign lines may exist in the file.
func Load(path string) (*Store, error) {
	store := &Store{path: path}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		// Unreadable files are treated as empty rather than fatal; the
		// subsequent persist reports the real problem if one exists.
		return store, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			store.skipped++
			continue
		}
		store.records = append(store.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("annotation: read %s: %w", path, err)
	}
	return store, nil
}

// Path returns the sidecar file backing this store.
func (s *Store) Path() string {
	return s.path
}

// Records returns a copy of the loaded records in their current order.
func (s *Store) Records() []Record {
	cp := make([]Record, len(s.records))
	copy(cp, s.records)
	return cp
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}

// Skipped returns how many lines were dropped during Load because they did
// not parse as annotation records.
func (s *Store) Skipped() int {
	return s.skipped
}

// FindByTimestamp returns the record at the given playback position.
func (s *Store) FindByTimestamp(ts timecode.TimeCode) (Record, bool) {
	for _, rec := range s.records {
		if rec.Timestamp.Equal(ts) {
			return rec, true
		}
	}
	return Record{}, false
}

// InsertIfAbsent appends rec unless a record already occupies its timestamp.
// On collision the existing record is returned and the store is unchanged,
// so the caller can drive resolution.
func (s *Store) InsertIfAbsent(rec Record) (Record, bool) {
	if existing, ok := s.FindByTimestamp(rec.Timestamp); ok {
		return existing, true
	}
	s.records = append(s.records, rec)
	return Record{}, false
}

// Upsert removes any record sharing rec's timestamp and appends rec. Only
// used after collision resolution has already decided the outcome.
func (s *Store) Upsert(rec Record) {
	kept := s.records[:0]
	for _, existing := range s.records {
		if !existing.Timestamp.Equal(rec.Timestamp) {
			kept = append(kept, existing)
		}
	}
	s.records = append(kept, rec)
}

// Persist sorts the record set ascending by timestamp and rewrites the
// sidecar file in full, one line per record with a trailing newline. The
// entire buffer is built in memory before any byte reaches disk, so a failed
// write never leaves a truncated file behind.
func (s *Store) Persist() error {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Timestamp.Before(s.records[j].Timestamp)
	})

	var buf strings.Builder
	for _, rec := range s.records {
		buf.WriteString(rec.Line())
		buf.WriteByte('\n')
	}

	if err := fileutil.WriteFileAtomic(s.path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("annotation: persist %s: %w", s.path, err)
	}
	return nil
}
