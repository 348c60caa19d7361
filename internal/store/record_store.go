package store

import (
	"os"
	"path/filepath"
	"sync"

	"platstub/internal/domain"
)

const recordsFile = "build_records.json"

// RecordFileStore keeps build records in a single JSON file.
type RecordFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewRecordFileStore returns a store rooted at dir. The directory is created
// on first write.
func NewRecordFileStore(dir string) *RecordFileStore {
	return &RecordFileStore{dir: dir}
}

// AppendRecord adds rec to the end of the record list.
func (s *RecordFileStore) AppendRecord(rec domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	var recs []domain.BuildRecord
	if err := readJSON(s.path(), &recs); err != nil {
		return err
	}
	recs = append(recs, rec)
	return writeJSON(s.path(), recs, 0o600)
}

// ListRecords returns all records, oldest first.
func (s *RecordFileStore) ListRecords() ([]domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []domain.BuildRecord
	if err := readJSON(s.path(), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// LatestRecord returns the newest record for name, if any.
func (s *RecordFileStore) LatestRecord(name domain.ModuleName) (domain.BuildRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recs []domain.BuildRecord
	if err := readJSON(s.path(), &recs); err != nil {
		return domain.BuildRecord{}, false, err
	}
	for i := len(recs) - 1; i >= 0; i-- {
		if recs[i].Module == name {
			return recs[i], true, nil
		}
	}
	return domain.BuildRecord{}, false, nil
}

func (s *RecordFileStore) path() string { return filepath.Join(s.dir, recordsFile) }

// Compile-time assertion that RecordFileStore implements domain.BuildRecordStore.
var _ domain.BuildRecordStore = (*RecordFileStore)(nil)
