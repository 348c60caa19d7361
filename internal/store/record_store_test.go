package store_test

import (
	"testing"

	"platstub/internal/domain"
	"platstub/internal/store"
)

func record(id string, mod domain.ModuleName, built int64) domain.BuildRecord {
	return domain.BuildRecord{
		ID:       id,
		Module:   mod,
		Platform: "linux_amd64",
		BuiltUTC: built,
		Artifact: domain.Artifact{Path: "/tmp/lib" + string(mod) + ".so", Format: domain.FormatELF},
	}
}

func TestEmptyStore(t *testing.T) {
	s := store.NewRecordFileStore(t.TempDir())

	recs, err := s.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want empty store, got %d records", len(recs))
	}
	_, ok, err := s.LatestRecord("stubext")
	if err != nil {
		t.Fatalf("LatestRecord: %v", err)
	}
	if ok {
		t.Fatal("LatestRecord on empty store reported a record")
	}
}

func TestAppendAndList(t *testing.T) {
	s := store.NewRecordFileStore(t.TempDir())

	if err := s.AppendRecord(record("a", "stubext", 1)); err != nil {
		t.Fatalf("AppendRecord: %v", err)
	}
	if err := s.AppendRecord(record("b", "other", 2)); err != nil {
		t.Fatalf("AppendRecord: %v", err)
	}
	if err := s.AppendRecord(record("c", "stubext", 3)); err != nil {
		t.Fatalf("AppendRecord: %v", err)
	}

	recs, err := s.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 3 || recs[0].ID != "a" || recs[2].ID != "c" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestLatestRecordPicksNewest(t *testing.T) {
	s := store.NewRecordFileStore(t.TempDir())

	for i, id := range []string{"a", "b", "c"} {
		if err := s.AppendRecord(record(id, "stubext", int64(i))); err != nil {
			t.Fatalf("AppendRecord: %v", err)
		}
	}
	rec, ok, err := s.LatestRecord("stubext")
	if err != nil {
		t.Fatalf("LatestRecord: %v", err)
	}
	if !ok || rec.ID != "c" {
		t.Fatalf("LatestRecord = %+v ok=%v, want id c", rec, ok)
	}
}

func TestStoreCreatesMissingDir(t *testing.T) {
	dir := t.TempDir() + "/nested/state"
	s := store.NewRecordFileStore(dir)

	if err := s.AppendRecord(record("a", "stubext", 1)); err != nil {
		t.Fatalf("AppendRecord into missing dir: %v", err)
	}
	recs, err := s.ListRecords()
	if err != nil || len(recs) != 1 {
		t.Fatalf("ListRecords = %v, %v", recs, err)
	}
}
