package builder_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"platstub/internal/domain"
	"platstub/internal/services/builder"
	"platstub/internal/store"
)

// fakeRunner pretends to be the go toolchain: each Run writes a small
// ELF-looking file at the -o path, unless the module is on the fail list.
type fakeRunner struct {
	ran  []domain.Command
	fail map[string]bool // entry dir base -> fail
}

func (f *fakeRunner) Run(_ context.Context, cmd domain.Command) ([]byte, error) {
	f.ran = append(f.ran, cmd)
	if f.fail[filepath.Base(cmd.Dir)] {
		return []byte("# command-line-arguments\nundefined: boom\n"), errors.New("exit status 1")
	}
	out := outputPath(cmd)
	data := append([]byte{0x7f, 'E', 'L', 'F'}, []byte(cmd.Dir)...)
	if err := os.WriteFile(out, data, 0o755); err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func outputPath(cmd domain.Command) string {
	for i, a := range cmd.Args {
		if a == "-o" && i+1 < len(cmd.Args) {
			return cmd.Args[i+1]
		}
	}
	return ""
}

func module(t *testing.T, name string, optional bool) domain.ExtensionModule {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	return domain.ExtensionModule{
		Name:     domain.ModuleName(name),
		Dir:      dir,
		Entry:    ".",
		Optional: optional,
	}
}

func TestBuildAllRecordsArtifacts(t *testing.T) {
	r := &fakeRunner{}
	st := store.NewRecordFileStore(t.TempDir())
	var buf bytes.Buffer
	svc := builder.New(r, st, &buf)

	mods := []domain.ExtensionModule{module(t, "stubext", true)}
	recs, err := svc.BuildAll(context.Background(), mods, domain.BuildOptions{})
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.ID == "" || rec.Module != "stubext" || rec.Platform == "" {
		t.Fatalf("incomplete record: %+v", rec)
	}
	if rec.Artifact.Format != domain.FormatELF {
		t.Errorf("artifact format = %q, want elf", rec.Artifact.Format)
	}
	if rec.Artifact.Digest == "" {
		t.Error("artifact digest missing")
	}

	// Persisted too.
	stored, ok, err := st.LatestRecord("stubext")
	if err != nil || !ok {
		t.Fatalf("LatestRecord: ok=%v err=%v", ok, err)
	}
	if stored.ID != rec.ID {
		t.Errorf("stored id %s != returned id %s", stored.ID, rec.ID)
	}

	// In-place build: artifact lands next to the manifest.
	if filepath.Dir(rec.Artifact.Path) != mods[0].Dir {
		t.Errorf("artifact dir = %q, want %q", filepath.Dir(rec.Artifact.Path), mods[0].Dir)
	}
	if !strings.Contains(buf.String(), "built stubext") {
		t.Errorf("progress output missing: %q", buf.String())
	}
}

func TestBuildAllSkipMode(t *testing.T) {
	r := &fakeRunner{}
	svc := builder.New(r, store.NewRecordFileStore(t.TempDir()), nil)

	recs, err := svc.BuildAll(
		context.Background(),
		[]domain.ExtensionModule{module(t, "stubext", false)},
		domain.BuildOptions{Skip: true},
	)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(recs) != 0 || len(r.ran) != 0 {
		t.Fatalf("skip mode ran %d commands, returned %d records", len(r.ran), len(recs))
	}
}

func TestBuildAllOptionalFailureContinues(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"flaky": true}}
	var buf bytes.Buffer
	svc := builder.New(r, store.NewRecordFileStore(t.TempDir()), &buf)

	mods := []domain.ExtensionModule{module(t, "flaky", true), module(t, "solid", false)}
	recs, err := svc.BuildAll(context.Background(), mods, domain.BuildOptions{})
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(recs) != 1 || recs[0].Module != "solid" {
		t.Fatalf("want only solid built, got %+v", recs)
	}
	if !strings.Contains(buf.String(), "warning: optional module flaky") {
		t.Errorf("missing warning in output: %q", buf.String())
	}
}

func TestBuildAllRequiredFailureAborts(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"broken": true}}
	svc := builder.New(r, store.NewRecordFileStore(t.TempDir()), nil)

	mods := []domain.ExtensionModule{module(t, "broken", false), module(t, "after", false)}
	recs, err := svc.BuildAll(context.Background(), mods, domain.BuildOptions{})
	if err == nil {
		t.Fatal("expected error for required module")
	}
	if !strings.Contains(err.Error(), "broken") || !strings.Contains(err.Error(), "undefined: boom") {
		t.Errorf("error should name the module and carry compiler output: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("no records expected before the failure, got %+v", recs)
	}
	if len(r.ran) != 1 {
		t.Errorf("build should stop at first required failure, ran %d", len(r.ran))
	}
}

func TestBuildAllEnvAndOutputDir(t *testing.T) {
	r := &fakeRunner{}
	svc := builder.New(r, store.NewRecordFileStore(t.TempDir()), nil)
	outDir := filepath.Join(t.TempDir(), "dist")

	_, err := svc.BuildAll(
		context.Background(),
		[]domain.ExtensionModule{module(t, "stubext", false)},
		domain.BuildOptions{OutputDir: outDir, CC: "clang", ExtraPath: []string{"/opt/cc/bin"}},
	)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(r.ran) != 1 {
		t.Fatalf("ran %d commands", len(r.ran))
	}
	cmd := r.ran[0]
	if cmd.Name != "go" || cmd.Args[0] != "build" || cmd.Args[1] != "-buildmode=c-shared" {
		t.Errorf("unexpected command: %+v", cmd)
	}
	if filepath.Dir(outputPath(cmd)) != outDir {
		t.Errorf("output path %q not under %q", outputPath(cmd), outDir)
	}
	var hasCgo, hasCC, hasPath bool
	for _, e := range cmd.Env {
		switch {
		case e == "CGO_ENABLED=1":
			hasCgo = true
		case e == "CC=clang":
			hasCC = true
		case strings.HasPrefix(e, "PATH=/opt/cc/bin"):
			hasPath = true
		}
	}
	if !hasCgo || !hasCC || !hasPath {
		t.Errorf("env missing overrides: %+v", cmd.Env)
	}
}
