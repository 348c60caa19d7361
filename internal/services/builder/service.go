package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"platstub/internal/artifact"
	"platstub/internal/domain"
)

// Service builds native artifacts and records the outcomes.
type Service struct {
	runner  domain.CommandRunner
	records domain.BuildRecordStore
	out     io.Writer
}

// New returns a builder writing progress to out.
func New(runner domain.CommandRunner, records domain.BuildRecordStore, out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{runner: runner, records: records, out: out}
}

// BuildAll compiles every module in mods. It returns the records of the
// builds that succeeded; the error, if any, is from the first required
// module that failed.
func (s *Service) BuildAll(
	ctx context.Context,
	mods []domain.ExtensionModule,
	opts domain.BuildOptions,
) ([]domain.BuildRecord, error) {
	if opts.Skip {
		fmt.Fprintln(s.out, "native builds skipped")
		return nil, nil
	}

	recs := make([]domain.BuildRecord, 0, len(mods))
	for _, mod := range mods {
		rec, err := s.buildOne(ctx, mod, opts)
		if err != nil {
			if mod.Optional {
				fmt.Fprintf(s.out, "warning: optional module %s failed: %v\n", mod.Name, err)
				continue
			}
			return recs, fmt.Errorf("build %s: %w", mod.Name, err)
		}
		fmt.Fprintf(s.out, "built %s -> %s\n", mod.Name, rec.Artifact.Path)
		recs = append(recs, rec)
	}
	return recs, nil
}

func (s *Service) buildOne(
	ctx context.Context,
	mod domain.ExtensionModule,
	opts domain.BuildOptions,
) (domain.BuildRecord, error) {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = mod.Dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return domain.BuildRecord{}, err
	}
	outPath := filepath.Join(outDir, "lib"+mod.Name.String()+artifact.SharedLibExt(runtime.GOOS))

	cmd := domain.Command{
		Name: "go",
		Args: []string{"build", "-buildmode=c-shared", "-o", outPath, mod.Entry},
		Dir:  mod.Dir,
		Env:  buildEnv(opts),
	}
	raw, err := s.runner.Run(ctx, cmd)
	if err != nil {
		if msg := string(bytes.TrimSpace(raw)); msg != "" {
			return domain.BuildRecord{}, fmt.Errorf("%w: %s", err, msg)
		}
		return domain.BuildRecord{}, err
	}

	a, err := artifact.Inspect(outPath)
	if err != nil {
		return domain.BuildRecord{}, fmt.Errorf("inspect output: %w", err)
	}

	rec := domain.BuildRecord{
		ID:       uuid.NewString(),
		Module:   mod.Name,
		Artifact: a,
		Platform: artifact.HostPlatform(),
		BuiltUTC: time.Now().Unix(),
		Optional: mod.Optional,
	}
	if err := s.records.AppendRecord(rec); err != nil {
		return domain.BuildRecord{}, fmt.Errorf("record build: %w", err)
	}
	return rec, nil
}

// buildEnv assembles the subprocess environment overrides: cgo on, compiler
// override, and any extra PATH entries prepended.
func buildEnv(opts domain.BuildOptions) []string {
	env := []string{"CGO_ENABLED=1"}
	if opts.CC != "" {
		env = append(env, "CC="+opts.CC)
	}
	if len(opts.ExtraPath) > 0 {
		sep := string(os.PathListSeparator)
		env = append(env, "PATH="+strings.Join(opts.ExtraPath, sep)+sep+os.Getenv("PATH"))
	}
	return env
}

// Compile-time assertion that Service implements domain.Builder.
var _ domain.Builder = (*Service)(nil)
