package classify

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"platstub/internal/artifact"
	"platstub/internal/domain"
)

var (
	// ErrArtifactMissing is returned by Verify when the recorded artifact is
	// gone from disk.
	ErrArtifactMissing = errors.New("recorded artifact missing from disk")
	// ErrDigestMismatch is returned by Verify when the artifact on disk no
	// longer matches its recorded digest.
	ErrDigestMismatch = errors.New("artifact digest mismatch")
	// ErrNotNative is returned by Verify when the recorded artifact is not a
	// recognised compiled format.
	ErrNotNative = errors.New("artifact is not a native binary")
)

// Service inspects distribution trees and built artifacts.
type Service struct{}

// New returns a classifier.
func New() *Service { return &Service{} }

// Classify walks root and reports whether the tree carries compiled
// artifacts. Files are pre-filtered by shared-library extension, then
// confirmed by magic bytes, so a stray text file named libfoo.so does not
// flip the classification.
func (s *Service) Classify(root string) (domain.DistReport, error) {
	report := domain.DistReport{Root: root, Classification: domain.ClassPure}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		report.FilesScanned++
		if !artifact.HasSharedLibExt(path) {
			return nil
		}
		format, err := artifact.Sniff(path)
		if err != nil {
			return err
		}
		if !artifact.IsNative(format) {
			return nil
		}
		a, err := artifact.Inspect(path)
		if err != nil {
			return err
		}
		report.Native = append(report.Native, a)
		return nil
	})
	if err != nil {
		return domain.DistReport{}, fmt.Errorf("classify %s: %w", root, err)
	}

	if len(report.Native) > 0 {
		report.Classification = domain.ClassPlatformSpecific
		report.Platform = artifact.HostPlatform()
	}
	return report, nil
}

// Verify checks the artifact named in rec: it must exist, be a native
// binary, and hash to the recorded digest.
func (s *Service) Verify(rec domain.BuildRecord) error {
	a, err := artifact.Inspect(rec.Artifact.Path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrArtifactMissing, rec.Artifact.Path)
	}
	if !artifact.IsNative(a.Format) {
		return fmt.Errorf("%w: %s is %s", ErrNotNative, rec.Artifact.Path, a.Format)
	}
	if a.Digest != rec.Artifact.Digest {
		return fmt.Errorf("%w: %s", ErrDigestMismatch, rec.Artifact.Path)
	}
	return nil
}

// Compile-time assertion that Service implements domain.Classifier.
var _ domain.Classifier = (*Service)(nil)
