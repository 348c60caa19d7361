package discover

import (
	"io/fs"
	"path/filepath"
	"sort"

	"platstub/internal/domain"
	"platstub/internal/manifest"
)

// skipDirs are never descended into during discovery.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"testdata":     true,
	"build":        true,
}

// Service finds declared extension modules on disk.
type Service struct{}

// New returns a discoverer.
func New() *Service { return &Service{} }

// Discover walks root and loads every extension.toml it finds. Results are
// sorted by module name so runs are deterministic. A malformed manifest
// aborts discovery; silently skipping one would mask a misdeclared module.
func (s *Service) Discover(root string) ([]domain.ExtensionModule, error) {
	var mods []domain.ExtensionModule
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[d.Name()] || hasDotPrefix(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != manifest.Filename {
			return nil
		}
		m, err := manifest.Load(path)
		if err != nil {
			return err
		}
		mods = append(mods, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].Name < mods[j].Name })
	return mods, nil
}

func hasDotPrefix(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// Compile-time assertion that Service implements domain.ModuleDiscoverer.
var _ domain.ModuleDiscoverer = (*Service)(nil)
