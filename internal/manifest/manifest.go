package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"platstub/internal/domain"
)

// Filename is the manifest file looked up during discovery.
const Filename = "extension.toml"

// ErrMissingName is returned when a manifest omits the module name.
var ErrMissingName = errors.New("extension manifest missing name")

// file mirrors the on-disk TOML layout.
type file struct {
	Name     string `toml:"name"`
	Entry    string `toml:"entry"`
	Symbol   string `toml:"symbol"`
	Optional bool   `toml:"optional"`
}

// Load parses the manifest at path into an ExtensionModule. Entry defaults to
// the manifest's own directory.
func Load(path string) (domain.ExtensionModule, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return domain.ExtensionModule{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Name == "" {
		return domain.ExtensionModule{}, fmt.Errorf("%s: %w", path, ErrMissingName)
	}
	entry := f.Entry
	if entry == "" {
		entry = "."
	}
	return domain.ExtensionModule{
		Name:     domain.ModuleName(f.Name),
		Dir:      filepath.Dir(path),
		Entry:    entry,
		Symbol:   f.Symbol,
		Optional: f.Optional,
	}, nil
}
