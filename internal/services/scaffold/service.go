package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"platstub/internal/domain"
	"platstub/internal/manifest"
)

var (
	// ErrExists is returned when a target file is already present; scaffold
	// never overwrites.
	ErrExists = errors.New("file already exists")
	// ErrBadSymbol is returned for symbol names that are not exported Go
	// identifiers.
	ErrBadSymbol = errors.New("symbol must be an exported Go identifier")
)

const cgoSource = `//go:build cgo
// +build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

// %[1]s ignores its argument and returns NULL, unconditionally. It exists so
// the built library exports at least one symbol.
//
//export %[1]s
func %[1]s(_ *C.char) *C.char { return nil }

// Required entry point for buildmode=c-shared.
func main() {}
`

const nocgoSource = `//go:build !cgo
// +build !cgo

package main

import "fmt"

// This stub keeps the module buildable without a C toolchain. The real
// shared library requires cgo.
func main() {
	fmt.Println("%[1]s: built without cgo; no shared library was produced")
}
`

const manifestSource = `name = "%[1]s"
entry = "."
symbol = "%[2]s"
optional = true
`

// Service writes placeholder extension sources.
type Service struct{}

// New returns a scaffolder.
func New() *Service { return &Service{} }

// Scaffold writes the extension sources into dir and returns the paths
// written. dir is created if missing; existing files are never overwritten.
func (s *Service) Scaffold(dir string, opts domain.ScaffoldOptions) ([]string, error) {
	name := opts.Name
	if name == "" {
		name = domain.ModuleName(filepath.Base(dir))
	}
	symbol := opts.Symbol
	if symbol == "" {
		symbol = "Noop"
	}
	if !validSymbol(symbol) {
		return nil, fmt.Errorf("%w: %q", ErrBadSymbol, symbol)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	files := []struct {
		name     string
		contents string
	}{
		{"main.go", fmt.Sprintf(cgoSource, symbol)},
		{"main_nocgo.go", fmt.Sprintf(nocgoSource, name)},
		{manifest.Filename, fmt.Sprintf(manifestSource, name, symbol)},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			return written, fmt.Errorf("%w: %s", ErrExists, path)
		}
		if err := os.WriteFile(path, []byte(f.contents), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// validSymbol accepts exported Go identifiers: an upper-case ASCII letter
// followed by letters, digits or underscores.
func validSymbol(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		ok := c == '_' ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}

// Compile-time assertion that Service implements domain.Scaffolder.
var _ domain.Scaffolder = (*Service)(nil)
