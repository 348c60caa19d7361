package app

import (
	"io"
	"os"
	"path/filepath"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Root     string    // source root scanned for extension manifests
	StateDir string    // build record directory, e.g. $HOME/.platstub
	CC       string    // C compiler handed to cgo; empty means $CC then "cc"
	Skip     bool      // skip native builds entirely
	Out      io.Writer // progress output; defaults to os.Stdout
}

// FromEnv fills unset fields from the environment: CC from $CC, and Skip
// from PLATSTUB_DOCS_BUILD / PLATSTUB_SKIP_NATIVE (documentation builds and
// pure-only CI lanes set these instead of passing flags).
func (c Config) FromEnv() Config {
	if c.CC == "" {
		c.CC = os.Getenv("CC")
	}
	if !c.Skip {
		c.Skip = envBool("PLATSTUB_DOCS_BUILD") || envBool("PLATSTUB_SKIP_NATIVE")
	}
	return c
}

// DefaultStateDir returns $HOME/.platstub.
func DefaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".platstub"), nil
}

func envBool(key string) bool {
	return os.Getenv(key) == "1" || os.Getenv(key) == "true"
}
