// Package manifest reads extension.toml files, the per-module declaration
// that makes a directory buildable by platstub.
package manifest
