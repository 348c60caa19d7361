// Package scaffold emits a ready-to-build placeholder extension: the cgo
// source pair and its extension.toml manifest.
//
// The generated module compiles to a shared library exporting one no-op
// symbol, which is all a packaging toolchain needs to classify the
// distribution as platform-specific.
package scaffold
