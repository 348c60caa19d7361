// Package main is the source of the placeholder native artifact.
//
// Built with
//
//	go build -buildmode=c-shared -o libstubext.so ./cmd/stubext
//
// it produces a shared library exporting exactly one symbol, PlatstubNoop,
// which ignores its argument and returns NULL. The library performs no work;
// its presence in a distribution is what matters, because packaging toolchains
// classify a distribution containing compiled code as platform-specific.
//
// The extension.toml next to this file lets `platstub discover` and
// `platstub build` find and build it like any other declared extension module.
package main
