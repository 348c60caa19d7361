// Package builder turns discovered extension modules into shared libraries.
//
// Each module is compiled with `go build -buildmode=c-shared` through the
// CommandRunner, then inspected and written to the build record store.
// Optional modules degrade to a warning when their build fails; required
// modules abort the run.
package builder
