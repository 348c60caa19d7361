//go:build !cgo
// +build !cgo

package main

import "fmt"

// This stub allows the module to vet and test without a C toolchain. The real
// shared library requires cgo and is produced with -buildmode=c-shared.
func main() {
	fmt.Println("stubext: built without cgo; no shared library was produced")
}
