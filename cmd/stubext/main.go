//go:build cgo
// +build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

// PlatstubNoop is the single symbol exported from the shared library. It
// ignores its argument and returns NULL, unconditionally.
//
//export PlatstubNoop
func PlatstubNoop(_ *C.char) *C.char { return nil }

// Required entry point for buildmode=c-shared. Does not need to do anything.
func main() {}
