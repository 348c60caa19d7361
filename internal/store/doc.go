// Package store provides file-based persistence for platstub's build
// records.
//
// Records are serialised as JSON under the configured state directory. All
// methods are concurrency-safe via internal locking, and writes go through a
// temp file plus rename.
package store
