// Package domain defines the core types and interfaces shared across
// platstub.
//
// Services in internal/services implement the service interfaces, the file
// store in internal/store implements BuildRecordStore, and the exec runner in
// internal/toolexec implements CommandRunner. Commands depend only on these
// interfaces so the graph stays swappable in tests.
package domain
