// Package toolexec runs external build tools as subprocesses.
//
// It is the only place platstub shells out, behind domain.CommandRunner so
// services can be tested with fakes.
package toolexec
