// Package app wires application dependencies for the CLI.
//
// It builds the concrete services, store and subprocess runner from Config,
// exposing them via the Wire struct for commands to use.
package app
