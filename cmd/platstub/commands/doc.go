// Package commands defines the platstub CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init      Scaffold a placeholder extension into a directory
//   - probe     Report build toolchain availability
//   - discover  List declared extension modules under the source root
//   - build     Build all declared extension modules
//   - classify  Report whether a distribution tree is pure or platform-specific
//   - verify    Check a built artifact against its build record
//
// # Implementation
//
// The root command builds a dependency graph (runner, record store, services)
// before any subcommand runs, so handlers share one app context. Environment
// switches PLATSTUB_DOCS_BUILD and PLATSTUB_SKIP_NATIVE suppress native
// builds for documentation and pure-only pipelines.
package commands
