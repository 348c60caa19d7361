// Package stub is the placeholder extension shipped with platstub.
//
// It exposes a single callable, Noop, that ignores its arguments and returns
// nil. The package exists so that a distribution which links the native stub
// always has a loadable unit with at least one resolvable symbol; packaging
// toolchains that see the compiled form of this package classify the
// distribution as platform-specific rather than pure.
//
// There is nothing else here on purpose. The package holds no state, Noop has
// no side effects, and any number of goroutines may call it concurrently.
package stub
