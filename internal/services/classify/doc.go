// Package classify decides whether a distribution is pure or
// platform-specific, and verifies built artifacts against their records.
//
// A distribution is platform-specific as soon as it contains one compiled
// artifact; the packaging toolchain contract is "exists, loads, exposes at
// least one symbol", so presence is the whole signal.
package classify
