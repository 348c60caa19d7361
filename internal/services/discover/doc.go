// Package discover walks a source tree for extension.toml manifests and
// turns them into buildable extension modules.
package discover
