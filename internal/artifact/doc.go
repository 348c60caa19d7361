// Package artifact inspects compiled files: binary format sniffing by magic
// bytes, BLAKE2b content digests, and platform tag helpers.
package artifact
