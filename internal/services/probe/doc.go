// Package probe checks that the tools a native build needs are present and
// responsive.
//
// Missing tools are reported with a per-OS install hint rather than treated
// as an error; callers decide whether to proceed.
package probe
