package domain

// ModuleName identifies a declared extension module.
type ModuleName string

// String returns the string form of the module name.
func (n ModuleName) String() string { return string(n) }

// PlatformTag labels the OS/architecture an artifact was built for,
// e.g. "linux_amd64".
type PlatformTag string

// String returns the string form of the platform tag.
func (t PlatformTag) String() string { return string(t) }

// Classification says whether a distribution is portable or tied to one
// platform.
type Classification string

const (
	// ClassPure marks a distribution with no compiled artifacts.
	ClassPure Classification = "pure"
	// ClassPlatformSpecific marks a distribution carrying at least one
	// compiled artifact.
	ClassPlatformSpecific Classification = "platform-specific"
)

// ArtifactFormat is the detected binary container format of a file.
type ArtifactFormat string

const (
	FormatELF     ArtifactFormat = "elf"
	FormatMachO   ArtifactFormat = "mach-o"
	FormatPE      ArtifactFormat = "pe"
	FormatUnknown ArtifactFormat = "unknown"
)

// ExtensionModule is one declared native extension, discovered from an
// extension.toml manifest.
type ExtensionModule struct {
	Name ModuleName `json:"name"`
	// Dir is the directory holding the manifest.
	Dir string `json:"dir"`
	// Entry is the package path to build, relative to Dir.
	Entry string `json:"entry"`
	// Symbol is the exported symbol the artifact must carry.
	Symbol string `json:"symbol"`
	// Optional modules degrade to a warning when their build fails.
	Optional bool `json:"optional"`
}

// ToolchainStatus reports whether one required build tool is usable.
type ToolchainStatus struct {
	Tool    string `json:"tool"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	// Hint suggests how to install the tool on the current OS.
	Hint string `json:"hint,omitempty"`
}

// Artifact describes one compiled file on disk.
type Artifact struct {
	Path   string         `json:"path"`
	Format ArtifactFormat `json:"format"`
	Size   int64          `json:"size"`
	// Digest is the hex BLAKE2b-256 of the file contents.
	Digest string `json:"digest"`
}

// BuildRecord is the persisted outcome of building one extension module.
type BuildRecord struct {
	ID       string      `json:"id"`
	Module   ModuleName  `json:"module"`
	Artifact Artifact    `json:"artifact"`
	Platform PlatformTag `json:"platform"`
	BuiltUTC int64       `json:"built_utc"`
	Optional bool        `json:"optional"`
}

// DistReport is the result of classifying a distribution directory.
type DistReport struct {
	Root           string         `json:"root"`
	Classification Classification `json:"classification"`
	// Platform is set only for platform-specific distributions.
	Platform PlatformTag `json:"platform,omitempty"`
	Native   []Artifact  `json:"native,omitempty"`
	// FilesScanned counts regular files inspected under Root.
	FilesScanned int `json:"files_scanned"`
}

// BuildOptions tunes one build run.
type BuildOptions struct {
	// OutputDir receives the artifacts; empty means in-place, next to each
	// module's manifest.
	OutputDir string
	// Skip suppresses all native builds (docs builds, pure-only CI lanes).
	Skip bool
	// CC overrides the C compiler handed to cgo.
	CC string
	// ExtraPath entries are prepended to PATH for build subprocesses.
	ExtraPath []string
}

// ScaffoldOptions tunes `platstub init`.
type ScaffoldOptions struct {
	Name   ModuleName
	Symbol string
}
