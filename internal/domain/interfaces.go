package domain

import "context"

// ToolchainProber checks that the tools a native build needs are present.
type ToolchainProber interface {
	Probe(ctx context.Context) ([]ToolchainStatus, error)
}

// ModuleDiscoverer finds declared extension modules under a source root.
type ModuleDiscoverer interface {
	Discover(root string) ([]ExtensionModule, error)
}

// Builder produces native artifacts for discovered modules and records the
// outcome.
type Builder interface {
	BuildAll(ctx context.Context, mods []ExtensionModule, opts BuildOptions) ([]BuildRecord, error)
}

// Classifier inspects distributions and built artifacts.
type Classifier interface {
	// Classify walks root and decides pure vs platform-specific.
	Classify(root string) (DistReport, error)
	// Verify checks a previously built artifact against its record.
	Verify(rec BuildRecord) error
}

// Scaffolder emits placeholder extension sources into a directory.
type Scaffolder interface {
	Scaffold(dir string, opts ScaffoldOptions) ([]string, error)
}

// BuildRecordStore persists build outcomes.
type BuildRecordStore interface {
	AppendRecord(rec BuildRecord) error
	ListRecords() ([]BuildRecord, error)
	// LatestRecord returns the newest record for a module, if any.
	LatestRecord(name ModuleName) (BuildRecord, bool, error)
}

// Command is one subprocess invocation requested by a service.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env entries are appended to the inherited environment.
	Env []string
}

// CommandRunner executes subprocesses. The exec-backed implementation lives in
// internal/toolexec; tests substitute fakes.
type CommandRunner interface {
	// Run executes cmd and returns its combined output. A non-zero exit is
	// returned as an error alongside whatever output was produced.
	Run(ctx context.Context, cmd Command) ([]byte, error)
	// LookPath resolves a tool name against PATH.
	LookPath(name string) (string, error)
}
