package app

import (
	"os"

	"platstub/internal/domain"
	buildsvc "platstub/internal/services/builder"
	classifysvc "platstub/internal/services/classify"
	discoversvc "platstub/internal/services/discover"
	probesvc "platstub/internal/services/probe"
	scaffoldsvc "platstub/internal/services/scaffold"
	"platstub/internal/store"
	"platstub/internal/toolexec"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Probe    domain.ToolchainProber
	Discover domain.ModuleDiscoverer
	Build    domain.Builder
	Classify domain.Classifier
	Scaffold domain.Scaffolder
	Records  domain.BuildRecordStore

	Config Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	cfg = cfg.FromEnv()
	if cfg.StateDir == "" {
		dir, err := DefaultStateDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = dir
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	runner := toolexec.New()
	records := store.NewRecordFileStore(cfg.StateDir)

	return &Wire{
		Probe:    probesvc.New(runner, cfg.CC),
		Discover: discoversvc.New(),
		Build:    buildsvc.New(runner, records, cfg.Out),
		Classify: classifysvc.New(),
		Scaffold: scaffoldsvc.New(),
		Records:  records,
		Config:   cfg,
	}, nil
}
