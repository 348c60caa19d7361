package toolexec

import (
	"context"
	"os"
	"os/exec"

	"platstub/internal/domain"
)

// Runner executes commands with os/exec.
type Runner struct{}

// New returns an exec-backed runner.
func New() *Runner { return &Runner{} }

// Run executes cmd and returns its combined stdout and stderr.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	return c.CombinedOutput()
}

// LookPath resolves name against PATH.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Compile-time assertion that Runner implements domain.CommandRunner.
var _ domain.CommandRunner = (*Runner)(nil)
