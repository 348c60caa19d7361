package probe

import (
	"bufio"
	"bytes"
	"context"
	"runtime"
	"strings"
	"time"

	"platstub/internal/domain"
)

// versionTimeout bounds each `tool --version` invocation.
const versionTimeout = 10 * time.Second

// installHints suggests how to get a C compiler on each OS. Mirrors the
// guidance shipped with the build scripts this tool replaces.
var installHints = map[string]string{
	"linux":   "install with: sudo apt-get install gcc",
	"darwin":  "install with: xcode-select --install (or brew install gcc)",
	"windows": "install with: conda install m2w64-toolchain (or MSYS2 mingw-w64)",
}

// Service probes the host toolchain through a CommandRunner.
type Service struct {
	runner domain.CommandRunner
	cc     string
}

// New returns a prober that checks the Go toolchain and the C compiler cc.
func New(runner domain.CommandRunner, cc string) *Service {
	if cc == "" {
		cc = "cc"
	}
	return &Service{runner: runner, cc: cc}
}

// Probe reports the status of each required tool. A missing tool is not an
// error; it comes back with Found=false and an install hint.
func (s *Service) Probe(ctx context.Context) ([]domain.ToolchainStatus, error) {
	out := make([]domain.ToolchainStatus, 0, 2)
	out = append(out, s.probeTool(ctx, "go", "version"))
	out = append(out, s.probeTool(ctx, s.cc, "--version"))
	return out, nil
}

func (s *Service) probeTool(ctx context.Context, tool, versionArg string) domain.ToolchainStatus {
	st := domain.ToolchainStatus{Tool: tool}

	path, err := s.runner.LookPath(tool)
	if err != nil {
		st.Hint = hintFor(tool)
		return st
	}
	st.Path = path

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()
	raw, err := s.runner.Run(ctx, domain.Command{Name: tool, Args: []string{versionArg}})
	if err != nil {
		// Present on PATH but not answering; still report it as missing so
		// build failures are not a surprise.
		st.Hint = hintFor(tool)
		return st
	}

	st.Found = true
	st.Version = firstLine(raw)
	return st
}

func hintFor(tool string) string {
	if tool == "go" {
		return "install Go from https://go.dev/dl/"
	}
	if h, ok := installHints[runtime.GOOS]; ok {
		return h
	}
	return "install a C compiler and ensure it is on PATH"
}

func firstLine(b []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(b))
	if sc.Scan() {
		return strings.TrimSpace(sc.Text())
	}
	return ""
}

// Compile-time assertion that Service implements domain.ToolchainProber.
var _ domain.ToolchainProber = (*Service)(nil)
