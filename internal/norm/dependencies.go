// Package norm runs norminette and turns its output into a readable report.
package norm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	// CombinedOutput runs name with args and returns stdout and stderr
	// interleaved in a single stream.
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// EnvReader reads environment variables.
type EnvReader interface {
	Get(key string) string
}

// Dependencies holds all external dependencies.
type Dependencies struct {
	FS     afero.Fs
	Runner CommandRunner
	Env    EnvReader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Production implementations

type realCommandRunner struct{}

func (r *realCommandRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 - executable is resolved from PATH
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("run command %s: %w", name, err)
	}
	return output, nil
}

type osEnvReader struct{}

func (e *osEnvReader) Get(key string) string {
	return os.Getenv(key)
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		FS:     afero.NewOsFs(),
		Runner: &realCommandRunner{},
		Env:    &osEnvReader{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.Default(),
	}
}
