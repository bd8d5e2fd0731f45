package norm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/nicenorm/internal/config"
	"github.com/Veraticus/nicenorm/internal/shared"
)

// Exit codes returned by Run.
const (
	ExitCodeOK      = 0
	ExitCodeFailure = 1
)

const (
	noErrorsMessage = "No errors found!"
	installURL      = "https://github.com/hivehelsinki/norminette-client"
)

// ErrExecutableNotFound is returned when norminette is not on the PATH.
var ErrExecutableNotFound = errors.New("no norminette executable found")

// Run locates norminette, runs it with the forwarded args and prints the
// cleaned up report. args[0] is the program name and is replaced by the
// resolved executable. The returned value is the process exit code.
func Run(ctx context.Context, opts config.Options, args []string, deps *Dependencies) int {
	if deps == nil {
		deps = NewDefaultDependencies()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	executable, err := Locate(deps)
	if err != nil {
		logger.Debug("executable lookup failed", "name", ExecutableName, "err", err)
		_, _ = fmt.Fprintf(deps.Stderr, "No norminette executable found.\n"+
			"You can install the norminette client from this repo: %s\n", installURL)
		return ExitCodeFailure
	}

	var forwarded []string
	if len(args) > 1 {
		forwarded = args[1:]
	}
	logger.Debug("running norminette", "path", executable, "args", forwarded)

	result, err := Invoke(ctx, deps.Runner, executable, forwarded)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "nicenorm: %v\n", err)
		return ExitCodeFailure
	}
	logger.Debug("norminette finished", "exit_code", result.ExitCode, "lines", len(result.Lines))

	palette := shared.NewPalette(deps.Stdout, opts.Color())

	if CheckInput(deps.Stdout, palette, result.Lines) {
		return ExitCodeFailure
	}

	lines := CutEmpty(result.Lines)
	logger.Debug("filtered output", "before", len(result.Lines), "after", len(lines))

	lines = Format(palette, lines)
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, noErrorsMessage)
		return ExitCodeOK
	}

	for _, line := range lines {
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
	return ExitCodeOK
}

// Locate resolves norminette against the PATH seen by deps.
func Locate(deps *Dependencies) (string, error) {
	executable, found := LocateExecutable(deps.FS, ExecutableName, deps.Env.Get("PATH"))
	if !found {
		return "", ErrExecutableNotFound
	}
	return executable, nil
}
