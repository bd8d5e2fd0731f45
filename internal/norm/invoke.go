package norm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// InvokeResult holds the decoded output of a norminette run.
type InvokeResult struct {
	Lines    []string
	ExitCode int
}

// Invoke runs executable with args and returns its combined output split into
// lines. A non-zero exit status is not an error: norminette exits non-zero
// whenever it reports findings. Only a failure to start the process is.
func Invoke(ctx context.Context, runner CommandRunner, executable string, args []string) (*InvokeResult, error) {
	output, err := runner.CombinedOutput(ctx, executable, args...)

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("launch %s: %w", executable, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &InvokeResult{
		Lines:    SplitLines(output),
		ExitCode: exitCode,
	}, nil
}

// SplitLines decodes output as UTF-8 and splits it on newlines. A trailing
// newline produces a trailing empty line.
func SplitLines(output []byte) []string {
	text := strings.ToValidUTF8(string(output), "\uFFFD")
	return strings.Split(text, "\n")
}
