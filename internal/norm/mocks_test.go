package norm

import (
	"bytes"
	"context"
	"errors"

	"github.com/spf13/afero"

	"github.com/Veraticus/nicenorm/internal/shared"
)

var errMockNoRunFunc = errors.New("mock: no run function configured")

// mockCommandRunner implements CommandRunner for testing.
type mockCommandRunner struct {
	combinedOutputFunc func(ctx context.Context, name string, args ...string) ([]byte, error)
	calls              []runCall
}

type runCall struct {
	name string
	args []string
}

func (m *mockCommandRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, runCall{name: name, args: append([]string{}, args...)})
	if m.combinedOutputFunc != nil {
		return m.combinedOutputFunc(ctx, name, args...)
	}
	return nil, errMockNoRunFunc
}

// mockEnvReader implements EnvReader for testing.
type mockEnvReader struct {
	vars map[string]string
}

func (m *mockEnvReader) Get(key string) string {
	return m.vars[key]
}

type testDependencies struct {
	*Dependencies
	MockRunner *mockCommandRunner
	MockEnv    *mockEnvReader
	Stdout     *bytes.Buffer
	Stderr     *bytes.Buffer
}

func createTestDependencies() *testDependencies {
	runner := &mockCommandRunner{}
	env := &mockEnvReader{vars: map[string]string{}}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &testDependencies{
		Dependencies: &Dependencies{
			FS:     afero.NewMemMapFs(),
			Runner: runner,
			Env:    env,
			Stdout: stdout,
			Stderr: stderr,
			Logger: shared.DiscardLogger(),
		},
		MockRunner: runner,
		MockEnv:    env,
		Stdout:     stdout,
		Stderr:     stderr,
	}
}
