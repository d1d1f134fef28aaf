package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

//go:generate mockgen -source=runner.go -destination=../mocks/external/mock_runner.go -package=mock_external Runner

// Runner starts a program and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner runs programs found on PATH.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewExecRunnerWithOutput sends the child's output to the given writers.
func NewExecRunnerWithOutput(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{
		stdout: stdout,
		stderr: stderr,
	}
}

func (runner *ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolMissing(name, fmt.Errorf("exec.LookPath(%s) > %w", name, err))
	}

	slog.Default().Debug("run external command",
		"path", path,
		"args", args)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = runner.stdout
	cmd.Stderr = runner.stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ToolFailed(name, fmt.Errorf("%s exited with status %d", name, exitErr.ExitCode()))
		}
		// Start failures such as a permission error are treated like a
		// missing binary: the tool never ran.
		return ToolMissing(name, fmt.Errorf("cmd.Run > %w", err))
	}
	return OK(name)
}
