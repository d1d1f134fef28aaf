package external

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecRunner_Run(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}

	tests := []struct {
		name        string
		command     string
		args        []string
		wantOutcome Outcome
		wantStdout  string
	}{
		{
			name:        "command succeeds",
			command:     "sh",
			args:        []string{"-c", "echo reloaded"},
			wantOutcome: OutcomeOK,
			wantStdout:  "reloaded\n",
		},
		{
			name:        "command exits with failure",
			command:     "sh",
			args:        []string{"-c", "exit 3"},
			wantOutcome: OutcomeToolFailed,
		},
		{
			name:        "command is not installed",
			command:     "chewing-phrase-command-that-does-not-exist",
			wantOutcome: OutcomeToolMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			runner := NewExecRunnerWithOutput(&stdout, &stderr)

			got := runner.Run(context.Background(), tt.command, tt.args...)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
			assert.Equal(t, tt.command, got.Tool)
			if tt.wantOutcome == OutcomeOK {
				assert.NoError(t, got.Err)
			} else {
				assert.Error(t, got.Err)
			}
			assert.Equal(t, tt.wantStdout, stdout.String())
		})
	}
}
