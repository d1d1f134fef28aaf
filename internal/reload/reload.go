// Package reload makes chewing pick up an edited user phrase dictionary.
package reload

import (
	"context"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
)

//go:generate mockgen -source=reload.go -destination=../mocks/reload/mock_reload.go -package=mock_reload Reloader

type Reloader interface {
	Reload(ctx context.Context) external.Result
}

// EditorReloader launches chewing-editor, which loads chewing.json when it
// starts. The call blocks until the editor exits.
type EditorReloader struct {
	runner  external.Runner
	command string
}

func NewEditorReloader(runner external.Runner, command string) *EditorReloader {
	if command == "" {
		command = "chewing-editor"
	}
	return &EditorReloader{
		runner:  runner,
		command: command,
	}
}

func (r *EditorReloader) Reload(ctx context.Context) external.Result {
	return r.runner.Run(ctx, r.command)
}
