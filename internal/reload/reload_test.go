package reload

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
	mock_external "github.com/chenchunyii/Chewing-Editor/internal/mocks/external"
)

func TestEditorReloader_Reload(t *testing.T) {
	tests := []struct {
		name        string
		command     string
		wantCommand string
		result      external.Result
	}{
		{
			name:        "default command",
			wantCommand: "chewing-editor",
			result:      external.OK("chewing-editor"),
		},
		{
			name:        "custom command",
			command:     "/usr/local/bin/chewing-editor",
			wantCommand: "/usr/local/bin/chewing-editor",
			result:      external.OK("/usr/local/bin/chewing-editor"),
		},
		{
			name:        "editor is not installed",
			wantCommand: "chewing-editor",
			result:      external.ToolMissing("chewing-editor", errors.New("executable file not found in $PATH")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mock_external.NewMockRunner(ctrl)
			runner.EXPECT().Run(gomock.Any(), tt.wantCommand).Return(tt.result)

			got := NewEditorReloader(runner, tt.command).Reload(context.Background())
			assert.Equal(t, tt.result, got)
		})
	}
}
