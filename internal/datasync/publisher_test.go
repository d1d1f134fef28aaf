package datasync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
	mock_external "github.com/chenchunyii/Chewing-Editor/internal/mocks/external"
)

func TestRclonePublisher_Publish(t *testing.T) {
	const path = "/home/user/chewing.json"

	tests := []struct {
		name        string
		options     RcloneOptions
		setup       func(runner *mock_external.MockRunner)
		wantOutcome external.Outcome
	}{
		{
			name: "copies to profile and folder",
			options: RcloneOptions{
				Profile: "gdrive",
				Folder:  "chewing",
			},
			setup: func(runner *mock_external.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), "rclone", "copy", path, "gdrive:chewing").
					Return(external.OK("rclone"))
			},
			wantOutcome: external.OutcomeOK,
		},
		{
			name: "custom command",
			options: RcloneOptions{
				Command: "/opt/rclone/rclone",
				Profile: "gdrive",
				Folder:  "backup/chewing",
			},
			setup: func(runner *mock_external.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), "/opt/rclone/rclone", "copy", path, "gdrive:backup/chewing").
					Return(external.OK("/opt/rclone/rclone"))
			},
			wantOutcome: external.OutcomeOK,
		},
		{
			name: "missing rclone is not retried",
			options: RcloneOptions{
				Profile:       "gdrive",
				Folder:        "chewing",
				RetryAttempts: 3,
			},
			setup: func(runner *mock_external.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), "rclone", "copy", path, "gdrive:chewing").
					Return(external.ToolMissing("rclone", errors.New("not found"))).
					Times(1)
			},
			wantOutcome: external.OutcomeToolMissing,
		},
		{
			name: "failed copy is retried until it succeeds",
			options: RcloneOptions{
				Profile:       "gdrive",
				Folder:        "chewing",
				RetryAttempts: 2,
			},
			setup: func(runner *mock_external.MockRunner) {
				gomock.InOrder(
					runner.EXPECT().Run(gomock.Any(), "rclone", "copy", path, "gdrive:chewing").
						Return(external.ToolFailed("rclone", errors.New("exit status 1"))),
					runner.EXPECT().Run(gomock.Any(), "rclone", "copy", path, "gdrive:chewing").
						Return(external.OK("rclone")),
				)
			},
			wantOutcome: external.OutcomeOK,
		},
		{
			name: "failed copy reports the last failure",
			options: RcloneOptions{
				Profile:       "gdrive",
				Folder:        "chewing",
				RetryAttempts: 1,
			},
			setup: func(runner *mock_external.MockRunner) {
				runner.EXPECT().Run(gomock.Any(), "rclone", "copy", path, "gdrive:chewing").
					Return(external.ToolFailed("rclone", errors.New("exit status 1"))).
					Times(2)
			},
			wantOutcome: external.OutcomeToolFailed,
		},
		{
			name: "unconfigured remote does not run rclone",
			options: RcloneOptions{
				Folder: "chewing",
			},
			setup:       func(runner *mock_external.MockRunner) {},
			wantOutcome: external.OutcomeToolMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mock_external.NewMockRunner(ctrl)
			tt.setup(runner)

			publisher := NewRclonePublisher(runner, tt.options)
			got := publisher.Publish(context.Background(), path)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
		})
	}
}

func TestRclonePublisher_Destination(t *testing.T) {
	publisher := NewRclonePublisher(nil, RcloneOptions{Profile: "onedrive", Folder: "ime/chewing"})
	assert.Equal(t, "onedrive:ime/chewing", publisher.Destination())
}
