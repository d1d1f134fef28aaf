// Package datasync mirrors the user phrase dictionary to other places: a
// remote folder through rclone or WebDAV, and a database.
package datasync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/datasync/mock_publisher.go -package=mock_datasync Publisher

// Publisher copies the dictionary file somewhere else. A failed publish never
// affects the local file, which is already written when Publish runs.
type Publisher interface {
	Publish(ctx context.Context, path string) external.Result
}

type RcloneOptions struct {
	Command string
	Profile string
	Folder  string
	// RetryAttempts is the number of retries after the first failed run.
	RetryAttempts uint
	RetryDelay    time.Duration
}

// RclonePublisher runs `rclone copy <path> <profile>:<folder>`.
type RclonePublisher struct {
	runner  external.Runner
	options RcloneOptions
}

func NewRclonePublisher(runner external.Runner, options RcloneOptions) *RclonePublisher {
	if options.Command == "" {
		options.Command = "rclone"
	}
	return &RclonePublisher{
		runner:  runner,
		options: options,
	}
}

// Destination returns the rclone remote path, "<profile>:<folder>".
func (p *RclonePublisher) Destination() string {
	return p.options.Profile + ":" + p.options.Folder
}

func (p *RclonePublisher) Publish(ctx context.Context, path string) external.Result {
	if p.options.Profile == "" || p.options.Folder == "" {
		return external.ToolMissing(p.options.Command, errors.New("remote profile or folder is not configured"))
	}

	var result external.Result
	_ = retry.Do(
		func() error {
			result = p.runner.Run(ctx, p.options.Command, "copy", path, p.Destination())
			switch result.Outcome {
			case external.OutcomeOK:
				return nil
			case external.OutcomeToolFailed:
				if result.Err == nil {
					return errors.New(result.Message())
				}
				return result.Err
			default:
				return retry.Unrecoverable(errors.New(result.Message()))
			}
		},
		retry.Context(ctx),
		retry.Attempts(p.options.RetryAttempts+1),
		retry.Delay(p.options.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying rclone copy",
				"attempt", n+1,
				"destination", p.Destination(),
				"lastError", err)
		}),
	)
	return result
}
