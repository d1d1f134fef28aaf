// Package cli implements the interactive phrase loop and the one-shot add flow.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/chenchunyii/Chewing-Editor/internal/datasync"
	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
	"github.com/chenchunyii/Chewing-Editor/internal/external"
	"github.com/chenchunyii/Chewing-Editor/internal/reload"
	"github.com/chenchunyii/Chewing-Editor/internal/transliterate"
)

var (
	errEnd = errors.New("end")
)

const prompt = "請輸入中文文字: "

// Store is the part of the dictionary store the loop needs.
type Store interface {
	Upsert(entry dictionary.Entry) (bool, error)
	Path() string
}

//go:generate mockgen -source=phrase_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// PhraseCLI reads phrases, records them in the user dictionary and then
// publishes and reloads the dictionary. publisher and reloader are optional.
type PhraseCLI struct {
	transliterator transliterate.Transliterator
	store          Store
	publisher      datasync.Publisher
	reloader       reload.Reloader
	policy         ContinuePolicy
	stdinReader    *bufio.Reader
	stdoutWriter   io.Writer
	bold           *color.Color
	green          *color.Color
	red            *color.Color
}

// NewPhraseCLI creates a CLI reading from stdin and writing to stdout.
func NewPhraseCLI(
	transliterator transliterate.Transliterator,
	store Store,
	publisher datasync.Publisher,
	reloader reload.Reloader,
	policy ContinuePolicy,
) *PhraseCLI {
	return NewPhraseCLIWithIO(transliterator, store, publisher, reloader, policy, os.Stdin, os.Stdout)
}

// NewPhraseCLIWithIO is NewPhraseCLI with explicit input and output.
func NewPhraseCLIWithIO(
	transliterator transliterate.Transliterator,
	store Store,
	publisher datasync.Publisher,
	reloader reload.Reloader,
	policy ContinuePolicy,
	stdin io.Reader,
	stdout io.Writer,
) *PhraseCLI {
	if policy == "" {
		policy = ContinueAlways
	}
	return &PhraseCLI{
		transliterator: transliterator,
		store:          store,
		publisher:      publisher,
		reloader:       reloader,
		policy:         policy,
		stdinReader:    bufio.NewReader(stdin),
		stdoutWriter:   stdout,
		bold:           color.New(color.Bold),
		green:          color.New(color.FgGreen),
		red:            color.New(color.FgRed),
	}
}

// Session runs one prompt, record, publish and reload cycle.
// It returns errEnd when the user quits or input ends.
func (cli *PhraseCLI) Session(ctx context.Context) error {
	_, _ = cli.bold.Fprint(cli.stdoutWriter, prompt)

	line, err := cli.stdinReader.ReadString('\n')
	atEOF := errors.Is(err, io.EOF)
	if err != nil && !atEOF {
		return fmt.Errorf("error reading input: %w", err)
	}

	// The phrase keeps its spaces; only the line ending is dropped.
	text := strings.TrimRight(line, "\r\n")
	switch strings.TrimSpace(text) {
	case "":
		if atEOF {
			_, _ = fmt.Fprintln(cli.stdoutWriter)
			return errEnd
		}
		return nil
	case "quit", "exit":
		return errEnd
	}

	keepGoing, err := cli.addPhrase(ctx, text)
	if err != nil {
		return err
	}
	if atEOF || !keepGoing {
		return errEnd
	}
	return nil
}

// AddPhrases records each text without prompting, then publishes and reloads
// once. Blank texts are skipped.
func (cli *PhraseCLI) AddPhrases(ctx context.Context, texts []string) error {
	recorded := 0
	for _, text := range texts {
		text = strings.TrimRight(text, "\r\n")
		if strings.TrimSpace(text) == "" {
			slog.Default().Debug("skip empty phrase")
			continue
		}
		if err := cli.record(transliterate.NewEntry(cli.transliterator, text)); err != nil {
			return err
		}
		recorded++
	}
	if recorded == 0 {
		return dictionary.ErrEmptyPhrase
	}

	cli.publish(ctx)
	cli.reload(ctx)
	return nil
}

// AddPhraseWithBopomofo records phrase with a reading typed by the user
// instead of the transliterated one, for characters whose reading depends on
// the word they appear in. Tokens are re-joined with single spaces. A blank
// bopomofo falls back to transliteration.
func (cli *PhraseCLI) AddPhraseWithBopomofo(ctx context.Context, phrase, bopomofo string) error {
	if strings.TrimSpace(phrase) == "" {
		return dictionary.ErrEmptyPhrase
	}

	var entry dictionary.Entry
	if tokens := strings.Fields(bopomofo); len(tokens) > 0 {
		entry = dictionary.Entry{
			Bopomofo: strings.Join(tokens, " "),
			Phrase:   phrase,
		}
	} else {
		entry = transliterate.NewEntry(cli.transliterator, phrase)
	}
	if err := cli.record(entry); err != nil {
		return err
	}

	cli.publish(ctx)
	cli.reload(ctx)
	return nil
}

// Close releases the publisher's connections, if it holds any.
func (cli *PhraseCLI) Close() error {
	closer, ok := cli.publisher.(io.Closer)
	if !ok {
		return nil
	}
	return closer.Close()
}

func (cli *PhraseCLI) addPhrase(ctx context.Context, text string) (bool, error) {
	if err := cli.record(transliterate.NewEntry(cli.transliterator, text)); err != nil {
		return false, err
	}
	cli.publish(ctx)
	result := cli.reload(ctx)
	return cli.policy.ShouldContinue(result), nil
}

func (cli *PhraseCLI) record(entry dictionary.Entry) error {
	added, err := cli.store.Upsert(entry)
	if err != nil {
		return fmt.Errorf("store.Upsert(%s) > %w", entry.Phrase, err)
	}

	if added {
		_, _ = cli.green.Fprintf(cli.stdoutWriter, "已新增 %s (%s)\n", entry.Phrase, entry.Bopomofo)
	} else {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "已存在 %s (%s)\n", entry.Phrase, entry.Bopomofo)
	}
	_, _ = fmt.Fprintf(cli.stdoutWriter, "已將資料存入 %s\n", cli.store.Path())
	return nil
}

func (cli *PhraseCLI) publish(ctx context.Context) {
	if cli.publisher == nil {
		return
	}
	cli.report(cli.publisher.Publish(ctx, cli.store.Path()))
}

// reload returns an OK result when reloading is disabled so that policies
// only react to actual failures.
func (cli *PhraseCLI) reload(ctx context.Context) external.Result {
	if cli.reloader == nil {
		return external.OK("reload")
	}
	result := cli.reloader.Reload(ctx)
	cli.report(result)
	return result
}

func (cli *PhraseCLI) report(result external.Result) {
	if result.Succeeded() {
		_, _ = fmt.Fprintln(cli.stdoutWriter, result.Message())
		return
	}
	slog.Default().Debug("external tool did not succeed", "tool", result.Tool, "outcome", result.Outcome.String(), "error", result.Err)
	_, _ = cli.red.Fprintln(cli.stdoutWriter, result.Message())
}

func (cli *PhraseCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}
