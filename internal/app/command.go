package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/uts/vosk-transcriber/internal/history"
	"github.com/uts/vosk-transcriber/internal/progress"
	"github.com/uts/vosk-transcriber/internal/server"
	"github.com/uts/vosk-transcriber/internal/session"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

func NewTranscribeCommand() *cli.Command {
	return &cli.Command{
		Name:      "transcribe",
		Usage:     "transcribe an audio file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			sessionFlag,
			outputFlag,
			progressFlag,
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() != 1 {
				return errors.New("exactly one audio file must be specified")
			}
			audioFile := cCtx.Args().First()
			if _, err := os.Stat(audioFile); err != nil {
				return fmt.Errorf("audio file does not exist: %w", err)
			}

			// Ctrl-C aborts a file transcription.
			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := openRuntime(ctx, configFrom(cCtx))
			if err != nil {
				return err
			}
			defer rt.Close()

			sessionName := cCtx.String(sessionFlag.Name)
			output := openOutput(cCtx.String(outputFlag.Name))

			strategy, err := rt.newFileStrategy(sessionName)
			if err != nil {
				return err
			}
			if cCtx.Bool(progressFlag.Name) {
				bars := progress.NewManager(progress.Config{
					Enabled: progress.IsTTY(cCtx.App.ErrWriter),
					Writer:  cCtx.App.ErrWriter,
				})
				defer bars.Shutdown()
				strategy.WithProgress(bars)
			}
			cmd, err := transcription.NewCommand(strategy)
			if err != nil {
				return err
			}

			listener, err := rt.listener(transcription.NewConsoleListener(cCtx.App.Writer, cCtx.App.ErrWriter, output), sessionName)
			if err != nil {
				return err
			}
			if err := cmd.Run(ctx, audioFile, listener); err != nil {
				if isInterrupted(err) {
					return cli.Exit("transcription aborted", 130)
				}
				return err
			}
			return nil
		},
	}
}

func NewLiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "live",
		Usage: "transcribe the capture device until interrupted",
		Flags: []cli.Flag{
			sessionFlag,
			outputFlag,
			saveFlag,
		},
		Action: func(cCtx *cli.Context) error {
			ctx, cancel := context.WithCancel(cCtx.Context)
			defer cancel()

			rt, err := openRuntime(ctx, configFrom(cCtx))
			if err != nil {
				return err
			}
			defer rt.Close()

			sessionName := cCtx.String(sessionFlag.Name)
			output := openOutput(cCtx.String(outputFlag.Name))

			strategy, err := rt.newLiveStrategy()
			if err != nil {
				return err
			}
			if cCtx.Bool(saveFlag.Name) {
				saver, err := rt.saver(history.SourceLive)
				if err != nil {
					return err
				}
				strategy.WithSaver(saver, sessionName)
			}
			cmd, err := transcription.NewCommand(strategy)
			if err != nil {
				return err
			}

			stopSignals := cancelOnInterrupt(ctx, cmd.Cancel, cancel)
			defer stopSignals()

			listener, err := rt.listener(transcription.NewConsoleListener(cCtx.App.Writer, cCtx.App.ErrWriter, output), sessionName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cCtx.App.ErrWriter, "Listening... press Ctrl-C to stop")
			if err := cmd.Run(ctx, "", listener); err != nil {
				if isInterrupted(err) {
					return cli.Exit("capture aborted", 130)
				}
				return err
			}
			return nil
		},
	}
}

// cancelOnInterrupt calls graceful on the first interrupt and force on the
// second. The returned func stops listening for signals.
func cancelOnInterrupt(ctx context.Context, graceful, force func()) func() {
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			slog.Info("interrupt received, stopping", "component", "app")
			graceful()
		case <-ctx.Done():
			return
		case <-done:
			return
		}
		select {
		case <-sigCh:
			slog.Warn("second interrupt received, aborting", "component", "app")
			force()
		case <-ctx.Done():
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the live session and file jobs over HTTP",
		Action: func(cCtx *cli.Context) error {
			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := configFrom(cCtx)
			rt, err := openRuntime(ctx, cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			liveSaver, err := rt.saver(history.SourceLive)
			if err != nil {
				return err
			}
			sess, err := session.New(rt.pool, func(name string) (session.Command, error) {
				strategy, err := rt.newLiveStrategy()
				if err != nil {
					return nil, err
				}
				cmd, err := transcription.NewCommand(strategy)
				if err != nil {
					return nil, err
				}
				return &publishingCommand{Command: cmd, rt: rt, sessionName: name}, nil
			}, liveSaver, cfg.Session.DefaultName)
			if err != nil {
				return err
			}
			defer sess.Close()

			srv, err := server.New(
				server.Options{
					Addr:           cfg.HTTP.Addr,
					UploadDir:      filepath.Join(cfg.Paths.Temp, "uploads"),
					MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
				},
				sess,
				rt.pool,
				func(sessionName string) (server.Command, error) {
					cmd, err := rt.newFileCommand(sessionName)
					if err != nil {
						return nil, err
					}
					return &publishingCommand{Command: cmd, rt: rt, sessionName: sessionName}, nil
				},
				rt.history,
			)
			if err != nil {
				return err
			}
			return srv.Start(ctx)
		},
	}
}

func NewHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "list saved transcriptions, or print one by ID",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			limitFlag,
		},
		Action: func(cCtx *cli.Context) error {
			cfg := configFrom(cCtx)
			if !cfg.History.Enabled {
				return errors.New("history is disabled")
			}
			store, err := history.Open(cCtx.Context, cfg.History.Path, true)
			if err != nil {
				return err
			}
			defer store.Close()

			if id := cCtx.Args().First(); id != "" {
				entry, err := store.Get(cCtx.Context, id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cCtx.App.Writer, entry.Text)
				return nil
			}

			entries, err := store.List(cCtx.Context, cCtx.Int(limitFlag.Name))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cCtx.App.Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tSOURCE\tSESSION\tTEXT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.CreatedAt.Local().Format(time.DateTime), e.Source, e.SessionName, excerpt(e.Text, excerptRunes))
			}
			return w.Flush()
		},
	}
}

const excerptRunes = 40

// excerpt returns the first n runes of text on a single line.
func excerpt(text string, n int) string {
	runes := []rune(strings.Join(strings.Fields(text), " "))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
