package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/bus"
	"github.com/uts/vosk-transcriber/internal/config"
	"github.com/uts/vosk-transcriber/internal/file"
	"github.com/uts/vosk-transcriber/internal/history"
	"github.com/uts/vosk-transcriber/internal/punctuator"
	"github.com/uts/vosk-transcriber/internal/punctuator/mecab"
	"github.com/uts/vosk-transcriber/internal/recognizer/google"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/recognizer/vosk/native"
	"github.com/uts/vosk-transcriber/internal/recognizer/voskserver"
	"github.com/uts/vosk-transcriber/internal/store"
	"github.com/uts/vosk-transcriber/internal/transcription"
	"github.com/uts/vosk-transcriber/internal/worker"
)

const (
	busConnectTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// runtime holds what every transcribing command shares: the loaded engine,
// worker permits and the save path with its side effects.
type runtime struct {
	cfg        *config.Config
	format     audio.Format
	engine     model.Engine
	pool       *worker.Pool
	punctuator punctuator.PunctuatorInterface
	store      *store.Store
	history    *history.Store
	publisher  bus.Publisher

	// stopPool runs before the closers so no worker outlives what it uses.
	stopPool func() error
	closers  []func() error
}

func openRuntime(ctx context.Context, cfg *config.Config) (_ *runtime, err error) {
	rt := &runtime{
		cfg: cfg,
		format: audio.Format{
			SampleRate: cfg.Audio.SampleRate,
			SampleBits: cfg.Audio.SampleBits,
			Channels:   cfg.Audio.Channels,
		},
	}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	if rt.store, err = store.New(cfg.Paths.Temp, cfg.Paths.Transcriptions); err != nil {
		return nil, err
	}
	if rt.history, err = history.Open(ctx, cfg.History.Path, cfg.History.Enabled); err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, rt.history.Close)

	if rt.pool, err = worker.NewPool(cfg.Workers.Max); err != nil {
		return nil, err
	}
	rt.stopPool = func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return rt.pool.Shutdown(ctx)
	}

	if err := rt.openPunctuator(); err != nil {
		return nil, err
	}

	if cfg.Bus.URL != "" {
		conn, err := bus.Connect(cfg.Bus.URL, busConnectTimeout)
		if err != nil {
			return nil, err
		}
		rt.publisher = conn
		rt.closers = append(rt.closers, func() error {
			return conn.Drain()
		})
	}

	if rt.engine, err = openEngine(ctx, cfg); err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, rt.engine.Close)
	return rt, nil
}

func (rt *runtime) openPunctuator() error {
	switch rt.cfg.Punctuation.Mode {
	case config.PunctuationMecab:
		p, destroy, err := mecab.Open(rt.cfg.Punctuation.Dictionary)
		if err != nil {
			return err
		}
		rt.punctuator = p
		rt.closers = append(rt.closers, func() error {
			destroy()
			return nil
		})
	case config.PunctuationNone, "":
	default:
		return fmt.Errorf("unknown punctuation mode %q", rt.cfg.Punctuation.Mode)
	}
	return nil
}

// Close stops the workers and then releases resources in reverse order of
// acquisition.
func (rt *runtime) Close() {
	if rt.stopPool != nil {
		if err := rt.stopPool(); err != nil {
			slog.Warn("failed to stop workers", "component", "app", "error", err)
		}
		rt.stopPool = nil
	}
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			slog.Warn("failed to release resource", "component", "app", "error", err)
		}
	}
	rt.closers = nil
}

func openEngine(ctx context.Context, cfg *config.Config) (model.Engine, error) {
	switch cfg.Engine.Kind {
	case config.EngineVosk:
		return native.Load(native.Options{
			ModelPath:  cfg.Paths.Model,
			SampleRate: float64(cfg.Audio.SampleRate),
			Words:      cfg.Engine.Words,
			Grammar:    cfg.Engine.Grammar,
			LogLevel:   cfg.Engine.LogLevel,
		})
	case config.EngineVoskServer:
		return voskserver.NewEngine(voskserver.Options{
			URL:        cfg.Engine.ServerURL,
			SampleRate: cfg.Audio.SampleRate,
			Words:      cfg.Engine.Words,
			Grammar:    cfg.Engine.Grammar,
		})
	case config.EngineGoogle:
		var phraseSet *google.PhraseSet
		if cfg.Engine.Grammar != "" {
			var err error
			if phraseSet, err = google.ParsePhraseSet(cfg.Engine.Grammar, cfg.Engine.Google.PhraseBoost); err != nil {
				return nil, err
			}
		}
		return google.Dial(ctx, google.Options{
			ProjectID:         cfg.Engine.Google.Project,
			Location:          cfg.Engine.Google.Location,
			Language:          cfg.Engine.Google.Language,
			Model:             cfg.Engine.Google.Model,
			SampleRate:        cfg.Audio.SampleRate,
			Channels:          cfg.Audio.Channels,
			Words:             cfg.Engine.Words,
			PhraseSet:         phraseSet,
			ReconnectInterval: cfg.Engine.Google.ReconnectInterval,
		})
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine.Kind)
	}
}

func (rt *runtime) deps() transcription.Deps {
	return transcription.Deps{
		Engine:     rt.engine,
		Permits:    rt.pool,
		Format:     rt.format,
		Punctuator: rt.punctuator,
	}
}

// saver saves through the store and records the result in the history.
func (rt *runtime) saver(source history.Source) (store.Saver, error) {
	return history.NewRecordingSaver(rt.store, rt.history, source)
}

// listener adds the bus publisher, when configured, to l.
func (rt *runtime) listener(l transcription.Listener, sessionName string) (transcription.Listener, error) {
	if rt.publisher == nil {
		return l, nil
	}
	busListener, err := bus.NewListener(rt.publisher, rt.cfg.Bus.SubjectPrefix, sessionName)
	if err != nil {
		return nil, err
	}
	return transcription.MultiListener{l, busListener}, nil
}

func (rt *runtime) newFileStrategy(sessionName string) (*transcription.FileStrategy, error) {
	converter, err := audio.NewConverter(rt.cfg.Converter.FFmpeg, rt.cfg.Paths.Temp, rt.cfg.Converter.Timeout, rt.format)
	if err != nil {
		return nil, err
	}
	saver, err := rt.saver(history.SourceFile)
	if err != nil {
		return nil, err
	}
	return transcription.NewFileStrategy(rt.deps(), converter, saver, rt.cfg.Audio.FileChunkSize, sessionName)
}

func (rt *runtime) newFileCommand(sessionName string) (*transcription.Command, error) {
	strategy, err := rt.newFileStrategy(sessionName)
	if err != nil {
		return nil, err
	}
	return transcription.NewCommand(strategy)
}

func (rt *runtime) newLiveStrategy() (*transcription.LiveStrategy, error) {
	device, err := audio.NewCaptureDevice(rt.cfg.Capture.Command)
	if err != nil {
		return nil, err
	}
	return transcription.NewLiveStrategy(rt.deps(), device, rt.cfg.Audio.LiveChunkSize, rt.cfg.Capture.InactivityTimeout)
}

// publishingCommand runs a command with the bus listener attached.
type publishingCommand struct {
	*transcription.Command
	rt          *runtime
	sessionName string
}

func (c *publishingCommand) Run(ctx context.Context, audioFile string, listener transcription.Listener) error {
	l, err := c.rt.listener(listener, c.sessionName)
	if err != nil {
		return err
	}
	return c.Command.Run(ctx, audioFile, l)
}

// openOutput returns the writer final results are appended to, or nil when
// path is empty. The file is reopened on every write so it can be followed
// while a long session runs.
func openOutput(path string) io.Writer {
	if path == "" {
		return nil
	}
	return file.NewAppendWriter(path, 0o644)
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}
