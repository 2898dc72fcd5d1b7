// Package config loads the transcriber configuration from defaults, an
// optional YAML file, a .env file and TRANSCRIBER_* environment variables, in
// that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides, e.g.
// TRANSCRIBER_ENGINE_KIND.
const EnvPrefix = "TRANSCRIBER"

const (
	EngineVosk       = "vosk"
	EngineVoskServer = "vosk-server"
	EngineGoogle     = "google"

	PunctuationNone  = "none"
	PunctuationMecab = "mecab"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Audio       AudioConfig       `yaml:"audio"`
	Engine      EngineConfig      `yaml:"engine"`
	Converter   ConverterConfig   `yaml:"converter"`
	Capture     CaptureConfig     `yaml:"capture"`
	Session     SessionConfig     `yaml:"session"`
	Workers     WorkersConfig     `yaml:"workers"`
	History     HistoryConfig     `yaml:"history"`
	HTTP        HTTPConfig        `yaml:"http"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Bus         BusConfig         `yaml:"bus"`
	Punctuation PunctuationConfig `yaml:"punctuation"`
}

type PathsConfig struct {
	Temp           string `yaml:"temp"`
	Transcriptions string `yaml:"transcriptions"`
	Model          string `yaml:"model"`
}

type AudioConfig struct {
	SampleRate    int `yaml:"sample_rate" split_words:"true"`
	SampleBits    int `yaml:"sample_bits" split_words:"true"`
	Channels      int `yaml:"channels"`
	LiveChunkSize int `yaml:"live_chunk_size" split_words:"true"`
	FileChunkSize int `yaml:"file_chunk_size" split_words:"true"`
}

type EngineConfig struct {
	Kind string `yaml:"kind"`
	// Words enables word timings in final results.
	Words bool `yaml:"words"`
	// Grammar is a JSON list of phrases restricting the vocabulary.
	Grammar   string       `yaml:"grammar"`
	LogLevel  int          `yaml:"log_level" split_words:"true"`
	ServerURL string       `yaml:"server_url" split_words:"true"`
	Google    GoogleConfig `yaml:"google"`
}

type GoogleConfig struct {
	Project           string        `yaml:"project"`
	Location          string        `yaml:"location"`
	Language          string        `yaml:"language"`
	Model             string        `yaml:"model"`
	ReconnectInterval time.Duration `yaml:"reconnect_interval" split_words:"true"`
	// PhraseBoost weighs the engine grammar phrases, from 0 to 20.
	PhraseBoost float32 `yaml:"phrase_boost" split_words:"true"`
}

type ConverterConfig struct {
	FFmpeg  string        `yaml:"ffmpeg"`
	Timeout time.Duration `yaml:"timeout"`
}

type CaptureConfig struct {
	// Command produces raw PCM on stdout. Format arguments are appended.
	Command           string        `yaml:"command"`
	InactivityTimeout time.Duration `yaml:"inactivity_timeout" split_words:"true"`
}

type SessionConfig struct {
	DefaultName string `yaml:"default_name" split_words:"true"`
}

type WorkersConfig struct {
	Max int `yaml:"max"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// MaxUploadBytes caps the size of an uploaded audio file.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" split_words:"true"`
}

type TelemetryConfig struct {
	LogLevel  string `yaml:"log_level" split_words:"true"`
	LogFormat string `yaml:"log_format" split_words:"true"`
	LogFile   string `yaml:"log_file" split_words:"true"`
}

type BusConfig struct {
	// URL of the NATS server. Publishing is disabled when empty.
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix" split_words:"true"`
}

type PunctuationConfig struct {
	Mode string `yaml:"mode"`
	// Dictionary is a MeCab dictionary directory. Empty uses the system default.
	Dictionary string `yaml:"dictionary"`
}

func Default() Config {
	return Config{
		Paths: PathsConfig{
			Temp:           "temp",
			Transcriptions: "transcriptions",
			Model:          "model",
		},
		Audio: AudioConfig{
			SampleRate:    16000,
			SampleBits:    16,
			Channels:      1,
			LiveChunkSize: 4000,
			FileChunkSize: 8000,
		},
		Engine: EngineConfig{
			Kind:      EngineVosk,
			LogLevel:  -1,
			ServerURL: "ws://localhost:2700",
			Google: GoogleConfig{
				Location:          "global",
				Language:          "en-US",
				Model:             "long",
				ReconnectInterval: 4 * time.Minute,
				PhraseBoost:       10,
			},
		},
		Converter: ConverterConfig{
			FFmpeg:  "ffmpeg",
			Timeout: 300 * time.Second,
		},
		Capture: CaptureConfig{
			Command:           "ffmpeg -hide_banner -loglevel error -f alsa -i default",
			InactivityTimeout: 10 * time.Second,
		},
		Session: SessionConfig{
			DefaultName: "New Session",
		},
		Workers: WorkersConfig{
			Max: runtime.NumCPU(),
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "transcriptions/history.db",
		},
		HTTP: HTTPConfig{
			Addr:           "127.0.0.1:8080",
			MaxUploadBytes: 512 << 20,
		},
		Telemetry: TelemetryConfig{
			LogLevel:  "info",
			LogFormat: LogFormatText,
		},
		Bus: BusConfig{
			SubjectPrefix: "transcriber",
		},
		Punctuation: PunctuationConfig{
			Mode: PunctuationNone,
		},
	}
}

// Load builds the configuration. An empty path means defaults only; a path
// that does not exist is an error. envFiles default to ".env" and are skipped
// when missing.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	if c.Audio.SampleBits != 16 {
		return errors.New("audio.sample_bits must be 16")
	}
	if c.Audio.Channels <= 0 {
		return errors.New("audio.channels must be positive")
	}
	for name, size := range map[string]int{
		"audio.live_chunk_size": c.Audio.LiveChunkSize,
		"audio.file_chunk_size": c.Audio.FileChunkSize,
	} {
		if size <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		// a chunk must hold whole 16-bit samples
		if size%2 != 0 {
			return fmt.Errorf("%s must be even", name)
		}
	}

	switch c.Engine.Kind {
	case EngineVosk:
		if c.Paths.Model == "" {
			return errors.New("paths.model must not be empty for the vosk engine")
		}
	case EngineVoskServer:
		if c.Engine.ServerURL == "" {
			return errors.New("engine.server_url must be set when kind=vosk-server")
		}
	case EngineGoogle:
		if c.Engine.Google.Project == "" {
			return errors.New("engine.google.project must be set when kind=google")
		}
		if c.Engine.Google.ReconnectInterval < time.Minute {
			return errors.New("engine.google.reconnect_interval must be at least 1m")
		}
		if c.Engine.Google.PhraseBoost < 0 || c.Engine.Google.PhraseBoost > 20 {
			return errors.New("engine.google.phrase_boost must be between 0 and 20")
		}
	default:
		return fmt.Errorf("engine.kind must be one of %s|%s|%s", EngineVosk, EngineVoskServer, EngineGoogle)
	}

	if c.Converter.FFmpeg == "" {
		return errors.New("converter.ffmpeg must not be empty")
	}
	if c.Converter.Timeout <= 0 {
		return errors.New("converter.timeout must be positive")
	}
	if c.Capture.Command == "" {
		return errors.New("capture.command must not be empty")
	}
	if c.Workers.Max < 1 {
		return errors.New("workers.max must be >= 1")
	}
	if c.Paths.Temp == "" || c.Paths.Transcriptions == "" {
		return errors.New("paths.temp and paths.transcriptions must not be empty")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history is enabled")
	}
	if c.HTTP.MaxUploadBytes <= 0 {
		return errors.New("http.max_upload_bytes must be positive")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Telemetry.LogLevel)); err != nil {
		return fmt.Errorf("telemetry.log_level is invalid: %w", err)
	}
	switch c.Telemetry.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("telemetry.log_format must be one of %s|%s", LogFormatText, LogFormatJSON)
	}

	switch c.Punctuation.Mode {
	case PunctuationNone, PunctuationMecab:
	default:
		return fmt.Errorf("punctuation.mode must be one of %s|%s", PunctuationNone, PunctuationMecab)
	}
	return nil
}
