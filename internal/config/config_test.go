package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func missingEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", missingEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(*cfg, Default()); diff != "" {
		t.Errorf("Load() mismatch (-got +want):\n%s", diff)
	}
	if cfg.Audio.FileChunkSize != 8000 || cfg.Audio.LiveChunkSize != 4000 {
		t.Errorf("unexpected chunk sizes: %+v", cfg.Audio)
	}
	if cfg.Converter.Timeout != 300*time.Second {
		t.Errorf("converter timeout = %v, want 300s", cfg.Converter.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "config.yaml", `
paths:
  model: /opt/vosk/model-es
engine:
  kind: vosk-server
  server_url: ws://asr:2700
converter:
  timeout: 90s
session:
  default_name: Standup
workers:
  max: 2
`)
	cfg, err := Load(path, missingEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Paths.Model != "/opt/vosk/model-es" {
		t.Errorf("model path = %s", cfg.Paths.Model)
	}
	if cfg.Engine.Kind != EngineVoskServer || cfg.Engine.ServerURL != "ws://asr:2700" {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	if cfg.Converter.Timeout != 90*time.Second {
		t.Errorf("converter timeout = %v, want 90s", cfg.Converter.Timeout)
	}
	if cfg.Session.DefaultName != "Standup" || cfg.Workers.Max != 2 {
		t.Errorf("unexpected session/workers: %+v %+v", cfg.Session, cfg.Workers)
	}
	// untouched values keep their defaults
	if cfg.Paths.Temp != "temp" {
		t.Errorf("temp path = %s, want temp", cfg.Paths.Temp)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), missingEnv(t)); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "audio: [")
	if _, err := Load(path, missingEnv(t)); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRANSCRIBER_ENGINE_KIND", "google")
	t.Setenv("TRANSCRIBER_ENGINE_GOOGLE_PROJECT", "my-project")
	t.Setenv("TRANSCRIBER_ENGINE_GOOGLE_RECONNECT_INTERVAL", "2m")
	t.Setenv("TRANSCRIBER_AUDIO_LIVE_CHUNK_SIZE", "3200")
	t.Setenv("TRANSCRIBER_HISTORY_ENABLED", "false")
	t.Setenv("TRANSCRIBER_BUS_URL", "nats://localhost:4222")
	t.Setenv("TRANSCRIBER_TELEMETRY_LOG_FORMAT", "json")

	cfg, err := Load("", missingEnv(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine.Kind != EngineGoogle || cfg.Engine.Google.Project != "my-project" {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	if cfg.Engine.Google.ReconnectInterval != 2*time.Minute {
		t.Errorf("reconnect interval = %v, want 2m", cfg.Engine.Google.ReconnectInterval)
	}
	if cfg.Audio.LiveChunkSize != 3200 {
		t.Errorf("live chunk size = %d, want 3200", cfg.Audio.LiveChunkSize)
	}
	if cfg.History.Enabled {
		t.Error("expected history to be disabled")
	}
	if cfg.Bus.URL != "nats://localhost:4222" {
		t.Errorf("bus url = %s", cfg.Bus.URL)
	}
	if cfg.Telemetry.LogFormat != LogFormatJSON {
		t.Errorf("log format = %s", cfg.Telemetry.LogFormat)
	}
}

func TestDotEnv(t *testing.T) {
	const key = "TRANSCRIBER_SESSION_DEFAULT_NAME"
	t.Setenv(key, "")
	os.Unsetenv(key)
	t.Cleanup(func() { os.Unsetenv(key) })

	envFile := writeFile(t, ".env", key+"=From Dotenv\n")
	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Session.DefaultName != "From Dotenv" {
		t.Errorf("default name = %q, want %q", cfg.Session.DefaultName, "From Dotenv")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "sample rate", modify: func(c *Config) { c.Audio.SampleRate = 0 }, wantErr: "audio.sample_rate"},
		{name: "sample bits", modify: func(c *Config) { c.Audio.SampleBits = 8 }, wantErr: "audio.sample_bits"},
		{name: "channels", modify: func(c *Config) { c.Audio.Channels = 0 }, wantErr: "audio.channels"},
		{name: "odd chunk", modify: func(c *Config) { c.Audio.FileChunkSize = 8001 }, wantErr: "audio.file_chunk_size must be even"},
		{name: "zero chunk", modify: func(c *Config) { c.Audio.LiveChunkSize = 0 }, wantErr: "audio.live_chunk_size must be positive"},
		{name: "unknown engine", modify: func(c *Config) { c.Engine.Kind = "whisper" }, wantErr: "engine.kind"},
		{name: "vosk server without url", modify: func(c *Config) {
			c.Engine.Kind = EngineVoskServer
			c.Engine.ServerURL = ""
		}, wantErr: "engine.server_url"},
		{name: "google without project", modify: func(c *Config) { c.Engine.Kind = EngineGoogle }, wantErr: "engine.google.project"},
		{name: "converter timeout", modify: func(c *Config) { c.Converter.Timeout = 0 }, wantErr: "converter.timeout"},
		{name: "workers", modify: func(c *Config) { c.Workers.Max = 0 }, wantErr: "workers.max"},
		{name: "log level", modify: func(c *Config) { c.Telemetry.LogLevel = "loud" }, wantErr: "telemetry.log_level"},
		{name: "log format", modify: func(c *Config) { c.Telemetry.LogFormat = "xml" }, wantErr: "telemetry.log_format"},
		{name: "punctuation", modify: func(c *Config) { c.Punctuation.Mode = "ml" }, wantErr: "punctuation.mode"},
		{name: "google phrase boost", modify: func(c *Config) {
			c.Engine.Kind = EngineGoogle
			c.Engine.Google.Project = "p"
			c.Engine.Google.PhraseBoost = 25
		}, wantErr: "engine.google.phrase_boost"},
		{name: "upload limit", modify: func(c *Config) { c.HTTP.MaxUploadBytes = 0 }, wantErr: "http.max_upload_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
