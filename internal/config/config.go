package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	STT        STTConfig        `yaml:"stt"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Sessions   SessionsConfig   `yaml:"sessions"`
}

type ServerConfig struct {
	Port        int  `yaml:"port"`
	Headless    bool `yaml:"headless"`
	CORSEnabled bool `yaml:"cors_enabled"`
}

type PipelineConfig struct {
	FFmpegPath string `yaml:"ffmpeg_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type STTConfig struct {
	Provider string `yaml:"provider"` // deepgram | whisper
	Language string `yaml:"language"`
}

type SummarizerConfig struct {
	Provider  string `yaml:"provider"` // huggingface | openai | gemini | perplexity
	Model     string `yaml:"model"`
	MaxLength int    `yaml:"max_length"`
	MinLength int    `yaml:"min_length"`
}

type SessionsConfig struct {
	TTLMinutes   int `yaml:"ttl_minutes"`
	SweepMinutes int `yaml:"sweep_minutes"`
}

// Default mirrors the one-time setup file: headless server, CORS off,
// distilbart summarizer with the fixed 50/250 decode bounds.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8501,
			Headless:    true,
			CORSEnabled: false,
		},
		Pipeline: PipelineConfig{
			FFmpegPath: "ffmpeg",
			SampleRate: 16000,
		},
		STT: STTConfig{
			Provider: "deepgram",
			Language: "en-US",
		},
		Summarizer: SummarizerConfig{
			Provider:  "huggingface",
			Model:     "sshleifer/distilbart-cnn-12-6",
			MaxLength: 250,
			MinLength: 50,
		},
		Sessions: SessionsConfig{
			TTLMinutes:   30,
			SweepMinutes: 10,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Write serializes the config to disk. Called once at setup time; the file
// is the only state the server persists.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Setup loads the config file, writing it first from defaults if it does not
// exist yet. The PORT env var wins over the file in both cases.
func Setup(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		if err := cfg.Write(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			c.Server.Port = n
		}
	}
}

// ListenAddr builds the bind address. Headless servers take traffic on all
// interfaces; otherwise the app stays loopback-only, like a desktop tool.
func (c *Config) ListenAddr() string {
	if c.Server.Headless {
		return fmt.Sprintf(":%d", c.Server.Port)
	}
	return fmt.Sprintf("127.0.0.1:%d", c.Server.Port)
}

func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8501
	}
	if c.Pipeline.FFmpegPath == "" {
		c.Pipeline.FFmpegPath = "ffmpeg"
	}
	if c.Pipeline.SampleRate == 0 {
		c.Pipeline.SampleRate = 16000
	}
	if c.STT.Language == "" {
		c.STT.Language = "en-US"
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "sshleifer/distilbart-cnn-12-6"
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = 250
	}
	if c.Summarizer.MinLength == 0 {
		c.Summarizer.MinLength = 50
	}
	if c.Sessions.TTLMinutes == 0 {
		c.Sessions.TTLMinutes = 30
	}
	if c.Sessions.SweepMinutes == 0 {
		c.Sessions.SweepMinutes = 10
	}

	switch c.STT.Provider {
	case "", "deepgram":
		c.STT.Provider = "deepgram"
	case "whisper":
	default:
		return fmt.Errorf("stt.provider %q is not supported", c.STT.Provider)
	}

	switch c.Summarizer.Provider {
	case "", "huggingface":
		c.Summarizer.Provider = "huggingface"
	case "openai", "gemini", "perplexity":
	default:
		return fmt.Errorf("summarizer.provider %q is not supported", c.Summarizer.Provider)
	}

	if c.Summarizer.MinLength > c.Summarizer.MaxLength {
		return fmt.Errorf("summarizer.min_length %d exceeds max_length %d",
			c.Summarizer.MinLength, c.Summarizer.MaxLength)
	}

	return nil
}
