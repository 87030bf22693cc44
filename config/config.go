// Package config loads the pipeline configuration: a JSON file for the
// stable knobs, with API keys overlaid from the environment (.env files
// included) so secrets stay out of the config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	WorkspaceDir string           `json:"workspace_dir,omitempty"`
	OpenAI       OpenAIConfig     `json:"openai"`
	ElevenLabs   ElevenLabsConfig `json:"elevenlabs"`
	Voices       VoicesConfig     `json:"voices,omitempty"`
	Transcode    TranscodeConfig  `json:"transcode,omitempty"`
	Animate      AnimateConfig    `json:"animate,omitempty"`
}

type OpenAIConfig struct {
	Model   string `json:"model"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

type ElevenLabsConfig struct {
	ModelID string `json:"model_id,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// VoicesConfig overrides the built-in speaker→voice table.
type VoicesConfig struct {
	Speakers map[string]string `json:"speakers,omitempty"`
	Default  string            `json:"default,omitempty"`
}

type TranscodeConfig struct {
	Enabled    bool   `json:"enabled"`
	Binary     string `json:"binary,omitempty"`
	SampleRate int    `json:"sample_rate,omitempty"`
	Channels   int    `json:"channels,omitempty"`
}

// AnimateConfig describes the external Audio2Face/Unreal tool invocation.
type AnimateConfig struct {
	Command        []string `json:"command,omitempty"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty"`
}

// Load reads the JSON config file and overlays environment values. A
// missing .env file is not an error; a missing config file is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// Default is the configuration used when no config file exists: default
// model and workspace dir, keys from the environment, transcoding on.
func Default() Config {
	_ = godotenv.Load()

	cfg := Config{Transcode: TranscodeConfig{Enabled: true}}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("ELEVENLABS_API_KEY"); v != "" {
		c.ElevenLabs.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.WorkspaceDir == "" {
		c.WorkspaceDir = "workspace"
	}
}
