package main

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"artdialogue/animate"
	"artdialogue/config"
	"artdialogue/pipeline"
	"artdialogue/scriptgen"
	"artdialogue/transcode"
	"artdialogue/voice"
	"artdialogue/workspace"
)

// loadConfig reads the configured file; when the default path simply does
// not exist, built-in defaults plus environment keys are enough to run.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil && configPath == defaultConfigPath && errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func buildStore(cfg config.Config) *workspace.Store {
	return workspace.NewStore(cfg.WorkspaceDir)
}

func buildGenerator(cfg config.Config, mock bool) (scriptgen.Generator, error) {
	if mock {
		return scriptgen.Mock{}, nil
	}
	return scriptgen.NewOpenAI(scriptgen.Settings{
		Model:   cfg.OpenAI.Model,
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
}

func buildSynthesizer(cfg config.Config) (voice.Synthesizer, error) {
	return voice.NewElevenLabs(voice.Settings{
		APIKey:  cfg.ElevenLabs.APIKey,
		BaseURL: cfg.ElevenLabs.BaseURL,
		ModelID: cfg.ElevenLabs.ModelID,
	}, nil)
}

func buildVoices(cfg config.Config) voice.Map {
	if len(cfg.Voices.Speakers) == 0 && cfg.Voices.Default == "" {
		return voice.DefaultMap()
	}
	return voice.NewMap(cfg.Voices.Speakers, cfg.Voices.Default)
}

func buildTranscoder(cfg config.Config, disabled bool) transcode.Transcoder {
	if disabled || !cfg.Transcode.Enabled {
		return nil
	}
	f := transcode.NewFFmpeg()
	if cfg.Transcode.Binary != "" {
		f.Binary = cfg.Transcode.Binary
	}
	if cfg.Transcode.SampleRate > 0 {
		f.SampleRate = cfg.Transcode.SampleRate
	}
	if cfg.Transcode.Channels > 0 {
		f.Channels = cfg.Transcode.Channels
	}
	return f
}

func buildRunner(cfg config.Config) *animate.Runner {
	r := animate.NewRunner(cfg.Animate.Command)
	if cfg.Animate.TimeoutSeconds > 0 {
		r.Timeout = time.Duration(cfg.Animate.TimeoutSeconds) * time.Second
	}
	return r
}

func newObserver(logger *log.Logger) pipeline.Observer {
	return pipeline.LogObserver{Logger: logger}
}
