package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artdialogue/pipeline"
)

var voiceNoTranscode bool

var voiceCmd = &cobra.Command{
	Use:   "voice <workspace>",
	Short: "Synthesize audio for an existing workspace's dialogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		synth, err := buildSynthesizer(cfg)
		if err != nil {
			return err
		}

		orch := &pipeline.Orchestrator{
			Store:       buildStore(cfg),
			Synthesizer: synth,
			Voices:      buildVoices(cfg),
			Transcoder:  buildTranscoder(cfg, voiceNoTranscode),
			Observer:    newObserver(logger),
		}

		audio, err := orch.RunVoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("audio files: %d\n", len(audio))
		return nil
	},
}

func init() {
	voiceCmd.Flags().BoolVar(&voiceNoTranscode, "no-transcode", false, "skip the 16 kHz WAV transcode step")
}
