package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artdialogue/pipeline"
	"artdialogue/scriptgen"
)

var (
	generateImage       string
	generateTitle       string
	generateArtist      string
	generateWorkspace   string
	generateMock        bool
	generateNoTranscode bool
	generateAnimate     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline: script generation, then voice synthesis",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		img, err := scriptgen.LoadImage(generateImage)
		if err != nil {
			return err
		}
		gen, err := buildGenerator(cfg, generateMock)
		if err != nil {
			return err
		}
		synth, err := buildSynthesizer(cfg)
		if err != nil {
			return err
		}

		orch := &pipeline.Orchestrator{
			Store:       buildStore(cfg),
			Generator:   gen,
			Synthesizer: synth,
			Voices:      buildVoices(cfg),
			Transcoder:  buildTranscoder(cfg, generateNoTranscode),
			Observer:    newObserver(logger),
		}

		res, audio, err := orch.Run(cmd.Context(), pipeline.ScriptRequest{
			Image:     img,
			Title:     generateTitle,
			Artist:    generateArtist,
			Workspace: generateWorkspace,
		})
		if err != nil {
			return err
		}

		if generateAnimate {
			if err := buildRunner(cfg).Run(cmd.Context(), res.Workspace); err != nil {
				return err
			}
		}

		fmt.Println(res.Workspace)
		fmt.Printf("dialogue lines: %d, audio files: %d\n", len(res.Lines), len(audio))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateImage, "image", "", "path to the artwork image")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "artwork title")
	generateCmd.Flags().StringVar(&generateArtist, "artist", "", "artwork artist")
	generateCmd.Flags().StringVar(&generateWorkspace, "workspace", "", "reuse an existing workspace directory")
	generateCmd.Flags().BoolVar(&generateMock, "mock", false, "use the built-in mock script generator")
	generateCmd.Flags().BoolVar(&generateNoTranscode, "no-transcode", false, "skip the 16 kHz WAV transcode step")
	generateCmd.Flags().BoolVar(&generateAnimate, "animate", false, "run the animation tool after voice synthesis")
	_ = generateCmd.MarkFlagRequired("image")
	_ = generateCmd.MarkFlagRequired("title")
	_ = generateCmd.MarkFlagRequired("artist")
}
