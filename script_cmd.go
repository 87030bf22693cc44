package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artdialogue/pipeline"
	"artdialogue/scriptgen"
)

var (
	scriptImage     string
	scriptTitle     string
	scriptArtist    string
	scriptWorkspace string
	scriptMock      bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Generate and parse the dialogue script only",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		img, err := scriptgen.LoadImage(scriptImage)
		if err != nil {
			return err
		}
		gen, err := buildGenerator(cfg, scriptMock)
		if err != nil {
			return err
		}

		orch := &pipeline.Orchestrator{
			Store:     buildStore(cfg),
			Generator: gen,
			Observer:  newObserver(logger),
		}

		res, err := orch.RunScript(cmd.Context(), pipeline.ScriptRequest{
			Image:     img,
			Title:     scriptTitle,
			Artist:    scriptArtist,
			Workspace: scriptWorkspace,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Workspace)
		fmt.Printf("dialogue lines: %d\n", len(res.Lines))
		return nil
	},
}

func init() {
	scriptCmd.Flags().StringVar(&scriptImage, "image", "", "path to the artwork image")
	scriptCmd.Flags().StringVar(&scriptTitle, "title", "", "artwork title")
	scriptCmd.Flags().StringVar(&scriptArtist, "artist", "", "artwork artist")
	scriptCmd.Flags().StringVar(&scriptWorkspace, "workspace", "", "reuse an existing workspace directory")
	scriptCmd.Flags().BoolVar(&scriptMock, "mock", false, "use the built-in mock script generator")
	_ = scriptCmd.MarkFlagRequired("image")
	_ = scriptCmd.MarkFlagRequired("title")
	_ = scriptCmd.MarkFlagRequired("artist")
}
