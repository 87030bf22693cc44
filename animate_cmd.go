package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artdialogue/workspace"
)

var animateCmd = &cobra.Command{
	Use:   "animate <workspace>",
	Short: "Run the external Audio2Face/Unreal tool on a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store := buildStore(cfg)
		if status := store.Validate(args[0]); status != workspace.StatusValid {
			return fmt.Errorf("workspace %s: %s", args[0], status)
		}

		if err := buildRunner(cfg).Run(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("animation assets written to %s\n", store.Paths(args[0]).Unreal)
		return nil
	},
}
