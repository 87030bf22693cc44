package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artdialogue/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <workspace>",
	Short: "Write an HTML transcript of a workspace's dialogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, err := report.Write(buildStore(cfg), args[0])
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
