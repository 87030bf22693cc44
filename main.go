package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/config.json"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "artdialogue",
	Short: "Generate and voice a two-critic dialogue about an artwork",
	Long: "artdialogue turns an artwork image into a short spoken dialogue:\n" +
		"a vision model writes the script, each line is synthesized to audio,\n" +
		"and everything lands in a per-artwork workspace directory.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to config.json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	rootCmd.AddCommand(generateCmd, scriptCmd, voiceCmd, animateCmd, reportCmd, serveCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
