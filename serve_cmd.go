package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"artdialogue/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview generated workspaces over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		srv, err := server.New(buildStore(cfg), logger)
		if err != nil {
			return err
		}

		logger.Info("serving workspaces", "addr", serveAddr, "dir", cfg.WorkspaceDir)
		return http.ListenAndServe(serveAddr, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "http listen address")
}
