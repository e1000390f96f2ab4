package main

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/go-laravel-telephone/bootstrap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the field endpoints over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap.App(envFile).Run(cmd.Context())
	},
}
