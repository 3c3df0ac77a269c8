package main

import (
	"github.com/spf13/cobra"

	"github.com/chainsafe/docsign-bridge/pkg/app"
	"github.com/chainsafe/docsign-bridge/pkg/app/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the operator page and action API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			var runner app.Runner = api.NewServer(cfg)
			return runner.Run()
		},
	}
}
