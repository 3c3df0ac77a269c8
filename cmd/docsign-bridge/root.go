package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/docsign-bridge/pkg/config"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "docsign-bridge",
		Short: "Operator bridge for the document registry contract",
		Long: `docsign-bridge drives the document registry contract through a wallet connection.

Run "serve" for the operator page, or one of the action commands to perform a
single contract call and print its status.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to configuration file (defaults and DOCSIGN_* env when empty)")

	cmd.AddCommand(
		newServeCmd(opts),
		newHashActionCmd(opts, "sign <document-hash>", "Sign a document", "sign"),
		newHashActionCmd(opts, "check <document-hash>", "Check whether every whitelisted address signed a document", "check-all-signed"),
		newHashActionCmd(opts, "votes <document-hash>", "Show the vote count of a document", "get-vote-count"),
		newHashActionCmd(opts, "set-hash <document-hash>", "Register a new document hash", "set-document-hash"),
		newWhitelistCmd(opts),
	)

	return cmd
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
