package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chainsafe/docsign-bridge/pkg/bridge"
	"github.com/chainsafe/docsign-bridge/pkg/config"
)

// errActionFailed marks an action that completed with an error or alert status.
// The status itself has already been printed.
var errActionFailed = errors.New("action failed")

func newHashActionCmd(opts *rootOptions, use, short, action string) *cobra.Command {
	field := func(f *bridge.Fields, v string) { f.DocumentHash = v }
	if action == string(bridge.ActionSetDocumentHash) {
		field = func(f *bridge.Fields, v string) { f.NewDocumentHash = v }
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields bridge.Fields
			field(&fields, args[0])
			return runAction(cmd, opts, action, fields)
		},
	}
}

func newWhitelistCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Manage and list whitelisted addresses",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <address>",
			Short: "Add an address to the whitelist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, opts, string(bridge.ActionAddToWhitelist), bridge.Fields{Address: args[0]})
			},
		},
		&cobra.Command{
			Use:   "remove <address>",
			Short: "Remove an address from the whitelist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runAction(cmd, opts, string(bridge.ActionRemoveFromWhitelist), bridge.Fields{Address: args[0]})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List whitelisted addresses",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, opts, string(bridge.ActionListWhitelist), bridge.Fields{})
			},
		},
	)

	return cmd
}

func runAction(cmd *cobra.Command, opts *rootOptions, action string, fields bridge.Fields) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	// stdout carries the status only
	logCfg := cfg.Logging
	logCfg.OutputPath = "stderr"
	logger, err := config.NewLogger(logCfg)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	st, err := bridge.New(&cfg.Ethereum, logger).Do(cmd.Context(), action, fields)
	if err != nil {
		return err
	}

	return printStatus(cmd, st)
}

func printStatus(cmd *cobra.Command, st bridge.Status) error {
	out := cmd.OutOrStdout()

	switch st.Kind {
	case bridge.KindSuccess:
		pterm.Success.WithWriter(out).Println(st.Text)
		return nil
	case bridge.KindAlert:
		pterm.Warning.WithWriter(out).Println(st.Text)
	default:
		pterm.Error.WithWriter(out).Println(st.Text)
	}
	return errActionFailed
}
