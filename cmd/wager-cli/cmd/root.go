// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wagerlabs/wagervm/consts"
)

var ErrMissingSubcommand = errors.New("missing subcommand")

var rootCmd = &cobra.Command{
	Use:   "wager-cli",
	Short: "wagervm client",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wagervm version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", consts.Name, consts.Version)
		return nil
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		versionCmd,
		addressCmd,
	)
}

func Execute() error {
	return rootCmd.Execute()
}
