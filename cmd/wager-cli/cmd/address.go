// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"
	"github.com/spf13/cobra"

	"github.com/wagerlabs/wagervm/storage"
)

// Address derivation is pure, so these run fully offline. Useful to locate
// a market or bet record before submitting a transaction that touches it.
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Derive market and bet record addresses",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var (
	creatorFlag  string
	questionFlag string
	marketFlag   string
	bettorFlag   string
)

var marketAddressCmd = &cobra.Command{
	Use:   "market",
	Short: "Derive a market address from creator and question",
	RunE: func(*cobra.Command, []string) error {
		creator, err := codec.StringToAddress(creatorFlag)
		if err != nil {
			return err
		}
		questionHash := storage.HashQuestion(questionFlag)
		marketAddress := storage.MarketAddress(creator, questionHash)
		utils.Outf("{{yellow}}question hash:{{/}} %s\n", questionHash)
		utils.Outf("{{yellow}}market address:{{/}} %s\n", marketAddress)
		return nil
	},
}

var betAddressCmd = &cobra.Command{
	Use:   "bet",
	Short: "Derive a bet address from market and bettor",
	RunE: func(*cobra.Command, []string) error {
		market, err := ids.FromString(marketFlag)
		if err != nil {
			return err
		}
		bettor, err := codec.StringToAddress(bettorFlag)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}bet address:{{/}} %s\n", storage.BetAddress(market, bettor))
		return nil
	},
}

func init() {
	marketAddressCmd.Flags().StringVar(&creatorFlag, "creator", "", "creator address")
	marketAddressCmd.Flags().StringVar(&questionFlag, "question", "", "market question text")
	betAddressCmd.Flags().StringVar(&marketFlag, "market", "", "market address")
	betAddressCmd.Flags().StringVar(&bettorFlag, "bettor", "", "bettor address")
	addressCmd.AddCommand(marketAddressCmd, betAddressCmd)
}
