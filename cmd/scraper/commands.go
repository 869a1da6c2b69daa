package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type setupFunc func(cmd *cobra.Command) (*env, error)

func cardsCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Download the art of every card edition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			cards := e.cards()
			if len(cards) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No card named %q\n", e.only)
				return nil
			}
			printSummary(cmd.OutOrStdout(), "cards", e.scraper.ScrapeCards(cmd.Context(), cards))
			e.writeAttribution()
			return nil
		},
	}
}

func setsCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "Download cover, rulebook and icon of every set edition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			sets := e.sets()
			if len(sets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No set named %q\n", e.only)
				return nil
			}
			printSummary(cmd.OutOrStdout(), "sets", e.scraper.ScrapeSets(cmd.Context(), sets))
			e.writeAttribution()
			return nil
		},
	}
}

func allCmd(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Download card and set assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			cards, sets := e.cards(), e.sets()
			if len(cards) == 0 && len(sets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No card or set named %q\n", e.only)
				return nil
			}
			out := cmd.OutOrStdout()
			if len(cards) > 0 {
				printSummary(out, "cards", e.scraper.ScrapeCards(cmd.Context(), cards))
			}
			if len(sets) > 0 {
				printSummary(out, "sets", e.scraper.ScrapeSets(cmd.Context(), sets))
			}
			e.writeAttribution()
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print scraper version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
