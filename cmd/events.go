package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var eventsLimit int64

func init() {
	eventsCmd.Flags().Int64Var(&eventsLimit, "limit", 10, "number of events to show, at most 50")
	rootCmd.AddCommand(eventsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Shows the latest committed registry events kept in redis.",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if eventsLimit < 1 {
			return errors.New("--limit must be at least 1")
		}
		if err := setupRegistry(cmd, args); err != nil {
			return err
		}
		if reg.events == nil {
			closeRegistry()
			return errors.New("redis.addr must be set to read events")
		}
		return nil
	},
	RunE: withRegistry(func(cmd *cobra.Command, args []string) error {
		events, err := reg.events.GetEvents(cmd.Context(), 0, eventsLimit-1)
		if err != nil {
			return err
		}
		return printJSON(events)
	}),
}
