package main

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/kitchendeck/internal/config"
	"github.com/akyairhashvil/kitchendeck/internal/countdown"
	"github.com/akyairhashvil/kitchendeck/internal/database"
	"github.com/spf13/cobra"
)

func statusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the stored timer and gallery positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			env := opts.env

			ts, err := env.db.LoadTimer(ctx, config.TimerSnapshotName)
			switch {
			case errors.Is(err, database.ErrSnapshotNotFound):
				fmt.Fprintln(out, "timer:    no snapshot")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "timer:    %s %s / %s\n", ts.State,
					countdown.FormatClock(ts.Remaining), countdown.FormatClock(ts.Total))
			}

			cs, err := env.db.LoadCarousel(ctx, config.CarouselSnapshotName)
			switch {
			case errors.Is(err, database.ErrSnapshotNotFound):
				fmt.Fprintln(out, "carousel: no snapshot")
			case err != nil:
				return err
			default:
				items := env.config.Carousel.Items
				if cs.Index >= 0 && cs.Index < len(items) {
					fmt.Fprintf(out, "carousel: %d / %d %s\n", cs.Index+1, len(items), items[cs.Index].Alt)
				} else {
					fmt.Fprintf(out, "carousel: index %d outside the configured %d items\n", cs.Index, len(items))
				}
			}
			return nil
		},
	}
}

func resetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored timer and gallery snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			for _, name := range []string{config.TimerSnapshotName, config.CarouselSnapshotName} {
				if err := opts.env.db.DeleteSnapshot(ctx, name); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Snapshots cleared.")
			return nil
		},
	}
}
