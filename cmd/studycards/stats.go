package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
	"github.com/k-yamanaka/studycards/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [collection]",
		Short: "Show schedule statistics for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID := args[0]

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service := statistics.NewService(ledger.NewDBProgressRepository(db))
			stats, err := service.ForCollection(ctx, collectionID, mastery.Today())
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			_, _ = bold.Printf("%s\n", stats.CollectionID)
			fmt.Printf("  Tracked cards:  %d\n", stats.Total)
			fmt.Printf("  Due today:      %d\n", stats.DueToday)
			fmt.Printf("  Overdue:        %d\n", stats.Overdue)
			fmt.Printf("  Mastered:       %d\n", stats.Mastered)
			fmt.Printf("  Average score:  %.1f / %d\n", stats.AverageScore, mastery.MaxScore)

			fmt.Println("  Score distribution:")
			for score, count := range stats.ScoreCounts {
				if count == 0 {
					continue
				}
				fmt.Printf("    %2d: %d\n", score, count)
			}
			return nil
		},
	}
}
