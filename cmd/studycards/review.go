package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k-yamanaka/studycards/internal/cli"
	"github.com/k-yamanaka/studycards/internal/collection"
	"github.com/k-yamanaka/studycards/internal/ledger"
)

func newReviewCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "review [collection]",
		Short: "Start an interactive review session for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			collectionID := args[0]

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			if limit <= 0 {
				limit = cfg.Review.SessionLimit
			}

			quiz, err := cli.NewReviewQuizCLI(
				ctx,
				collection.NewDBCollectionRepository(db),
				ledger.NewDBProgressRepository(db),
				collectionID,
				limit,
				nil,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("Reviewing %d cards from %s. Press Ctrl-C to stop.\n", quiz.CardCount(), collectionID)
			return quiz.Run(ctx)
		},
	}

	command.Flags().IntVar(&limit, "limit", 0, "Maximum cards per session (default from config)")
	return command
}
