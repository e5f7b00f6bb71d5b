package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k-yamanaka/studycards/internal/database"
	"github.com/k-yamanaka/studycards/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			count, err := database.Migrate(ctx, db, schemas.Migrations)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Println("Database is up to date.")
				return nil
			}
			fmt.Printf("Applied %d migrations.\n", count)
			return nil
		},
	}
}
