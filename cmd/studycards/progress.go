package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k-yamanaka/studycards/internal/datasync"
	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
)

func newProgressCommand() *cobra.Command {
	progressCommand := &cobra.Command{
		Use:   "progress",
		Short: "Export and import review progress as YAML",
	}

	progressCommand.AddCommand(newProgressExportCommand())
	progressCommand.AddCommand(newProgressImportCommand())

	return progressCommand
}

func newProgressExportCommand() *cobra.Command {
	var outputFile string

	command := &cobra.Command{
		Use:   "export [collection]",
		Short: "Export a collection's progress to a YAML archive",
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

			writer := cmd.OutOrStdout()
			if outputFile != "" {
				file, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", outputFile, err)
				}
				defer func() {
					_ = file.Close()
				}()
				writer = file
			}

			exporter := datasync.NewExporter(ledger.NewDBProgressRepository(db))
			if err := exporter.Export(ctx, collectionID, mastery.Today(), writer); err != nil {
				return err
			}
			if outputFile != "" {
				fmt.Printf("Exported progress for %s to %s.\n", collectionID, outputFile)
			}
			return nil
		},
	}

	command.Flags().StringVarP(&outputFile, "output", "o", "", "Write to a file instead of stdout")
	return command
}

func newProgressImportCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool
	var markPending bool

	command := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a YAML progress archive into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			archiveFile := args[0]

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			file, err := os.Open(archiveFile)
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", archiveFile, err)
			}
			defer func() {
				_ = file.Close()
			}()

			importer := datasync.NewImporter(ledger.NewDBProgressRepository(db), cmd.OutOrStdout())
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
				MarkPending:    markPending,
			}
			result, err := importer.Import(ctx, file, opts)
			if err != nil {
				return err
			}

			fmt.Println("\nImport Summary:")
			if opts.DryRun {
				fmt.Println("  (dry-run mode, no changes made)")
			}
			fmt.Printf("  Items: %d new, %d updated, %d skipped\n", result.New, result.Updated, result.Skipped)
			return nil
		},
	}

	command.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	command.Flags().BoolVar(&updateExisting, "update-existing", false, "Overwrite existing progress records")
	command.Flags().BoolVar(&markPending, "mark-pending", false, "Queue imported items for the next sync upload")
	return command
}
