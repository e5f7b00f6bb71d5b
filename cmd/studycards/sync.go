package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/remote"
	"github.com/k-yamanaka/studycards/internal/syncer"
)

func newSyncCommand() *cobra.Command {
	syncCommand := &cobra.Command{
		Use:   "sync",
		Short: "Exchange review progress with the sync service",
	}

	syncCommand.AddCommand(newSyncUploadCommand())
	syncCommand.AddCommand(newSyncDownloadCommand())

	return syncCommand
}

func newSyncUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload [collection]",
		Short: "Upload pending local progress for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), args[0], func(ctx context.Context, reconciler *syncer.Reconciler, collectionID string) syncer.Result {
				return reconciler.Upload(ctx, collectionID)
			})
		},
	}
}

func newSyncDownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download [collection]",
		Short: "Download remote progress for a collection and overwrite local state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), args[0], func(ctx context.Context, reconciler *syncer.Reconciler, collectionID string) syncer.Result {
				return reconciler.Download(ctx, collectionID)
			})
		},
	}
}

func runSync(
	ctx context.Context,
	collectionID string,
	operation func(context.Context, *syncer.Reconciler, string) syncer.Result,
) error {
	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if cfg.Sync.BaseURL == "" {
		return fmt.Errorf("sync.base_url is not configured; set it in the config file or STUDYCARDS_API_URL")
	}

	client := remote.NewClient(cfg.Sync.BaseURL, cfg.Sync.Token, cfg.Sync.RetryAttempts)
	defer func() {
		_ = client.Close()
	}()

	reconciler := syncer.NewReconciler(ledger.NewDBProgressRepository(db), client)
	result := operation(ctx, reconciler, collectionID)

	switch result.Status {
	case syncer.StatusSuccess:
		fmt.Printf("Synced %d items for %s.\n", result.Count, collectionID)
	case syncer.StatusNothingToSync:
		fmt.Printf("Nothing to sync for %s.\n", collectionID)
	case syncer.StatusNotAuthenticated:
		return fmt.Errorf("the sync service rejected the credentials; check STUDYCARDS_API_TOKEN")
	default:
		return fmt.Errorf("sync failed: %s", result.Message)
	}
	return nil
}
