package syncer

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/k-yamanaka/studycards/internal/ledger"
	"github.com/k-yamanaka/studycards/internal/mastery"
)

// Reconciler drives upload and download for one progress ledger. It holds no
// timers and never retries on its own; callers decide the cadence.
type Reconciler struct {
	progressRepo ledger.ProgressRepository
	remote       RemoteClient
}

// NewReconciler creates a Reconciler over the given ledger and remote channel.
func NewReconciler(progressRepo ledger.ProgressRepository, remote RemoteClient) *Reconciler {
	return &Reconciler{
		progressRepo: progressRepo,
		remote:       remote,
	}
}

// Upload sends the collection's pending ledger entries to the remote authority
// as one batch. The pending keys are snapshotted before the network call and
// only that snapshot is cleared on confirmed success, so an item mutated while
// the upload is in flight stays pending. On any failure the pending set is
// left untouched; delivery is at-least-once.
func (r *Reconciler) Upload(ctx context.Context, collectionID string) Result {
	keys, err := r.progressRepo.PendingKeys(ctx, collectionID)
	if err != nil {
		return Errorf("progressRepo.PendingKeys(%s) > %v", collectionID, err)
	}
	if len(keys) == 0 {
		return NothingToSync()
	}

	batch := make([]ItemProgress, 0, len(keys))
	for _, key := range keys {
		item, err := r.progressRepo.Get(ctx, collectionID, key)
		if err != nil {
			return Errorf("progressRepo.Get(%s, %d) > %v", collectionID, key, err)
		}
		batch = append(batch, toItemProgress(key, item))
	}

	if err := r.remote.UploadProgress(ctx, collectionID, batch); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return NotAuthenticated()
		}
		return Errorf("remote.UploadProgress(%s) > %v", collectionID, err)
	}

	if err := r.progressRepo.ClearDirty(ctx, collectionID, keys); err != nil {
		// The keys stay pending and the next upload re-sends them, which the
		// remote merge absorbs.
		return Errorf("progressRepo.ClearDirty(%s) > %v", collectionID, err)
	}

	slog.Default().Info("uploaded pending progress",
		"collection", collectionID,
		"items", len(keys))
	return Success(len(keys))
}

// Download fetches the remote authority's progress for the collection and
// merges it into the ledger with remote-wins: every downloaded item
// unconditionally overwrites the local entry, items absent remotely stay
// untouched. The merge is applied as a single batch, so a cancelled download
// leaves the ledger as it was. The pending set is not modified; only a
// confirmed upload clears dirty flags.
func (r *Reconciler) Download(ctx context.Context, collectionID string) Result {
	items, err := r.remote.DownloadProgress(ctx, collectionID)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return NotAuthenticated()
		}
		return Errorf("remote.DownloadProgress(%s) > %v", collectionID, err)
	}
	if len(items) == 0 {
		return NothingToSync()
	}

	merged := make(map[int64]mastery.Item, len(items))
	for _, item := range items {
		merged[item.Index] = fromItemProgress(item)
	}

	if err := r.progressRepo.PutBatch(ctx, collectionID, merged); err != nil {
		return Errorf("progressRepo.PutBatch(%s) > %v", collectionID, err)
	}

	slog.Default().Info("merged remote progress",
		"collection", collectionID,
		"items", len(items))
	return Success(len(items))
}

func toItemProgress(key int64, item mastery.Item) ItemProgress {
	return ItemProgress{
		Index:       key,
		Score:       mastery.ToRemoteScore(item.Score),
		Streak:      item.Streak,
		CorrectDays: item.CorrectDays,
		ReviewedOn:  item.LastCorrectOn,
	}
}

// fromItemProgress rebuilds the local schedule from the remote fields: the
// remote authority stores only the score and review bookkeeping, so interval
// and due date are recomputed from the canonical step table. A missing
// reviewed-on date leaves the item due now.
func fromItemProgress(p ItemProgress) mastery.Item {
	score := mastery.FromRemoteScore(p.Score)
	interval := mastery.IntervalForScore(score)

	item := mastery.Item{
		Score:         score,
		IntervalDays:  interval,
		Streak:        p.Streak,
		CorrectDays:   p.CorrectDays,
		LastCorrectOn: p.ReviewedOn,
	}
	if !p.ReviewedOn.IsZero() {
		item.Due = p.ReviewedOn.AddDays(int(math.Round(interval)))
	}
	return item
}
