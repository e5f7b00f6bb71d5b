// Package syncer reconciles locally-recorded progress with the remote
// authority: it uploads pending ledger changes and merges downloaded state
// back in with a remote-wins policy.
package syncer

import (
	"context"
	"errors"

	"github.com/k-yamanaka/studycards/internal/mastery"
)

//go:generate mockgen -source=interface.go -destination=../mocks/syncer/mock_remote.go -package=mock_syncer

// ErrNotAuthenticated is returned by a RemoteClient when the remote authority
// rejects the caller's credentials.
var ErrNotAuthenticated = errors.New("not authenticated")

// ItemProgress is one item's progress in the remote representation.
// Score is on the remote 0-5 scale; conversion to the canonical scale
// happens inside this package.
type ItemProgress struct {
	Index       int64
	Score       int
	Streak      int
	CorrectDays int
	ReviewedOn  mastery.Date
}

// RemoteClient is the channel to the remote authority. Both operations return
// an error value rather than panicking; ErrNotAuthenticated signals rejected
// credentials. The remote merge is idempotent per item, so repeating an upload
// after an ambiguous failure is safe.
type RemoteClient interface {
	UploadProgress(ctx context.Context, collectionID string, batch []ItemProgress) error
	DownloadProgress(ctx context.Context, collectionID string) ([]ItemProgress, error)
}
