package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/k-yamanaka/studycards/internal/ledger"
)

// Manager applies the kind-specific lifecycle rules on top of the repository.
type Manager struct {
	collections  CollectionRepository
	progressRepo ledger.ProgressRepository
}

func NewManager(collections CollectionRepository, progressRepo ledger.ProgressRepository) *Manager {
	return &Manager{
		collections:  collections,
		progressRepo: progressRepo,
	}
}

// Create registers a new empty collection.
func (m *Manager) Create(ctx context.Context, id, name string, kind Kind) (*Collection, error) {
	if kind != KindCategory && kind != KindPackage {
		return nil, fmt.Errorf("unknown collection kind %q", kind)
	}

	c := &Collection{ID: id, Name: name, Kind: kind}
	if err := m.collections.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("collections.Create(%s) > %w", id, err)
	}
	return c, nil
}

// Delete removes a collection. Deleting a category detaches its cards and
// keeps their progress; deleting a package removes its cards, progress, and
// pending changes with it.
func (m *Manager) Delete(ctx context.Context, id string) error {
	c, err := m.collections.Find(ctx, id)
	if err != nil {
		return fmt.Errorf("collections.Find(%s) > %w", id, err)
	}
	if c == nil {
		return fmt.Errorf("collection %q does not exist", id)
	}

	switch c.Kind {
	case KindPackage:
		if err := m.collections.DeleteCards(ctx, id); err != nil {
			return fmt.Errorf("collections.DeleteCards(%s) > %w", id, err)
		}
		if err := m.progressRepo.DeleteByCollection(ctx, id); err != nil {
			return fmt.Errorf("progressRepo.DeleteByCollection(%s) > %w", id, err)
		}
	default:
		if err := m.collections.DetachCards(ctx, id); err != nil {
			return fmt.Errorf("collections.DetachCards(%s) > %w", id, err)
		}
	}

	if err := m.collections.Delete(ctx, id); err != nil {
		return fmt.Errorf("collections.Delete(%s) > %w", id, err)
	}

	slog.Default().Info("deleted collection", "collection", id, "kind", c.Kind)
	return nil
}
