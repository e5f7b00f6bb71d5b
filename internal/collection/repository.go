package collection

//go:generate mockgen -source=repository.go -destination=../mocks/collection/mock_repository.go -package=mock_collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CollectionRepository defines operations for managing collections and their cards.
type CollectionRepository interface {
	Create(ctx context.Context, c *Collection) error
	Find(ctx context.Context, id string) (*Collection, error)
	List(ctx context.Context) ([]Collection, error)
	Delete(ctx context.Context, id string) error
	AddCards(ctx context.Context, collectionID string, cards []*Card) error
	ListCards(ctx context.Context, collectionID string) ([]Card, error)
	DetachCards(ctx context.Context, collectionID string) error
	DeleteCards(ctx context.Context, collectionID string) error
}

// DBCollectionRepository implements CollectionRepository using MySQL.
type DBCollectionRepository struct {
	db *sqlx.DB
}

// NewDBCollectionRepository creates a new DBCollectionRepository.
func NewDBCollectionRepository(db *sqlx.DB) *DBCollectionRepository {
	return &DBCollectionRepository{db: db}
}

func (r *DBCollectionRepository) Create(ctx context.Context, c *Collection) error {
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO collections (id, name, kind) VALUES (?, ?, ?)",
		c.ID, c.Name, c.Kind); err != nil {
		return fmt.Errorf("db.ExecContext(insert collection) > %w", err)
	}
	return nil
}

// Find returns the collection with the given id, or nil if it does not exist.
func (r *DBCollectionRepository) Find(ctx context.Context, id string) (*Collection, error) {
	var c Collection
	err := r.db.GetContext(ctx, &c, "SELECT * FROM collections WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(collection) > %w", err)
	}
	return &c, nil
}

func (r *DBCollectionRepository) List(ctx context.Context) ([]Collection, error) {
	var collections []Collection
	if err := r.db.SelectContext(ctx, &collections, "SELECT * FROM collections ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(collections) > %w", err)
	}
	return collections, nil
}

func (r *DBCollectionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id); err != nil {
		return fmt.Errorf("db.ExecContext(delete collection) > %w", err)
	}
	return nil
}

// AddCards appends cards to a collection in one transaction, assigning
// positions after the current maximum.
func (r *DBCollectionRepository) AddCards(ctx context.Context, collectionID string, cards []*Card) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var nextPosition int64
	if err := tx.GetContext(ctx, &nextPosition,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM cards WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("tx.GetContext(next position) > %w", err)
	}

	for i, card := range cards {
		card.CollectionID = &collectionID
		card.Position = nextPosition + int64(i)
		result, err := tx.ExecContext(ctx,
			"INSERT INTO cards (collection_id, position, front, back) VALUES (?, ?, ?, ?)",
			collectionID, card.Position, card.Front, card.Back)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(insert card) > %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("result.LastInsertId() > %w", err)
		}
		card.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func (r *DBCollectionRepository) ListCards(ctx context.Context, collectionID string) ([]Card, error) {
	var cards []Card
	if err := r.db.SelectContext(ctx, &cards,
		"SELECT * FROM cards WHERE collection_id = ? ORDER BY position", collectionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cards) > %w", err)
	}
	return cards, nil
}

// DetachCards unlinks a collection's cards without deleting them.
func (r *DBCollectionRepository) DetachCards(ctx context.Context, collectionID string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE cards SET collection_id = NULL WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("db.ExecContext(detach cards) > %w", err)
	}
	return nil
}

func (r *DBCollectionRepository) DeleteCards(ctx context.Context, collectionID string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM cards WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("db.ExecContext(delete cards) > %w", err)
	}
	return nil
}
