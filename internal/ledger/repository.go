// Package ledger provides the durable per-item progress store and the
// pending-change set that tracks local mutations awaiting upload.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/k-yamanaka/studycards/internal/mastery"
)

//go:generate mockgen -source=repository.go -destination=../mocks/ledger/mock_repository.go -package=mock_ledger

// ProgressRepository defines the ledger operations for one record store.
//
// Get never fails on absence: an unknown key yields the never-reviewed default.
// ClearDirty removes exactly the given keys, so a key marked dirty while an
// upload is in flight survives the clear.
type ProgressRepository interface {
	Get(ctx context.Context, collectionID string, itemIndex int64) (mastery.Item, error)
	Put(ctx context.Context, collectionID string, itemIndex int64, item mastery.Item) error
	PutBatch(ctx context.Context, collectionID string, items map[int64]mastery.Item) error
	PutDirty(ctx context.Context, collectionID string, itemIndex int64, item mastery.Item) error
	PendingKeys(ctx context.Context, collectionID string) ([]int64, error)
	MarkDirty(ctx context.Context, collectionID string, itemIndex int64) error
	ClearDirty(ctx context.Context, collectionID string, keys []int64) error
	List(ctx context.Context, collectionID string) ([]ProgressRecord, error)
	ListOverdue(ctx context.Context, collectionID string, before time.Time) ([]ProgressRecord, error)
	DeleteByCollection(ctx context.Context, collectionID string) error
}

// DBProgressRepository implements ProgressRepository using MySQL.
type DBProgressRepository struct {
	db *sqlx.DB
}

// NewDBProgressRepository creates a new DBProgressRepository.
func NewDBProgressRepository(db *sqlx.DB) *DBProgressRepository {
	return &DBProgressRepository{db: db}
}

const upsertProgressQuery = `INSERT INTO progress
	(collection_id, item_index, score, interval_days, due_on, streak, correct_days, last_correct_on, decayed_on)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	score = VALUES(score), interval_days = VALUES(interval_days), due_on = VALUES(due_on),
	streak = VALUES(streak), correct_days = VALUES(correct_days),
	last_correct_on = VALUES(last_correct_on), decayed_on = VALUES(decayed_on)`

// Get returns the stored item, or the never-reviewed default if absent.
func (r *DBProgressRepository) Get(ctx context.Context, collectionID string, itemIndex int64) (mastery.Item, error) {
	var record ProgressRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM progress WHERE collection_id = ? AND item_index = ?",
		collectionID, itemIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return mastery.NewItem(), nil
	}
	if err != nil {
		return mastery.Item{}, fmt.Errorf("db.GetContext(progress) > %w", err)
	}
	return record.Item(), nil
}

// Put upserts the item unconditionally.
func (r *DBProgressRepository) Put(ctx context.Context, collectionID string, itemIndex int64, item mastery.Item) error {
	record := NewRecord(collectionID, itemIndex, item)
	if _, err := r.db.ExecContext(ctx, upsertProgressQuery,
		record.CollectionID, record.ItemIndex, record.Score, record.IntervalDays, record.DueOn,
		record.Streak, record.CorrectDays, record.LastCorrectOn, record.DecayedOn); err != nil {
		return fmt.Errorf("db.ExecContext(upsert progress) > %w", err)
	}
	return nil
}

// PutBatch upserts all items in a single transaction, so a download merge is
// applied entirely or not at all.
func (r *DBProgressRepository) PutBatch(ctx context.Context, collectionID string, items map[int64]mastery.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for itemIndex, item := range items {
		record := NewRecord(collectionID, itemIndex, item)
		if _, err := tx.ExecContext(ctx, upsertProgressQuery,
			record.CollectionID, record.ItemIndex, record.Score, record.IntervalDays, record.DueOn,
			record.Streak, record.CorrectDays, record.LastCorrectOn, record.DecayedOn); err != nil {
			return fmt.Errorf("tx.ExecContext(upsert progress) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// PutDirty upserts the item and marks it pending in one transaction. Answer
// processing uses this so mastery state and the pending set never diverge.
func (r *DBProgressRepository) PutDirty(ctx context.Context, collectionID string, itemIndex int64, item mastery.Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	record := NewRecord(collectionID, itemIndex, item)
	if _, err := tx.ExecContext(ctx, upsertProgressQuery,
		record.CollectionID, record.ItemIndex, record.Score, record.IntervalDays, record.DueOn,
		record.Streak, record.CorrectDays, record.LastCorrectOn, record.DecayedOn); err != nil {
		return fmt.Errorf("tx.ExecContext(upsert progress) > %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT IGNORE INTO pending_changes (collection_id, item_index) VALUES (?, ?)",
		collectionID, itemIndex); err != nil {
		return fmt.Errorf("tx.ExecContext(insert pending_change) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// PendingKeys returns the item keys mutated since the last confirmed upload.
func (r *DBProgressRepository) PendingKeys(ctx context.Context, collectionID string) ([]int64, error) {
	var keys []int64
	if err := r.db.SelectContext(ctx, &keys,
		"SELECT item_index FROM pending_changes WHERE collection_id = ? ORDER BY item_index",
		collectionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pending_changes) > %w", err)
	}
	return keys, nil
}

// MarkDirty adds the key to the pending-change set. Idempotent.
func (r *DBProgressRepository) MarkDirty(ctx context.Context, collectionID string, itemIndex int64) error {
	if _, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO pending_changes (collection_id, item_index) VALUES (?, ?)",
		collectionID, itemIndex); err != nil {
		return fmt.Errorf("db.ExecContext(insert pending_change) > %w", err)
	}
	return nil
}

// ClearDirty removes exactly the given keys from the pending-change set.
// Keys marked dirty concurrently for other items are unaffected.
func (r *DBProgressRepository) ClearDirty(ctx context.Context, collectionID string, keys []int64) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		"DELETE FROM pending_changes WHERE collection_id = ? AND item_index IN (?)",
		collectionID, keys)
	if err != nil {
		return fmt.Errorf("sqlx.In(delete pending_changes) > %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db.ExecContext(delete pending_changes) > %w", err)
	}
	return nil
}

// List returns all ledger rows for a collection.
func (r *DBProgressRepository) List(ctx context.Context, collectionID string) ([]ProgressRecord, error) {
	var records []ProgressRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM progress WHERE collection_id = ? ORDER BY item_index",
		collectionID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(progress) > %w", err)
	}
	return records, nil
}

// ListOverdue returns rows whose due date has strictly passed.
func (r *DBProgressRepository) ListOverdue(ctx context.Context, collectionID string, before time.Time) ([]ProgressRecord, error) {
	var records []ProgressRecord
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM progress WHERE collection_id = ? AND due_on IS NOT NULL AND due_on < ? ORDER BY item_index",
		collectionID, before); err != nil {
		return nil, fmt.Errorf("db.SelectContext(overdue progress) > %w", err)
	}
	return records, nil
}

// DeleteByCollection discards all ledger rows and pending changes for a
// collection. Used when a remotely-sourced package is removed.
func (r *DBProgressRepository) DeleteByCollection(ctx context.Context, collectionID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pending_changes WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("tx.ExecContext(delete pending_changes) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM progress WHERE collection_id = ?", collectionID); err != nil {
		return fmt.Errorf("tx.ExecContext(delete progress) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
