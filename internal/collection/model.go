// Package collection manages the card collections a review session draws from.
// A collection is either a category, a loose grouping whose cards outlive it,
// or a package, a self-contained deck deleted as a unit.
package collection

import "time"

type Kind string

const (
	KindCategory Kind = "category"
	KindPackage  Kind = "package"
)

// Collection is a named group of cards.
type Collection struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Kind      Kind      `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Card is one reviewable item. Position is its stable index within the
// collection; progress records are keyed by it.
type Card struct {
	ID           int64     `db:"id"`
	CollectionID *string   `db:"collection_id"`
	Position     int64     `db:"position"`
	Front        string    `db:"front"`
	Back         string    `db:"back"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
