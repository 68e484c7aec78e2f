// Package store is the storefront's query surface over the external
// tienda_vr_dunz schema. Every operation borrows the shared handle from the
// provider and issues exactly one parameterized statement.
package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/01moynul/juegosdunz-vr/internal/database"
)

const (
	DefaultGameLimit   = 10
	DefaultReviewLimit = 5
	DefaultSearchLimit = 10
)

// HandleProvider hands out the shared database handle.
// *database.Provider satisfies it.
type HandleProvider interface {
	Get(ctx context.Context) (*database.Handle, error)
}

// Store implements the read and write operations of the storefront.
type Store struct {
	db  HandleProvider
	log zerolog.Logger
}

func New(db HandleProvider, logger zerolog.Logger) *Store {
	return &Store{db: db, log: logger}
}

// limitOr returns limit, or fallback when limit is not positive.
// The result is always bound as an integer.
func limitOr(limit, fallback int) int64 {
	if limit <= 0 {
		return int64(fallback)
	}
	return int64(limit)
}
