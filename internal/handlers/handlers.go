package handlers

import (
	"context"

	"github.com/01moynul/juegosdunz-vr/internal/store"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store *store.Store // Query surface over the storefront schema
	DB    Pinger       // Shared connection provider, used by /health
}
