package database

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/01moynul/juegosdunz-vr/internal/config"
)

// ErrProviderClosed is returned by Get after Close.
var ErrProviderClosed = errors.New("database provider is closed")

// noCopy makes `go vet` flag values that are copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle is the single shared database session. It is only ever handed out
// as a pointer by Provider.Get and must not be copied.
type Handle struct {
	noCopy noCopy
	db     *sql.DB
}

func (h *Handle) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return h.db.QueryContext(ctx, query, args...)
}

func (h *Handle) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return h.db.QueryRowContext(ctx, query, args...)
}

func (h *Handle) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return h.db.ExecContext(ctx, query, args...)
}

func (h *Handle) PingContext(ctx context.Context) error {
	return h.db.PingContext(ctx)
}

// Opener constructs the underlying pool. It is called at most once per Provider.
type Opener func(ctx context.Context) (*sql.DB, error)

// Provider lazily builds one Handle and returns that same Handle on every
// call. A failed construction is remembered; there is no retry.
type Provider struct {
	mu     sync.Mutex
	open   Opener
	handle *Handle
	err    error
	closed bool
}

// NewProvider returns a Provider that connects to MySQL using cfg.
func NewProvider(cfg config.DBConfig) *Provider {
	return NewProviderWithOpener(func(ctx context.Context) (*sql.DB, error) {
		return OpenDB(ctx, cfg)
	})
}

// NewProviderWithOpener lets callers (mostly tests) supply their own pool.
func NewProviderWithOpener(open Opener) *Provider {
	return &Provider{open: open}
}

// Get returns the process-wide handle, constructing it on first use.
func (p *Provider) Get(ctx context.Context) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrProviderClosed
	}
	if p.handle != nil {
		return p.handle, nil
	}
	if p.err != nil {
		return nil, p.err
	}

	db, err := p.open(ctx)
	if err != nil {
		p.err = &ConnectionError{Err: err}
		return nil, p.err
	}

	p.handle = &Handle{db: db}
	return p.handle, nil
}

// Ping checks the live connection, constructing it if needed.
func (p *Provider) Ping(ctx context.Context) error {
	h, err := p.Get(ctx)
	if err != nil {
		return err
	}
	return h.PingContext(ctx)
}

// Close is the shutdown hook. It releases the pool if one was built.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.handle == nil {
		return nil
	}
	return p.handle.db.Close()
}
