package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/01moynul/juegosdunz-vr/internal/config"
)

// ConnectionError is returned when the first handle construction fails.
// It carries the driver's own message.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DSN renders the static connection settings as a go-sql-driver DSN.
// A non-empty cfg.DSN wins over the individual fields.
func DSN(cfg config.DBConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	c := mysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.Host
	c.DBName = cfg.Name
	c.ParseTime = true
	c.Loc = time.Local
	if cfg.Charset != "" {
		c.Params = map[string]string{"charset": cfg.Charset}
	}
	return c.FormatDSN()
}

// OpenDB initializes and returns the Read/Write connection pool for cfg.
func OpenDB(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	return OpenDBWithDSN(ctx, DSN(cfg))
}

// OpenDBWithDSN creates and configures a pool for any DSN and verifies it
// with a ping before handing it back.
func OpenDBWithDSN(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Msg("Database connection pool established successfully")
	return db, nil
}
