package store

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/01moynul/juegosdunz-vr/internal/database"
)

// QueryError wraps a failed read. Reads never swallow errors.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// WriteErrorKind tells apart the broad causes of a failed write.
type WriteErrorKind int

const (
	WriteErrOther WriteErrorKind = iota
	WriteErrConstraint
	WriteErrConnection
)

func (k WriteErrorKind) String() string {
	switch k {
	case WriteErrConstraint:
		return "constraint"
	case WriteErrConnection:
		return "connection"
	default:
		return "other"
	}
}

// WriteError describes why a write did not commit. It is logged by the store
// and only ever reaches callers inside a WriteResult.
type WriteError struct {
	Op   string
	Kind WriteErrorKind
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteResult is what write operations return instead of an error.
// OK is the success signal; Err is set only when OK is false.
type WriteResult struct {
	OK  bool
	Err *WriteError
}

func succeeded() WriteResult { return WriteResult{OK: true} }

func failed(op string, err error) WriteResult {
	return WriteResult{Err: &WriteError{Op: op, Kind: classifyWriteError(err), Err: err}}
}

// MySQL server error numbers that mean the statement was rejected by the
// schema rather than by the transport.
var constraintErrorNumbers = map[uint16]bool{
	1048: true, // ER_BAD_NULL_ERROR
	1062: true, // ER_DUP_ENTRY
	1216: true, // ER_NO_REFERENCED_ROW
	1217: true, // ER_ROW_IS_REFERENCED
	1264: true, // ER_WARN_DATA_OUT_OF_RANGE
	1451: true, // ER_ROW_IS_REFERENCED_2
	1452: true, // ER_NO_REFERENCED_ROW_2
	1644: true, // ER_SIGNAL_EXCEPTION, raised by stored procedures
	3819: true, // ER_CHECK_CONSTRAINT_VIOLATED
}

func classifyWriteError(err error) WriteErrorKind {
	var connErr *database.ConnectionError
	if errors.As(err, &connErr) ||
		errors.Is(err, database.ErrProviderClosed) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return WriteErrConnection
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && constraintErrorNumbers[myErr.Number] {
		return WriteErrConstraint
	}
	return WriteErrOther
}
