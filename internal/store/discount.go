package store

import "context"

// ApplyDiscount runs the AplicarDescuento stored procedure, which owns the
// price arithmetic and any validation of percentage.
func (s *Store) ApplyDiscount(ctx context.Context, gameID int64, percentage int64) WriteResult {
	h, err := s.db.Get(ctx)
	if err != nil {
		return s.writeFailed("applyDiscount", gameID, err)
	}

	if _, err := h.ExecContext(ctx, "CALL AplicarDescuento(?, ?)", gameID, percentage); err != nil {
		return s.writeFailed("applyDiscount", gameID, err)
	}
	return succeeded()
}
