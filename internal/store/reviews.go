package store

import (
	"context"

	"github.com/01moynul/juegosdunz-vr/internal/models"
)

// ListReviews returns the newest reviews of one game first.
func (s *Store) ListReviews(ctx context.Context, gameID int64, limit int) ([]models.Review, error) {
	h, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	query := "SELECT id_resena, id_juego, nombre_usuario, email_usuario, calificacion, comentario, fecha_creacion" +
		" FROM `reseñas`" +
		" WHERE id_juego = ?" +
		" ORDER BY fecha_creacion DESC" +
		" LIMIT ?"

	rows, err := h.QueryContext(ctx, query, gameID, limitOr(limit, DefaultReviewLimit))
	if err != nil {
		return nil, &QueryError{Op: "listReviews", Err: err}
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.GameID, &r.AuthorName, &r.Email, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, &QueryError{Op: "listReviews", Err: err}
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "listReviews", Err: err}
	}
	return reviews, nil
}

// AddReview inserts one review. Failures are logged and reported through the
// result; they are never returned as an error.
func (s *Store) AddReview(ctx context.Context, r models.NewReview) WriteResult {
	h, err := s.db.Get(ctx)
	if err != nil {
		return s.writeFailed("addReview", r.GameID, err)
	}

	var email any
	if r.Email != nil {
		email = *r.Email
	}

	query := "INSERT INTO `reseñas` (id_juego, nombre_usuario, email_usuario, calificacion, comentario)" +
		" VALUES (?, ?, ?, ?, ?)"

	if _, err := h.ExecContext(ctx, query, r.GameID, r.AuthorName, email, r.Rating, r.Comment); err != nil {
		return s.writeFailed("addReview", r.GameID, err)
	}
	return succeeded()
}

func (s *Store) writeFailed(op string, gameID int64, err error) WriteResult {
	res := failed(op, err)
	s.log.Error().
		Err(err).
		Str("op", op).
		Int64("game_id", gameID).
		Str("kind", res.Err.Kind.String()).
		Msg("Write operation failed")
	return res
}
