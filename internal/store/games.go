package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/01moynul/juegosdunz-vr/internal/models"
)

const gameColumns = `id_juego, titulo, descripcion_corta, categoria, desarrollador,
	precio, precio_descuento, porcentaje_descuento, calificacion_promedio, total_resenas`

// GameFilter narrows ListGames. A zero Limit means DefaultGameLimit and an
// empty Category means every category.
type GameFilter struct {
	Limit    int
	Category string
}

// ListGames returns games ordered by average rating, best first.
func (s *Store) ListGames(ctx context.Context, f GameFilter) ([]models.Game, error) {
	h, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString("SELECT " + gameColumns + " FROM vista_juegos_completa WHERE 1=1")
	if f.Category != "" {
		queryBuilder.WriteString(" AND categoria = ?")
		args = append(args, f.Category)
	}
	queryBuilder.WriteString(" ORDER BY calificacion_promedio DESC LIMIT ?")
	args = append(args, limitOr(f.Limit, DefaultGameLimit))

	rows, err := h.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, &QueryError{Op: "listGames", Err: err}
	}
	return scanGames(rows, "listGames")
}

// GetGameByID returns the game with the given id, or nil when there is none.
// A missing game is not an error.
func (s *Store) GetGameByID(ctx context.Context, id int64) (*models.Game, error) {
	h, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	row := h.QueryRowContext(ctx, "SELECT "+gameColumns+" FROM vista_juegos_completa WHERE id_juego = ?", id)

	var g models.Game
	if err := row.Scan(gameDest(&g)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &QueryError{Op: "getGameById", Err: err}
	}
	return &g, nil
}

// SearchGames matches term, case-insensitively and as a literal substring,
// against title, short description, category and developer.
func (s *Store) SearchGames(ctx context.Context, term string, limit int) ([]models.Game, error) {
	h, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + gameColumns + ` FROM vista_juegos_completa
		WHERE LOWER(titulo) LIKE ?
		   OR LOWER(descripcion_corta) LIKE ?
		   OR LOWER(categoria) LIKE ?
		   OR LOWER(desarrollador) LIKE ?
		ORDER BY calificacion_promedio DESC
		LIMIT ?`

	pattern := containsPattern(term)
	rows, err := h.QueryContext(ctx, query, pattern, pattern, pattern, pattern, limitOr(limit, DefaultSearchLimit))
	if err != nil {
		return nil, &QueryError{Op: "searchGames", Err: err}
	}
	return scanGames(rows, "searchGames")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern lower-cases term, escapes LIKE metacharacters and wraps it
// in wildcards.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func gameDest(g *models.Game) []any {
	return []any{
		&g.ID,
		&g.Title,
		&g.ShortDescription,
		&g.Category,
		&g.Developer,
		&g.Price,
		&g.DiscountPrice,
		&g.DiscountPercent,
		&g.AverageRating,
		&g.ReviewCount,
	}
}

func scanGames(rows *sql.Rows, op string) ([]models.Game, error) {
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(gameDest(&g)...); err != nil {
			return nil, &QueryError{Op: op, Err: err}
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	return games, nil
}
