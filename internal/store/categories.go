package store

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/01moynul/juegosdunz-vr/internal/models"
)

// ListCategories returns every category in alphabetical order.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	h, err := s.db.Get(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := h.QueryContext(ctx, "SELECT id_categoria, nombre, descripcion FROM categorias ORDER BY nombre ASC")
	if err != nil {
		return nil, &QueryError{Op: "listCategories", Err: err}
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, &QueryError{Op: "listCategories", Err: err}
		}
		c.Slug = slug.Make(c.Name)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "listCategories", Err: err}
	}
	return categories, nil
}
