package models

// Game is one row of the vista_juegos_completa view, which already joins the
// category name and the rating aggregates.
type Game struct {
	ID               int64    `json:"id" db:"id_juego"`
	Title            string   `json:"title" db:"titulo"`
	ShortDescription *string  `json:"shortDescription,omitempty" db:"descripcion_corta"`
	Category         string   `json:"category" db:"categoria"`
	Developer        *string  `json:"developer,omitempty" db:"desarrollador"`
	Price            float64  `json:"price" db:"precio"`
	DiscountPrice    *float64 `json:"discountPrice,omitempty" db:"precio_descuento"`
	DiscountPercent  *int64   `json:"discountPercent,omitempty" db:"porcentaje_descuento"`
	AverageRating    *float64 `json:"averageRating,omitempty" db:"calificacion_promedio"`
	ReviewCount      int64    `json:"reviewCount" db:"total_resenas"`
}
