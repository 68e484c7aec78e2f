package models

// Category defines the struct for the 'categorias' table
type Category struct {
	ID          int64   `json:"id" db:"id_categoria"`
	Name        string  `json:"name" db:"nombre"`
	Description *string `json:"description,omitempty" db:"descripcion"`

	// Virtual Field (Not in DB) - derived from Name for URL filters
	Slug string `json:"slug" db:"-"`
}
