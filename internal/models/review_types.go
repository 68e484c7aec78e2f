package models

import (
	"strings"
	"time"
)

// Review is the model for the 'reseñas' table.
type Review struct {
	ID         int64     `json:"id" db:"id_resena"`
	GameID     int64     `json:"gameId" db:"id_juego"`
	AuthorName string    `json:"authorName" db:"nombre_usuario"`
	Email      *string   `json:"email,omitempty" db:"email_usuario"` // Use pointer for NULL
	Rating     int64     `json:"rating" db:"calificacion"`
	Comment    string    `json:"comment" db:"comentario"`
	CreatedAt  time.Time `json:"createdAt" db:"fecha_creacion"`
}

// NewReview carries the fields an end user supplies; the id and creation
// time are assigned by the database.
type NewReview struct {
	GameID     int64
	AuthorName string
	Rating     int64
	Comment    string
	Email      *string
}

// --- API Input Structs ---

type CreateReviewInput struct {
	AuthorName string `json:"authorName" binding:"required,max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
	Rating     int64  `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (in *CreateReviewInput) Normalize() {
	in.AuthorName = strings.TrimSpace(in.AuthorName)
	in.Email = strings.TrimSpace(in.Email)
	in.Comment = strings.TrimSpace(in.Comment)
}
