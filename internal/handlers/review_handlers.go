package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/01moynul/juegosdunz-vr/internal/models"
	"github.com/01moynul/juegosdunz-vr/internal/store"
)

// ListReviews handles GET /v1/games/:id/reviews?limit=
func (h *Handlers) ListReviews(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	reviews, err := h.Store.ListReviews(c.Request.Context(), id, limit)
	if err != nil {
		readFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// CreateReview handles POST /v1/games/:id/reviews
func (h *Handlers) CreateReview(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	// 1. --- Bind & Validate JSON ---
	var input models.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	// Whitespace-only fields satisfy "required" until they are trimmed.
	input.Normalize()
	if err := binding.Validator.ValidateStruct(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingError(err))
		return
	}

	review := models.NewReview{
		GameID:     id,
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if input.Email != "" {
		review.Email = &input.Email
	}

	// 2. --- Save to Database ---
	res := h.Store.AddReview(c.Request.Context(), review)
	if !res.OK {
		c.JSON(writeFailureStatus(res.Err), gin.H{"error": "Failed to add review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

func writeFailureStatus(err *store.WriteError) int {
	if err == nil {
		return http.StatusInternalServerError
	}
	switch err.Kind {
	case store.WriteErrConstraint:
		return http.StatusConflict
	case store.WriteErrConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
