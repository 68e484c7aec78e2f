package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/01moynul/juegosdunz-vr/internal/models"
	"github.com/01moynul/juegosdunz-vr/internal/store"
)

// ListGames handles GET /v1/games?limit=&category=&category_slug=
// category matches the category name exactly; category_slug is resolved to
// a name through the category list first.
func (h *Handlers) ListGames(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	category := strings.TrimSpace(c.Query("category"))
	if categorySlug := strings.TrimSpace(c.Query("category_slug")); categorySlug != "" {
		name, found, err := h.categoryNameForSlug(c, categorySlug)
		if err != nil {
			readFailed(c, err)
			return
		}
		if !found {
			c.JSON(http.StatusOK, gin.H{"games": []models.Game{}})
			return
		}
		category = name
	}

	games, err := h.Store.ListGames(c.Request.Context(), store.GameFilter{
		Limit:    limit,
		Category: category,
	})
	if err != nil {
		readFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// GetGame handles GET /v1/games/:id
func (h *Handlers) GetGame(c *gin.Context) {
	id, ok := gameIDParam(c)
	if !ok {
		return
	}

	game, err := h.Store.GetGameByID(c.Request.Context(), id)
	if err != nil {
		readFailed(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game": game})
}

// SearchGames handles GET /v1/games/search?q=&limit=
func (h *Handlers) SearchGames(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search term 'q' is required"})
		return
	}

	limit, ok := limitQuery(c)
	if !ok {
		return
	}

	games, err := h.Store.SearchGames(c.Request.Context(), q, limit)
	if err != nil {
		readFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games})
}

// ListCategories handles GET /v1/categories
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		readFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handlers) categoryNameForSlug(c *gin.Context, categorySlug string) (string, bool, error) {
	categories, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		return "", false, err
	}
	for _, cat := range categories {
		if cat.Slug == categorySlug {
			return cat.Name, true, nil
		}
	}
	return "", false, nil
}

// readFailed logs the underlying error and answers with a generic 500.
func readFailed(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("requestID")).
		Str("path", c.FullPath()).
		Msg("Read operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
}
