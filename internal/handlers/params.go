package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// gameIDParam parses the :id path segment. On failure it has already written
// a 400 response.
func gameIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return 0, false
	}
	return id, true
}

// limitQuery parses ?limit=. A missing value yields 0, which the store turns
// into its own default.
func limitQuery(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return 0, false
	}
	return limit, true
}

// bindingError turns validator failures into a field -> rule map.
func bindingError(err error) gin.H {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			if fe.Param() != "" {
				fields[fe.Field()] = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
			} else {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return gin.H{"error": "Invalid input", "fields": fields}
	}
	return gin.H{"error": err.Error()}
}
