package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/juegosdunz-vr/internal/handlers"
	"github.com/01moynul/juegosdunz-vr/internal/middleware"
)

// CORSMiddleware lets the storefront pages, served from allowedOrigin, call
// the API from the browser.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		// The browser sends an empty preflight first; reply with "204 No Content".
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, allowedOrigin string) *gin.Engine {
	router := gin.New()

	// CORS must run before anything else so preflights short-circuit.
	router.Use(CORSMiddleware(allowedOrigin))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})
		v1.GET("/health", h.Health)

		// --- Game Routes ---
		v1.GET("/games", h.ListGames)
		v1.GET("/games/search", h.SearchGames)
		v1.GET("/games/:id", h.GetGame)

		// --- Review Routes ---
		v1.GET("/games/:id/reviews", h.ListReviews)
		v1.POST("/games/:id/reviews", h.CreateReview)

		// --- Category Routes ---
		v1.GET("/categories", h.ListCategories)
	}

	return router
}
