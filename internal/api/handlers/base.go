package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/sam-search-relay/internal/api/dto"
)

// Base provides shared functionality for all handlers.
type Base struct {
	logger *slog.Logger
}

// NewBase creates a new base handler with the given logger.
func NewBase(logger *slog.Logger) *Base {
	if logger == nil {
		logger = slog.Default()
	}
	return &Base{logger: logger}
}

// WriteJSON writes a JSON response with the given status code.
func (b *Base) WriteJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteError writes an error response with the given status code.
func (b *Base) WriteError(c *gin.Context, status int, err dto.ErrorResponse) {
	err.OK = false
	c.AbortWithStatusJSON(status, err)
}

// NotFound handles every unmatched method and path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.RouteNotFound(c.Request.Method, c.Request.URL.Path))
}

// Root handles GET / - a quick sanity check.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewRootResponse())
}
