package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/sam-search-relay/internal/api/dto"
	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
)

// maxBodyBytes matches the 100kb default JSON body limit clients of the
// original service were used to.
const maxBodyBytes = 100 << 10

// Searcher runs a search for a parsed filter.
type Searcher interface {
	Search(ctx context.Context, f search.SearchFilter) (*search.Response, error)
}

// SearchHandler handles search requests.
type SearchHandler struct {
	*Base
	searcher Searcher
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searcher Searcher, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		Base:     NewBase(logger),
		searcher: searcher,
	}
}

// Search handles POST /sam-search.
func (h *SearchHandler) Search(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.WriteError(c, http.StatusRequestEntityTooLarge, dto.BadRequestError("Request body too large"))
			return
		}
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("Could not read request body"))
		return
	}

	filter, err := search.ParseFilter(body)
	if err != nil {
		h.WriteError(c, http.StatusBadRequest, dto.BadRequestError("Request body must be valid JSON"))
		return
	}

	h.logger.Info("received search request",
		"naicsCodes", filter.NAICSCodes,
		"setAsides", filter.SetAsides,
		"dueWithinDays", filter.DueWithinDays.Days(),
		"state", filter.PlaceOfPerformance.State)

	resp, err := h.searcher.Search(c.Request.Context(), filter)
	if err != nil {
		var upErr *search.UpstreamError
		if errors.As(err, &upErr) {
			h.WriteError(c, http.StatusBadGateway, dto.UpstreamError(upErr.Status, upErr.Body))
			return
		}
		h.logger.Error("unhandled error in search", "error", err)
		h.WriteError(c, http.StatusInternalServerError, dto.InternalError(err))
		return
	}

	h.WriteJSON(c, http.StatusOK, resp)
}
