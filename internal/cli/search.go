package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/eshaffer321/sam-search-relay/internal/api/dto"
	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
	"github.com/eshaffer321/sam-search-relay/internal/infrastructure/config"
)

// SearchFlags are the flags for a one-off search.
type SearchFlags struct {
	NAICSCodes    []string
	SetAsides     []string
	DueWithinDays int // 0 uses the default window
	State         string
	City          string
	Format        string // "json" or "table"
	Verbose       bool
}

// ErrSearchFailed is returned after a failed search has been printed.
var ErrSearchFailed = errors.New("search failed")

// Searcher is the part of the search service the CLI needs.
type Searcher interface {
	Search(ctx context.Context, f search.SearchFilter) (*search.Response, error)
}

// Filter converts the flags to a search filter.
func (f SearchFlags) Filter() search.SearchFilter {
	filter := search.SearchFilter{
		NAICSCodes: f.NAICSCodes,
		SetAsides:  f.SetAsides,
		PlaceOfPerformance: search.PlaceFilter{
			State: f.State,
			City:  f.City,
		},
	}
	if f.DueWithinDays != 0 {
		filter.DueWithinDays = search.DueWithin(f.DueWithinDays)
	}
	return filter
}

// RunSearch runs one search through the configured service and prints the
// result to w.
func RunSearch(ctx context.Context, cfg *config.Config, flags SearchFlags, w io.Writer) error {
	loggingCfg := cfg.Observability.Logging
	if !flags.Verbose {
		loggingCfg.Level = "warn"
	}
	return runSearch(ctx, NewSearchService(cfg, loggingCfg), flags, w)
}

func runSearch(ctx context.Context, searcher Searcher, flags SearchFlags, w io.Writer) error {
	resp, err := searcher.Search(ctx, flags.Filter())
	if err != nil {
		var upErr *search.UpstreamError
		if errors.As(err, &upErr) {
			_ = PrintJSON(w, dto.UpstreamError(upErr.Status, upErr.Body))
		} else {
			_ = PrintJSON(w, dto.InternalError(err))
		}
		return fmt.Errorf("%w: %v", ErrSearchFailed, err)
	}

	if flags.Format == "table" {
		return PrintResults(w, resp)
	}
	return PrintJSON(w, resp)
}
