package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
	"github.com/eshaffer321/sam-search-relay/internal/infrastructure/config"
)

// ErrNoUpstream is returned when upstream mode is selected without a client.
var ErrNoUpstream = errors.New("no SAM.gov client configured")

// Upstream performs the raw SAM.gov search call.
type Upstream interface {
	Search(ctx context.Context, q search.Query) ([]byte, error)
}

// SearchService answers search requests from SAM.gov or from sample data,
// depending on the mode chosen at startup.
type SearchService struct {
	mode     config.Mode
	upstream Upstream
	mock     *search.MockProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewSearchService creates a search service. upstream may be nil in the
// mock modes.
func NewSearchService(mode config.Mode, upstream Upstream, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}

	source := search.SourceMock
	if mode == config.ModeMockNoCredential {
		source = search.SourceMockNoAPIKey
	}

	return &SearchService{
		mode:     mode,
		upstream: upstream,
		mock:     search.NewMockProvider(source, logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Mode returns the mode the service was built with.
func (s *SearchService) Mode() config.Mode {
	return s.mode
}

// Search runs one search. Upstream rejections surface as
// *search.UpstreamError; any other error is unexpected.
func (s *SearchService) Search(ctx context.Context, f search.SearchFilter) (*search.Response, error) {
	if s.mode != config.ModeUpstream {
		return s.mock.Search(f), nil
	}
	if s.upstream == nil {
		return nil, ErrNoUpstream
	}

	q := search.BuildQuery(f, s.now())
	s.logger.Debug("built SAM.gov query", "params", len(q), "postedTo", q[search.ParamPostedTo])

	body, err := s.upstream.Search(ctx, q)
	if err != nil {
		return nil, err
	}

	page, err := search.NormalizePage(body)
	if err != nil {
		return nil, fmt.Errorf("normalize SAM.gov response: %w", err)
	}

	total := page.TotalRecords
	s.logger.Info("search completed",
		"results", len(page.Results),
		"totalRecords", total)

	return &search.Response{
		OK:           true,
		Source:       search.SourceSAM,
		Query:        f,
		TotalRecords: &total,
		Results:      page.Results,
	}, nil
}
