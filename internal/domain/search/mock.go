package search

import (
	"log/slog"
)

// MockProvider serves a fixed sample set so clients keep working without a
// SAM.gov credential. Its records already have the canonical shape.
type MockProvider struct {
	source Source
	logger *slog.Logger
}

// NewMockProvider creates a provider tagging its responses with source,
// normally SourceMockNoAPIKey or SourceMock.
func NewMockProvider(source Source, logger *slog.Logger) *MockProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockProvider{source: source, logger: logger}
}

// Source returns the tag reported in responses.
func (p *MockProvider) Source() Source {
	return p.source
}

// Search echoes the filter back with the sample records. It never touches
// the network and returns a fresh copy of the samples on every call.
func (p *MockProvider) Search(f SearchFilter) *Response {
	if p.source == SourceMockNoAPIKey {
		p.logger.Warn("SAM_API_KEY is not set, returning mock data")
	}
	return &Response{
		OK:      true,
		Source:  p.source,
		Query:   f,
		Results: SampleOpportunities(),
	}
}

// SampleOpportunities returns the two canned records.
func SampleOpportunities() []Opportunity {
	return []Opportunity{
		{
			ID:              strPtr("SAMPLE-OPP-001"),
			Title:           strPtr("Sample Logistics Support Requirement"),
			Agency:          strPtr("Department of Veterans Affairs"),
			NAICS:           strPtr("541614"),
			SetAside:        strPtr("SDVOSB"),
			ResponseDueDate: strPtr("2025-12-31"),
			PlaceOfPerformance: PlaceOfPerformance{
				City:  strPtr("Atlanta"),
				State: strPtr("GA"),
			},
			NoticeType: strPtr("Sources Sought"),
			URL:        strPtr("https://sam.gov/opp/SAMPLE-OPP-001"),
		},
		{
			ID:              strPtr("SAMPLE-OPP-002"),
			Title:           strPtr("Nationwide Transportation Services"),
			Agency:          strPtr("Defense Logistics Agency"),
			NAICS:           strPtr("484121"),
			SetAside:        strPtr("Small Business"),
			ResponseDueDate: strPtr("2026-01-15"),
			PlaceOfPerformance: PlaceOfPerformance{
				City:  strPtr("Kansas City"),
				State: strPtr("MO"),
			},
			NoticeType: strPtr("RFP"),
			URL:        strPtr("https://sam.gov/opp/SAMPLE-OPP-002"),
		},
	}
}
