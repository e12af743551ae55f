// Package search holds the translation layer between caller search filters
// and the SAM.gov opportunities API: query building, record normalization
// and the sample data served when the upstream is not in use.
package search

import (
	"fmt"
)

// Source tags where a response came from.
type Source string

const (
	SourceSAM          Source = "sam.gov-api"
	SourceMock         Source = "mock-data"
	SourceMockNoAPIKey Source = "mock-data-no-api-key"
	SourceBackend      Source = "backend"
)

// Opportunity is the canonical caller-facing record. Every field is
// nullable and encodes as JSON null when the upstream had no usable value.
type Opportunity struct {
	ID                 *string            `json:"id"`
	Title              *string            `json:"title"`
	Agency             *string            `json:"agency"`
	NAICS              *string            `json:"naics"`
	SetAside           *string            `json:"setAside"`
	ResponseDueDate    *string            `json:"responseDueDate"`
	PlaceOfPerformance PlaceOfPerformance `json:"placeOfPerformance"`
	NoticeType         *string            `json:"noticeType"`
	URL                *string            `json:"url"`
}

// PlaceOfPerformance is where the contracted work happens.
type PlaceOfPerformance struct {
	City  *string `json:"city"`
	State *string `json:"state"`
}

// Response is the successful search payload.
type Response struct {
	OK           bool          `json:"ok"`
	Source       Source        `json:"source"`
	Query        SearchFilter  `json:"query"`
	TotalRecords *int          `json:"totalRecords,omitempty"`
	Results      []Opportunity `json:"results"`
}

// UpstreamError is returned when SAM.gov answers with a non-2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("SAM.gov API returned status %d", e.Status)
}

func strPtr(s string) *string { return &s }
