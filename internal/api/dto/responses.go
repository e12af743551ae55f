package dto

import "time"

// isoLayout matches JavaScript's Date.toISOString output.
const isoLayout = "2006-01-02T15:04:05.000Z"

// RootResponse is returned by GET /.
type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	Timestamp     string  `json:"timestamp"`
}

// NewRootResponse describes the service.
func NewRootResponse() RootResponse {
	return RootResponse{
		Status:  "ok",
		Message: "CVP Contract Search Backend is running.",
		Docs:    "/health and POST /sam-search are available.",
	}
}

// NewHealthResponse creates a health response for a process started at startedAt.
func NewHealthResponse(startedAt, now time.Time) HealthResponse {
	return HealthResponse{
		Status:        "healthy",
		UptimeSeconds: now.Sub(startedAt).Seconds(),
		Timestamp:     now.UTC().Format(isoLayout),
	}
}
