package dto

import (
	"github.com/eshaffer321/sam-search-relay/internal/domain/search"
)

// ErrorResponse is the body of every failed search.
// All error responses from the API use this format for consistency.
type ErrorResponse struct {
	OK      bool          `json:"ok"`
	Source  search.Source `json:"source"`
	Message string        `json:"message"`
	Status  int           `json:"status,omitempty"` // upstream HTTP status
	Raw     *string       `json:"raw,omitempty"`    // upstream body
	Error   string        `json:"error,omitempty"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Method  string `json:"method"`
	Path    string `json:"path"`
}

// UpstreamError reports a non-2xx answer from SAM.gov.
func UpstreamError(status int, body string) ErrorResponse {
	return ErrorResponse{
		Source:  search.SourceSAM,
		Message: "Error calling SAM.gov API",
		Status:  status,
		Raw:     &body,
	}
}

// InternalError reports an unexpected failure while serving a search.
func InternalError(err error) ErrorResponse {
	resp := ErrorResponse{
		Source:  search.SourceBackend,
		Message: "Unexpected error in backend while calling SAM.gov",
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// BadRequestError reports a request body the backend could not read.
func BadRequestError(message string) ErrorResponse {
	return ErrorResponse{
		Source:  search.SourceBackend,
		Message: message,
	}
}

// RouteNotFound builds the catch-all 404 body.
func RouteNotFound(method, path string) NotFoundResponse {
	return NotFoundResponse{
		Message: "Route not found in backend",
		Method:  method,
		Path:    path,
	}
}
