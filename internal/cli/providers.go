package cli

import (
	"net/http"

	"github.com/eshaffer321/sam-search-relay/internal/adapters/sam"
	"github.com/eshaffer321/sam-search-relay/internal/application/service"
	"github.com/eshaffer321/sam-search-relay/internal/infrastructure/config"
	"github.com/eshaffer321/sam-search-relay/internal/infrastructure/logging"
)

// NewSAMClient creates the SAM.gov client, or nil when no key is configured.
func NewSAMClient(cfg *config.Config, loggingCfg config.LoggingConfig) *sam.Client {
	apiKey := cfg.GetAPIKey(cfg.SAM.APIKey, "SAM_API_KEY", "SAM_GOV_API_KEY")
	if apiKey == "" {
		return nil
	}
	httpClient := &http.Client{Timeout: cfg.SAM.Timeout}
	return sam.NewClient(cfg.SAM.BaseURL, apiKey, httpClient, logging.NewLoggerWithSystem(loggingCfg, "sam"))
}

// NewSearchService builds the search service for the configured mode.
func NewSearchService(cfg *config.Config, loggingCfg config.LoggingConfig) *service.SearchService {
	cfg.SAM.APIKey = cfg.GetAPIKey(cfg.SAM.APIKey, "SAM_API_KEY", "SAM_GOV_API_KEY")
	logger := logging.NewLoggerWithSystem(loggingCfg, "search")

	mode := cfg.Mode()
	if mode != config.ModeUpstream {
		return service.NewSearchService(mode, nil, logger)
	}
	return service.NewSearchService(mode, NewSAMClient(cfg, loggingCfg), logger)
}
