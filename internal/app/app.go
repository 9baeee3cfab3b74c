package app

import (
	"fmt"
	"net/url"
	"strings"

	"bankdesk/internal/api"
	"bankdesk/internal/config"
)

type App struct {
	Client *api.Client
	Config *config.Config
}

// NewApp validates the configured base URL and wires up the API client.
func NewApp(cfg *config.Config) (*App, error) {
	base := strings.TrimSpace(cfg.API.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("api.base_url is not configured")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid api.base_url %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api.base_url %q must be an http(s) URL", base)
	}

	return &App{
		Client: api.NewClient(base),
		Config: cfg,
	}, nil
}
