// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/utils"
	"github.com/MKhiriev/go-water-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	authPath = "/auth/v1"
	restPath = "/rest/v1"

	// refreshSkew refreshes tokens slightly before they expire so a request
	// never leaves with a token that dies in flight.
	refreshSkew = 30 * time.Second

	getRetries = 2
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
	now    func() time.Time

	mu      sync.RWMutex
	session models.Session

	listenersMu sync.Mutex
	listeners   map[int]func(models.AuthEvent, *models.Session)
	nextID      int
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout, the public API key header and a per-request trace id.
//
// Returns an error if the address is empty or cannot be parsed as a URL, or
// if no API key is configured.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if strings.TrimSpace(adapterCfg.APIKey) == "" {
		return nil, fmt.Errorf("adapter api key is empty")
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout, getRetries)
	client.
		SetBaseURL(baseURL).
		SetHeader("apikey", adapterCfg.APIKey).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-Id", utils.NewTraceID())
			return nil
		})

	return &httpServerAdapter{
		client:    client,
		apiKey:    adapterCfg.APIKey,
		logger:    log,
		now:       time.Now,
		listeners: make(map[int]func(models.AuthEvent, *models.Session)),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a resty request bound to ctx. Unauthenticated requests use
// the API key as bearer, which is what the backend expects for anonymous
// calls.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.apiKey)
}

// authedRequest returns a request carrying a fresh access token. It fails
// with [ErrNoSession] when signed out.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	session, err := h.Session(ctx)
	if err != nil {
		return nil, err
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+session.AccessToken), nil
}
