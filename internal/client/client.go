package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kzleague/league-site/internal/datahook"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/prefetch"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 6 << 20
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Policy     datahook.Policy
	Logger     *logging.Logger
}

// Client reads the site's resource endpoints through per-resource hooks.
// Hooks share one cache, so equal keys share data, in-flight requests and
// subscriptions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      datahook.Cache
	policy     datahook.Policy
	logger     *logging.Logger

	mu     sync.RWMutex
	bridge *prefetch.DecodedBridge
}

// New builds a client over store. A nil store gets a private one.
func New(cfg Config, store *cache.Store) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	policy := cfg.Policy
	if store == nil {
		store = cache.NewStore(cache.Policy{DedupeInterval: policy.DedupeInterval})
	}
	if policy.DedupeInterval <= 0 {
		policy.DedupeInterval = store.Policy().DedupeInterval
	}
	if !policy.RevalidateOnFocus {
		policy.RevalidateOnFocus = store.Policy().RevalidateOnFocus
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: httpClient,
		cache:      store,
		policy:     policy,
		logger:     logger.Named("client"),
		bridge:     &prefetch.DecodedBridge{},
	}
}

// Layout is the part of a hydration document the client acts on.
type Layout struct {
	Route      string              `json:"route"`
	Language   preference.Language `json:"language"`
	Tournament struct {
		ID       string `json:"id"`
		SeasonID int64  `json:"seasonId"`
	} `json:"tournament"`
	Stage           string         `json:"stage,omitempty"`
	StatsSeasonID   int64          `json:"statsSeasonId"`
	MatchesSeasonID int64          `json:"matchesSeasonId"`
	Plan            queryplan.Plan `json:"plan"`
	Page            int            `json:"page,omitempty"`
}

// Hydrate installs the bridge of a layout response (the full enveloped body
// of GET /v1/layout/{route}). Hooks created afterwards are seeded from it.
func (c *Client) Hydrate(doc []byte) (Layout, error) {
	var envelope struct {
		Data struct {
			Layout
			Bridge jsoniter.RawMessage `json:"bridge"`
		} `json:"data"`
	}
	if err := jsonAPI.Unmarshal(doc, &envelope); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}

	bridge, err := prefetch.DecodeBridge(envelope.Data.Bridge)
	if err != nil {
		return Layout{}, fmt.Errorf("decode bridge: %w", err)
	}

	c.mu.Lock()
	c.bridge = bridge
	c.mu.Unlock()

	c.logger.Debug("hydrated layout", "route", envelope.Data.Route, "entries", bridge.Len())
	return envelope.Data.Layout, nil
}

// Bridge returns the currently installed hydration bridge.
func (c *Client) Bridge() *prefetch.DecodedBridge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bridge
}

// APIError is a non-2xx answer from the site.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("site api: status=%d %s: %s", e.StatusCode, e.Status, e.Message)
}

type responseEnvelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values, lang preference.Language) (T, error) {
	var zero T

	values := url.Values{}
	for key, list := range query {
		values[key] = append([]string(nil), list...)
	}
	values.Set("lang", preference.LanguageOrDefault(string(lang)).String())
	fullURL := c.baseURL + path + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", path, err)
	}

	var envelope responseEnvelope[T]
	decodeErr := jsonAPI.Unmarshal(body, &envelope)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && envelope.Error != nil {
			apiErr.Status = envelope.Error.Status
			apiErr.Message = envelope.Error.Message
		}
		return zero, apiErr
	}
	if decodeErr != nil {
		return zero, fmt.Errorf("decode %s: %w", path, decodeErr)
	}
	return envelope.Data, nil
}
