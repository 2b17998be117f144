package leagueapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/platform/resilience"
	"github.com/kzleague/league-site/internal/usecase"
)

const (
	defaultBaseURL   = "https://api.kffleague.kz/v1"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 6 << 20
)

var errBackendTransient = crerr.New("league backend transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the league backend. Identical concurrent requests share
// one round trip, transient failures are retried with a linear backoff, and
// a circuit breaker sheds load while the backend is down.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	retry      resilience.RetryPolicy
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breaker := resilience.NewCircuitBreaker(cfg.CircuitBreaker)
	named := logger.Named("leagueapi")
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		named.Warn("league backend circuit state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		retry:      resilience.NormalizeRetryPolicy(resilience.RetryPolicy{MaxRetries: cfg.MaxRetries, Backoff: cfg.RetryBackoff}),
		logger:     named,
		breaker:    breaker,
	}
}

// getJSON fetches path and decodes the response into target. Every request
// carries the language.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, lang preference.Language, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "league backend circuit breaker rejected request", "path", path, "state", string(c.breaker.State()))
		return fmt.Errorf("%w: league backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}

	values := url.Values{}
	for key, list := range query {
		values[key] = append([]string(nil), list...)
	}
	values.Set("lang", preference.LanguageOrDefault(string(lang)).String())
	fullURL := c.baseURL + path + "?" + values.Encode()

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if reqErr != nil && isCircuitFailure(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode league backend payload path=%s", path)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < c.retry.Attempts(); attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Mark(crerr.Wrap(err, "send request"), errBackendTransient)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Mark(crerr.Wrap(readErr, "read response body"), errBackendTransient)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: league backend status=404 url=%s", usecase.ErrNotFound, fullURL)
			case resilience.RetryableStatus(resp.StatusCode):
				lastErr = crerr.Mark(crerr.Newf("league backend status=%d body=%s", resp.StatusCode, abbreviateBody(raw)), errBackendTransient)
			default:
				return nil, crerr.Newf("league backend status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.retry.MaxRetries {
			break
		}
		timer := time.NewTimer(c.retry.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("league backend request failed")
	}
	c.logger.WarnContext(ctx, "league backend request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return crerr.Is(err, errBackendTransient) || stderrors.Is(err, context.DeadlineExceeded)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
