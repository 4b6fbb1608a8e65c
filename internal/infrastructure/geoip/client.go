package geoip

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/footynet/footynet/internal/platform/logging"
	"github.com/footynet/footynet/internal/platform/resilience"
)

const defaultBaseURL = "http://ip-api.com/json"

var errGeoIPTransient = crerr.New("geoip transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves a public IP address to approximate coordinates.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 5 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type lookupEnvelope struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (c *Client) Locate(ctx context.Context, ip string) (float64, float64, error) {
	ip = strings.TrimSpace(ip)
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return 0, 0, fmt.Errorf("parse client address %q: %w", ip, err)
	}
	if addr.IsLoopback() || addr.IsPrivate() {
		return 0, 0, fmt.Errorf("address %s is not publicly routable", ip)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "geoip circuit breaker rejected request", "state", c.breaker.State())
			return 0, 0, fmt.Errorf("geoip provider is temporarily unavailable: %w", err)
		}
	}

	out, err, _ := c.flight.Do(ip, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, c.baseURL+"/"+ip+"?fields=status,message,lat,lon")
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errGeoIPTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return 0, 0, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return 0, 0, fmt.Errorf("unexpected response payload type %T", out)
	}

	var envelope lookupEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return 0, 0, fmt.Errorf("decode provider payload: %w", err)
	}
	if envelope.Status != "success" {
		return 0, 0, fmt.Errorf("lookup failed for %s: %s", ip, envelope.Message)
	}

	return envelope.Lat, envelope.Lon, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errGeoIPTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errGeoIPTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: provider status=%d", errGeoIPTransient, resp.StatusCode)
		}
		return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
	}

	return raw, nil
}
