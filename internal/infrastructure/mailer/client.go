package mailer

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/footynet/footynet/internal/platform/resilience"
	"github.com/footynet/footynet/internal/usecase"
)

var errMailerTransient = crerr.New("mailer transient failure")

type ClientConfig struct {
	BaseURL        string
	Token          string
	FromAddress    string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client delivers booking confirmations through an HTTP mail relay.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	fromAddress    string
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		fromAddress:    strings.TrimSpace(cfg.FromAddress),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Client) SendBookingConfirmation(ctx context.Context, recipient string, details usecase.BookingDetails) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return crerr.New("recipient is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "mailer circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("mail relay is temporarily unavailable: %w", err)
		}
	}

	if c.baseURL == "" {
		return crerr.New("mail relay base url is not configured")
	}

	payload := sendRequest{
		From:    c.fromAddress,
		To:      recipient,
		Subject: fmt.Sprintf("Venue booked: %s vs %s", details.HomeTeamName, details.AwayTeamName),
		Text:    buildConfirmationText(details),
	}
	body, err := sonic.Marshal(payload)
	if err != nil {
		return crerr.Wrap(err, "marshal mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create mail request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: send mail to=%s: %v", errMailerTransient, recipient, err)
		c.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf("%w: send mail status=%d to=%s body=%s", errMailerTransient, resp.StatusCode, recipient, strings.TrimSpace(string(raw)))
			c.recordCircuitResult(callErr)
			return callErr
		}
		callErr := fmt.Errorf("send mail status=%d to=%s body=%s", resp.StatusCode, recipient, strings.TrimSpace(string(raw)))
		c.recordCircuitResult(callErr)
		return callErr
	}

	c.logger.InfoContext(ctx, "booking confirmation sent", "match_id", details.MatchID, "recipient", recipient)
	c.recordCircuitResult(nil)
	return nil
}

func buildConfirmationText(details usecase.BookingDetails) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	line := func(parts ...string) {
		for _, part := range parts {
			_, _ = buf.WriteString(part)
		}
		_ = buf.WriteByte('\n')
	}

	line("A pitch has been booked for your upcoming match.")
	line()
	line("Match: ", details.HomeTeamName, " vs ", details.AwayTeamName)
	line("Kickoff: ", details.KickoffAt.Format(time.RFC1123))
	line("Venue: ", details.VenueName)
	line("Address: ", details.VenueAddress)

	return buf.String()
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err != nil && stderrors.Is(err, errMailerTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
