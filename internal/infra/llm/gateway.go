package llm

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/moodscape-io/moodscape/internal/config"
	"go.uber.org/zap"
)

// Message is one chat turn sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options override the configured completion parameters per call. Zero values
// fall back to the client defaults.
type Options struct {
	Model         string  `json:"-"`
	Temperature   float64 `json:"-"`
	TopP          float64 `json:"-"`
	RepeatPenalty float64 `json:"-"`
	MaxTokens     int     `json:"-"`
}

type completionRequest struct {
	Model         string    `json:"model"`
	Messages      []Message `json:"messages"`
	Temperature   float64   `json:"temperature"`
	TopP          float64   `json:"top_p"`
	RepeatPenalty float64   `json:"repeat_penalty,omitempty"`
	MaxTokens     int       `json:"max_tokens,omitempty"`
	Stream        bool      `json:"stream"`
}

// Client wraps the chat-completion HTTP API with validation, bounded retries
// and structured error classification.
type Client struct {
	BaseURL     string
	APIKey      string
	HTTPClient  *http.Client
	Logger      *zap.Logger
	defaults    Options
	maxAttempts int
	retryBase   time.Duration
}

func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	maxAttempts := cfg.LLM.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	retryBase := time.Duration(cfg.LLM.RetryBaseMs) * time.Millisecond
	if retryBase <= 0 {
		retryBase = 500 * time.Millisecond
	}
	timeout := time.Duration(cfg.LLM.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(cfg.LLM.BaseURL, "/"),
		APIKey:     cfg.LLM.APIKey,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     log,
		defaults: Options{
			Model:         cfg.LLM.Model,
			Temperature:   cfg.LLM.Temperature,
			TopP:          cfg.LLM.TopP,
			RepeatPenalty: cfg.LLM.RepeatPenalty,
			MaxTokens:     cfg.LLM.MaxTokens,
		},
		maxAttempts: maxAttempts,
		retryBase:   retryBase,
	}
}

var validRoles = map[string]bool{"system": true, "user": true, "assistant": true}

// Complete sends the messages to the provider and returns the raw completion
// text. Transport failures, 5xx and 429 are retried with exponential backoff
// up to the attempt ceiling; a Retry-After header overrides the computed
// delay. Other 4xx are terminal on the first occurrence.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", &Error{Code: CodeInvalidRequest, Msg: "messages must be non-empty"}
	}
	for i, m := range messages {
		if !validRoles[m.Role] {
			return "", &Error{Code: CodeInvalidRequest, Msg: "messages[" + strconv.Itoa(i) + "]: invalid role " + m.Role}
		}
		if m.Content == "" {
			return "", &Error{Code: CodeInvalidRequest, Msg: "messages[" + strconv.Itoa(i) + "]: empty content"}
		}
	}

	req := completionRequest{
		Model:         c.defaults.Model,
		Messages:      messages,
		Temperature:   c.defaults.Temperature,
		TopP:          c.defaults.TopP,
		RepeatPenalty: c.defaults.RepeatPenalty,
		MaxTokens:     c.defaults.MaxTokens,
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	if opts.Temperature != 0 {
		req.Temperature = opts.Temperature
	}
	if opts.TopP != 0 {
		req.TopP = opts.TopP
	}
	if opts.RepeatPenalty != 0 {
		req.RepeatPenalty = opts.RepeatPenalty
	}
	if opts.MaxTokens != 0 {
		req.MaxTokens = opts.MaxTokens
	}

	body, err := sonic.Marshal(req)
	if err != nil {
		return "", &Error{Code: CodeInvalidRequest, Err: err}
	}

	// Explicit loop, not recursion: attempt counter and accumulated delay
	// stay visible and stack depth stays constant.
	var lastErr *Error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		cid := uuid.NewString()
		text, attemptErr := c.doAttempt(ctx, body, cid, attempt)
		if attemptErr == nil {
			return text, nil
		}
		lastErr = attemptErr

		if !retryable(attemptErr.Status) || attemptErr.Code == CodeShape {
			return "", attemptErr
		}
		if attempt == c.maxAttempts {
			break
		}

		delay := c.retryBase << (attempt - 1)
		if attemptErr.retryAfter > 0 {
			delay = attemptErr.retryAfter
		}
		c.Logger.Sugar().Warnw("llm attempt failed, backing off",
			"correlation_id", cid,
			"attempt", attempt,
			"status", attemptErr.Status,
			"delay", delay.String(),
		)
		time.Sleep(delay)
	}
	return "", lastErr
}

func (c *Client) doAttempt(ctx context.Context, body []byte, cid string, attempt int) (string, *Error) {
	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Code: CodeInvalidRequest, CorrelationID: cid, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Correlation-Id", cid)
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Logger.Sugar().Warnw("llm transport error",
			"correlation_id", cid, "attempt", attempt, "latency", time.Since(start).String(), "err", err)
		return "", &Error{Code: CodeTransport, CorrelationID: cid, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Code: CodeTransport, CorrelationID: cid, Err: err}
	}

	c.Logger.Sugar().Debugw("llm attempt",
		"correlation_id", cid,
		"attempt", attempt,
		"status", resp.StatusCode,
		"latency", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{
			Code:          classify(resp.StatusCode),
			Status:        resp.StatusCode,
			CorrelationID: cid,
			Msg:           strings.TrimSpace(string(respBody)),
			retryAfter:    parseRetryAfter(resp.Header.Get("Retry-After")),
		}
		return "", e
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(respBody, &decoded); err != nil {
		return "", &Error{Code: CodeShape, Status: resp.StatusCode, CorrelationID: cid, Err: err}
	}
	text := extractText(decoded)
	if text == "" {
		return "", &Error{Code: CodeShape, Status: resp.StatusCode, CorrelationID: cid, Msg: "no known response shape matched"}
	}
	return text, nil
}

// parseRetryAfter understands the delay-seconds form of the header.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
