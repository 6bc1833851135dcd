package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/moodscape-io/moodscape/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.LLM.BaseURL = baseURL
	cfg.LLM.Model = "test-model"
	cfg.LLM.Temperature = 0.7
	cfg.LLM.TopP = 0.9
	cfg.LLM.MaxAttempts = 3
	cfg.LLM.RetryBaseMs = 1
	cfg.LLM.TimeoutSec = 5
	return NewClient(cfg, zap.NewNop())
}

func userMessage(content string) []Message {
	return []Message{{Role: "user", Content: content}}
}

func TestComplete_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		assert.NotEmpty(t, r.Header.Get("X-Correlation-Id"))
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer srv.Close()

	text, err := testClient(srv.URL).Complete(context.Background(), userMessage("hi"), Options{})
	assert.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestComplete_AttemptCeiling(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), userMessage("hi"), Options{})
	assert.Error(t, err)

	var gatewayErr *Error
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, CodeServer, gatewayErr.Code)
	assert.Equal(t, http.StatusInternalServerError, gatewayErr.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestComplete_RateLimitedExhaustsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), userMessage("hi"), Options{})

	var gatewayErr *Error
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, CodeRateLimited, gatewayErr.Code)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestComplete_RetryAfterOverridesBackoff(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	client.retryBase = time.Minute

	start := time.Now()
	text, err := client.Complete(context.Background(), userMessage("hi"), Options{})
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.GreaterOrEqual(t, elapsed, time.Second, "header delay should be waited out")
	assert.Less(t, elapsed, 10*time.Second, "computed minute-long backoff must be overridden by the header")
}

func TestComplete_AuthErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), userMessage("hi"), Options{})

	var gatewayErr *Error
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, CodeAuth, gatewayErr.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComplete_ShapeErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"unexpected":"payload"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Complete(context.Background(), userMessage("hi"), Options{})

	var gatewayErr *Error
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, CodeShape, gatewayErr.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComplete_ValidationFastFail(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	client := testClient(srv.URL)

	tests := []struct {
		name     string
		messages []Message
	}{
		{name: "empty messages", messages: nil},
		{name: "invalid role", messages: []Message{{Role: "tool", Content: "x"}}},
		{name: "empty content", messages: []Message{{Role: "user", Content: ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Complete(context.Background(), tt.messages, Options{})
			var gatewayErr *Error
			assert.ErrorAs(t, err, &gatewayErr)
			assert.Equal(t, CodeInvalidRequest, gatewayErr.Code)
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "validation failures must not hit the network")
}

func TestExtractText_ShapePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		decoded map[string]any
		want    string
	}{
		{
			name: "result wrapper wins over choices",
			decoded: map[string]any{
				"result":  map[string]any{"message": map[string]any{"content": "from result"}},
				"choices": []any{map[string]any{"message": map[string]any{"content": "from choices"}}},
			},
			want: "from result",
		},
		{
			name: "choices wins over bare message",
			decoded: map[string]any{
				"choices": []any{map[string]any{"message": map[string]any{"content": "from choices"}}},
				"message": map[string]any{"content": "from message"},
			},
			want: "from choices",
		},
		{
			name:    "bare message",
			decoded: map[string]any{"message": map[string]any{"content": "from message"}},
			want:    "from message",
		},
		{
			name:    "response field",
			decoded: map[string]any{"response": "from response"},
			want:    "from response",
		},
		{
			name:    "content field",
			decoded: map[string]any{"content": "from content"},
			want:    "from content",
		},
		{
			name:    "nothing matches",
			decoded: map[string]any{"data": "nope"},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractText(tt.decoded))
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon"))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-1"))
}
