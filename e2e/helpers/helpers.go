package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MichalMitros/review-checker/internal/extractor/testdata"
	"github.com/MichalMitros/review-checker/pkg/v1/reports"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// PrepareMarketplaceServer is helper function for mocking marketplace serving product and reviews pages.
// Every page is returned with provided status code.
func PrepareMarketplaceServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "text/html; charset=utf-8")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write([]byte(pageFor(req.URL.Path)))
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv
}

// PrepareFirecrawlServer is helper function for mocking Firecrawl scrape API.
// Pages are returned only when statusCode is 200.
func PrepareFirecrawlServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			wrt.WriteHeader(http.StatusBadRequest)
			return
		}

		wrt.Header().Add(contentType, "application/json")
		wrt.WriteHeader(statusCode)
		if statusCode != http.StatusOK {
			_, _ = wrt.Write([]byte(`{"success":false,"error":"scrape failed"}`))
			return
		}

		_ = json.NewEncoder(wrt).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"html": pageFor(body.URL)},
		})
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv
}

// LLMServer is mocked OpenAI compatible chat completions API.
type LLMServer struct {
	*httptest.Server

	mu      sync.Mutex
	prompts []string
}

// Prompts returns prompts received by server.
func (s *LLMServer) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.prompts...)
}

// PrepareLLMServer is helper function for mocking chat completions API answering every request with reply.
func PrepareLLMServer(t *testing.T, reply string) *LLMServer {
	t.Helper()

	llm := &LLMServer{}
	llm.Server = httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		if !strings.HasSuffix(req.URL.Path, "/chat/completions") {
			wrt.WriteHeader(http.StatusNotFound)
			return
		}

		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || len(body.Messages) == 0 {
			wrt.WriteHeader(http.StatusBadRequest)
			return
		}

		llm.mu.Lock()
		llm.prompts = append(llm.prompts, body.Messages[0].Content)
		llm.mu.Unlock()

		wrt.Header().Add(contentType, "application/json")
		_ = json.NewEncoder(wrt).Encode(map[string]any{
			"id":      "chatcmpl-e2e",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gemini-1.5-flash-latest",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": reply},
			}},
		})
	}))

	t.Cleanup(func() {
		llm.Close()
	})

	return llm
}

// PostForm is helper function for posting form with single field, returns response status and body.
func PostForm(t *testing.T, url, field, value string) (int, []byte) {
	t.Helper()

	resp, err := http.PostForm(url, map[string][]string{field: {value}})
	if err != nil {
		require.FailNow(t, "can't post form", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		require.FailNow(t, "can't read response body", err)
	}

	return resp.StatusCode, body
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// WaitForReportEvent is blocking helper function, returns first report event published to queue.
func WaitForReportEvent(t *testing.T, channel *amqp.Channel, queueName string, timeout time.Duration) reports.ReportEvent {
	t.Helper()

	deadline := time.After(timeout)
	for {
		msg, ok, err := channel.Get(queueName, true)
		if err != nil {
			require.FailNow(t, "can't get message", queueName, err)
		}

		if ok {
			var event reports.ReportEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				require.FailNow(t, "can't unmarshal report event", err)
			}
			return event
		}

		select {
		case <-deadline:
			require.FailNow(t, "report event not published", queueName)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func pageFor(url string) string {
	if strings.Contains(url, "/product-reviews/") {
		return testdata.ReviewsPage
	}
	return testdata.ProductPage
}

// LogBuffer is logs buffer safe for concurrent writing and reading.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to buffer.
func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// String returns buffered logs.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
