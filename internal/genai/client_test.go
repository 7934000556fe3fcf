// internal/genai/client_test.go
package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
)

// ==========================================
// Test Helpers
// ==========================================

func newTestClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	return NewHTTPClient(config.GenAIConfig{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		PrimaryModel: "gpt-4o",
	}, logger.NewTestLogger(t))
}

func completionResponse(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
	out, _ := json.Marshal(payload)
	return string(out)
}

// ==========================================
// Complete Tests
// ==========================================

func TestComplete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o", body["model"])
		assert.Len(t, body["messages"], 2)

		w.Write([]byte(completionResponse(`{"name":"Plan"}`)))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	out, err := client.Complete(context.Background(), Request{
		Model:       "gpt-4o",
		System:      "You are a fitness coach.",
		User:        "Build a plan.",
		Temperature: 0.7,
		MaxTokens:   4096,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Plan"}`, out)
}

func TestComplete_Failures(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expectedCode errors.ErrorCode
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedCode: errors.ErrCodeLLMRequestFailed,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			expectedCode: errors.ErrCodeLLMRequestFailed,
		},
		{
			name: "empty completion",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(completionResponse("   ")))
			},
			expectedCode: errors.ErrCodeEmptyCompletion,
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
			expectedCode: errors.ErrCodeEmptyCompletion,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			expectedCode: errors.ErrCodeLLMRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := newTestClient(t, srv.URL)
			_, err := client.Complete(context.Background(), Request{Model: "gpt-4o", Attempt: 1})

			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
		})
	}
}

func TestComplete_ContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(completionResponse("late")))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, Request{Model: "gpt-4o", Attempt: 2})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeLLMTimeout, errors.CodeOf(err))
}

func TestComplete_AttemptCarriedInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Complete(context.Background(), Request{Model: "gpt-4o", Attempt: 3})

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Contains(t, stdErr.Details, "attempt: 3")
}
