// internal/genai/client.go

// Package genai wraps the external chat-completions service. The
// client makes exactly one attempt per call; retry policy lives with
// the orchestrator, which degrades model and prompt between attempts.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fitplan-engine/internal/common/config"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
)

// Request is one completion attempt. Attempt is carried through so
// failures classify with the attempt number that produced them.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
	Attempt     int
}

// Client produces one completion per call.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// HTTPClient talks to a chat-completions endpoint.
type HTTPClient struct {
	cfg    config.GenAIConfig
	client *http.Client
	log    logger.Logger
}

func NewHTTPClient(cfg config.GenAIConfig, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		cfg: cfg,
		client: &http.Client{
			// No client timeout, the per-attempt context bounds the call.
		},
		log: log.WithFields(map[string]interface{}{"component": "genai"}),
	}
}

func (c *HTTPClient) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model: req.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	body.ResponseFormat.Type = "json_object"

	payload, _ := json.Marshal(body)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.NewLLMRequestFailedError(req.Attempt, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.NewLLMTimeoutError(req.Attempt)
		}
		return "", errors.NewLLMRequestFailedError(req.Attempt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("completion request rejected", map[string]interface{}{
			"status":  resp.StatusCode,
			"model":   req.Model,
			"attempt": req.Attempt,
		})
		return "", errors.NewLLMRequestFailedError(req.Attempt, fmt.Errorf("status %d", resp.StatusCode))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.NewLLMRequestFailedError(req.Attempt, fmt.Errorf("decode error: %w", err))
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", errors.NewEmptyCompletionError(req.Attempt)
	}

	c.log.Debug("completion received", map[string]interface{}{
		"model":   req.Model,
		"attempt": req.Attempt,
		"length":  len(parsed.Choices[0].Message.Content),
	})
	return parsed.Choices[0].Message.Content, nil
}
