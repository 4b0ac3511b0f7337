// Package openai implements the llm.Client boundary over the OpenAI
// chat/completions API, text-only or with an embedded image for the vision
// path.
package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/llm"
)

// Complete implements llm.Client. It performs exactly one attempt; retrying
// across strategies is the orchestrator's concern and retrying transient
// failures is the caller's.
func (c *Client) Complete(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.complete.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(req.User),
		"has_image", len(req.ImagePNG) > 0,
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": req.System},
			{"role": "user", "content": userContent(req)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.complete.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.complete.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.complete.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in openai response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	c.log.Info("llm.complete.ok",
		"req_id", rid,
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return json.RawMessage(content), nil
}

// userContent builds the user message: a plain string for text calls, content
// parts with an inline data URL for vision calls.
func userContent(req llm.Request) any {
	if len(req.ImagePNG) == 0 {
		return req.User
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(req.ImagePNG)
	return []map[string]any{
		{"type": "text", "text": req.User},
		{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
	}
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, categorize(resp.StatusCode, raw)
	}
	return raw, nil
}

// categorize maps API failures onto the error taxonomy the caller
// distinguishes: authentication, rate limit, and quota are surfaced as
// sentinel categories with the provider's message as cause.
func categorize(status int, body []byte) error {
	msg := apiErrorMessage(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return common.NewAppError("OPENAI_AUTH", msg, common.ErrAuthentication)
	case status == http.StatusTooManyRequests && strings.Contains(strings.ToLower(msg), "quota"):
		return common.NewAppError("OPENAI_QUOTA", msg, common.ErrQuotaExceeded)
	case status == http.StatusTooManyRequests:
		return common.NewAppError("OPENAI_RATE_LIMIT", msg, common.ErrRateLimited)
	default:
		return fmt.Errorf("openai status %d: %s", status, msg)
	}
}

func apiErrorMessage(body []byte) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return string(body)
}
