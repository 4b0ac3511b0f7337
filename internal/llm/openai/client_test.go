package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/llm"
)

func newStubServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: baseURL}, nil)
}

func TestCompleteReturnsChoiceContent(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{
		"choices": [{"message": {"content": " {\"grand_total\": 75} "}}]
	}`)

	raw, err := newTestClient(srv.URL).Complete(context.Background(), llm.Request{
		System: "s", User: "u",
	})
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{"grand_total": 75}`), raw)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, `{"choices": []}`)

	_, err := newTestClient(srv.URL).Complete(context.Background(), llm.Request{User: "u"})
	assert.Error(t, err)
}

func TestCompleteAuthError(t *testing.T) {
	srv := newStubServer(t, http.StatusUnauthorized,
		`{"error": {"message": "Incorrect API key provided"}}`)

	_, err := newTestClient(srv.URL).Complete(context.Background(), llm.Request{User: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAuthentication)
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestCompleteRateLimitVsQuota(t *testing.T) {
	srv := newStubServer(t, http.StatusTooManyRequests,
		`{"error": {"message": "Rate limit reached for requests"}}`)
	_, err := newTestClient(srv.URL).Complete(context.Background(), llm.Request{User: "u"})
	assert.ErrorIs(t, err, common.ErrRateLimited)

	srv = newStubServer(t, http.StatusTooManyRequests,
		`{"error": {"message": "You exceeded your current quota"}}`)
	_, err = newTestClient(srv.URL).Complete(context.Background(), llm.Request{User: "u"})
	assert.ErrorIs(t, err, common.ErrQuotaExceeded)
}

func TestCompleteOtherStatusIsPlainError(t *testing.T) {
	srv := newStubServer(t, http.StatusInternalServerError, `{"error": {"message": "boom"}}`)

	_, err := newTestClient(srv.URL).Complete(context.Background(), llm.Request{User: "u"})
	require.Error(t, err)
	assert.False(t, common.IsInferenceError(err))
}
