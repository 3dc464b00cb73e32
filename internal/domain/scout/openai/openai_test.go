package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugout-server-go/internal/domain/roster"
	"dugout-server-go/internal/domain/scout"
)

func testPlayer() roster.Player {
	return roster.Player{
		Name:     "Babe Ruth",
		Position: "RF",
		Games:    2503,
		AtBats:   8399,
		Hits:     2873,
		HomeRuns: 714,
		RBI:      2214,
		AVG:      0.342,
		OBP:      0.474,
		SLG:      0.690,
		OPS:      1.164,
	}
}

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		})
	}))
}

func newTestProvider(t *testing.T, baseURL string) scout.Provider {
	t.Helper()
	provider, err := scout.Create("openai", &scout.Config{
		APIKey:    "test-key",
		BaseURL:   baseURL + "/v1",
		ModelName: "gpt-4o-mini",
	})
	require.NoError(t, err)
	return provider
}

func TestDescribeUsesCompletion(t *testing.T) {
	server := completionServer(t, http.StatusOK, "The Sultan of Swat rewrote the record book.")
	defer server.Close()

	provider := newTestProvider(t, server.URL)
	text, err := provider.Describe(context.Background(), testPlayer())
	require.NoError(t, err)
	assert.Equal(t, "The Sultan of Swat rewrote the record book.", text)
}

func TestDescribeFallsBackOnUpstreamError(t *testing.T) {
	server := completionServer(t, http.StatusBadGateway, "")
	defer server.Close()

	provider := newTestProvider(t, server.URL)
	text, err := provider.Describe(context.Background(), testPlayer())
	require.NoError(t, err)
	assert.Equal(t, scout.FallbackDescription(testPlayer()), text)
}

func TestDescribeFallsBackOnEmptyCompletion(t *testing.T) {
	server := completionServer(t, http.StatusOK, "")
	defer server.Close()

	provider := newTestProvider(t, server.URL)
	text, err := provider.Describe(context.Background(), testPlayer())
	require.NoError(t, err)
	assert.Equal(t, scout.FallbackDescription(testPlayer()), text)
}

func TestNewProviderRequiresAPIKey(t *testing.T) {
	_, err := scout.Create("openai", &scout.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing OpenAI API key")
}
