package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformerrors "dugout-server-go/internal/platform/errors"
)

const upstreamPayload = `[
  {
    "Player name": "Babe Ruth",
    "position": "RF",
    "Games": 2503,
    "At-bat": 8399,
    "Runs": 2174,
    "Hits": 2873,
    "Double (2B)": 506,
    "third baseman": 136,
    "home run": 714,
    "run batted in": 2214,
    "a walk": 2062,
    "Strikeouts": 1330,
    "stolen base": 123,
    "Caught stealing": 117,
    "AVG": 0.342,
    "On-base Percentage": 0.474,
    "Slugging Percentage": 0.69,
    "On-base Plus Slugging": 1.164
  }
]`

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamPayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	players, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 1)

	p := players[0]
	assert.Equal(t, "Babe Ruth", p.Name)
	assert.Equal(t, "RF", p.Position)
	assert.Equal(t, 714, p.HomeRuns)
	assert.Equal(t, 2214, p.RBI)
	assert.Equal(t, 136, p.Triples)
	assert.Equal(t, 2062, p.Walks)
	assert.InDelta(t, 0.342, p.AVG, 0.0001)
	assert.InDelta(t, 1.164, p.OPS, 0.0001)
}

func TestClient_FetchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, platformerrors.HasKind(err, platformerrors.KindUpstream))
}

func TestClient_FetchBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestClient_FetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Fetch(ctx)
	assert.Error(t, err)
}
