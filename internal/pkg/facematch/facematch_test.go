package facematch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
)

func matchServer(t *testing.T, response matchResponse) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/match", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req matchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.UserID)
		assert.NotEmpty(t, req.ImageURL)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
}

func testConfig(baseURL string) config.FaceMatchConfig {
	return config.FaceMatchConfig{
		BaseURL:       baseURL,
		APIKey:        "test-key",
		Timeout:       time.Second,
		MinConfidence: 0.85,
	}
}

func TestMatch_Success(t *testing.T) {
	srv := matchServer(t, matchResponse{Match: true, Confidence: 0.97})
	defer srv.Close()

	matcher := NewMatcher(testConfig(srv.URL))
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckSuccess, check.Status)
	if assert.NotNil(t, check.Confidence) {
		assert.InDelta(t, 0.97, *check.Confidence, 0.001)
	}
}

func TestMatch_LowConfidenceFails(t *testing.T) {
	srv := matchServer(t, matchResponse{Match: true, Confidence: 0.60})
	defer srv.Close()

	matcher := NewMatcher(testConfig(srv.URL))
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckFailed, check.Status)
}

func TestMatch_NoMatchFails(t *testing.T) {
	srv := matchServer(t, matchResponse{Match: false, Confidence: 0.95})
	defer srv.Close()

	matcher := NewMatcher(testConfig(srv.URL))
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckFailed, check.Status)
}

func TestMatch_ServerErrorIsPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	matcher := NewMatcher(testConfig(srv.URL))
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckPending, check.Status)
	assert.NotNil(t, check.ImageURL)
}

func TestMatch_UnreachableIsPending(t *testing.T) {
	matcher := NewMatcher(testConfig("http://127.0.0.1:1"))
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckPending, check.Status)
}

func TestMatch_NoImageSkips(t *testing.T) {
	srv := matchServer(t, matchResponse{Match: true, Confidence: 0.99})
	defer srv.Close()

	matcher := NewMatcher(testConfig(srv.URL))
	check := matcher.Match(context.Background(), "user-1", "")

	assert.Equal(t, timerecord.CheckSkipped, check.Status)
}

func TestMatch_DisabledAlwaysSkips(t *testing.T) {
	matcher := NewMatcher(config.FaceMatchConfig{})
	check := matcher.Match(context.Background(), "user-1", "https://cdn.example.com/face.jpg")

	assert.Equal(t, timerecord.CheckSkipped, check.Status)
}
