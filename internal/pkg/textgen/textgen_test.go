package textgen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestFallbackJustification(t *testing.T) {
	cases := []struct {
		recordType string
		fragment   string
	}{
		{"entrada", "registro de entrada do dia 10/03/2025"},
		{"saida", "registro de saída do dia 10/03/2025"},
		{"pausa", "registro de pausa do dia 10/03/2025"},
		{"retorno", "registro de retorno do dia 10/03/2025"},
		{"unknown", "registro de entrada do dia 10/03/2025"},
	}

	for _, c := range cases {
		t.Run(c.recordType, func(t *testing.T) {
			text := FallbackJustification(c.recordType, testDate)
			assert.Contains(t, text, c.fragment)
			assert.Contains(t, text, "Agradeço a compreensão")
		})
	}
}

func TestGenerateJustification_NoAPIKey(t *testing.T) {
	gen := NewGenerator(config.TextGenConfig{Timeout: time.Second})

	text, generated := gen.GenerateJustification(context.Background(), "esqueci de bater o ponto", "entrada", testDate)

	assert.False(t, generated)
	assert.Contains(t, text, "registro de entrada")
}

func TestGenerateJustification_ModelResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.Contains(r.URL.Path, ":generateContent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Justificativa gerada pelo modelo."}]}}]}`))
	}))
	defer srv.Close()

	gen := NewGenerator(config.TextGenConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gemini-pro",
		Timeout: time.Second,
	})

	text, generated := gen.GenerateJustification(context.Background(), "esqueci de bater o ponto", "saida", testDate)

	assert.True(t, generated)
	assert.Equal(t, "Justificativa gerada pelo modelo.", text)
}

func TestGenerateJustification_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := NewGenerator(config.TextGenConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gemini-pro",
		Timeout: time.Second,
	})

	text, generated := gen.GenerateJustification(context.Background(), "esqueci", "pausa", testDate)

	assert.False(t, generated)
	assert.Contains(t, text, "registro de pausa")
}

func TestGenerateJustification_EmptyCandidatesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	gen := NewGenerator(config.TextGenConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gemini-pro",
		Timeout: time.Second,
	})

	_, generated := gen.GenerateJustification(context.Background(), "esqueci", "retorno", testDate)

	assert.False(t, generated)
}
