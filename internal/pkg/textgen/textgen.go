package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
)

// Generator produces a professional pt-BR justification text from an
// employee's informal description of a time record adjustment.
type Generator interface {
	GenerateJustification(ctx context.Context, userInput string, recordType string, date time.Time) (text string, generated bool)
}

type geminiGenerator struct {
	cfg    config.TextGenConfig
	client *http.Client
}

// NewGenerator creates a generator backed by the Gemini generateContent
// API. Without an API key every call falls back to the canned templates.
func NewGenerator(cfg config.TextGenConfig) Generator {
	return &geminiGenerator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateJustification returns the generated text and whether it came
// from the model. On any collaborator failure the deterministic fallback
// for the record type is returned with generated=false.
func (g *geminiGenerator) GenerateJustification(ctx context.Context, userInput string, recordType string, date time.Time) (string, bool) {
	if g.cfg.APIKey == "" {
		return FallbackJustification(recordType, date), false
	}

	prompt := buildPrompt(userInput, recordType, date)

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return FallbackJustification(recordType, date), false
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.Model, g.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return FallbackJustification(recordType, date), false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Warn("Text generation service unreachable", "error", err)
		return FallbackJustification(recordType, date), false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Text generation service returned non-OK status", "status", resp.StatusCode)
		return FallbackJustification(recordType, date), false
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("Text generation response decode failed", "error", err)
		return FallbackJustification(recordType, date), false
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return FallbackJustification(recordType, date), false
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return FallbackJustification(recordType, date), false
	}
	return text, true
}

func buildPrompt(userInput string, recordType string, date time.Time) string {
	return fmt.Sprintf(`Você é um assistente especializado em gerar justificativas profissionais para solicitações de ajuste de ponto em empresas.

Contexto:
- Tipo de registro: %s
- Data: %s
- Descrição informal do colaborador: "%s"

Instruções:
1. Transforme a descrição informal em uma justificativa profissional e respeitosa
2. Use linguagem corporativa adequada
3. Seja conciso mas completo
4. Inclua pedido de compreensão ao final
5. Mantenha tom formal mas não excessivamente rebuscado
6. Máximo de 200 palavras

Gere apenas a justificativa, sem explicações adicionais:`,
		recordType, date.Format("02/01/2006"), userInput)
}

// FallbackJustification is the deterministic pt-BR template used when the
// external generator is unavailable. Unknown types use the clock-in text.
func FallbackJustification(recordType string, date time.Time) string {
	d := date.Format("02/01/2006")
	switch recordType {
	case "saida":
		return fmt.Sprintf("Prezado(a) gestor(a), solicito respeitosamente o ajuste do registro de saída do dia %s, pois inadvertidamente esqueci de realizar a marcação ao final do expediente. Agradeço a compreensão.", d)
	case "pausa":
		return fmt.Sprintf("Prezado(a) gestor(a), solicito respeitosamente o ajuste do registro de pausa do dia %s, devido a uma situação que impossibilitou a marcação no momento adequado. Agradeço a compreensão.", d)
	case "retorno":
		return fmt.Sprintf("Prezado(a) gestor(a), solicito respeitosamente o ajuste do registro de retorno do dia %s, pois houve um imprevisto que afetou a marcação no horário correto. Agradeço a compreensão.", d)
	default:
		return fmt.Sprintf("Prezado(a) gestor(a), solicito respeitosamente o ajuste do registro de entrada do dia %s, devido a uma situação imprevista que impediu a marcação no horário correto. Agradeço a compreensão.", d)
	}
}
