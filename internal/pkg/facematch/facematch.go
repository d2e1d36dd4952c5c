package facematch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
)

// Matcher verifies that the captured face image belongs to the employee.
type Matcher interface {
	Match(ctx context.Context, userID string, imageURL string) timerecord.FaceCheck
}

type matchRequest struct {
	UserID   string `json:"user_id"`
	ImageURL string `json:"image_url"`
}

type matchResponse struct {
	Match      bool    `json:"match"`
	Confidence float64 `json:"confidence"`
}

type httpMatcher struct {
	cfg    config.FaceMatchConfig
	client *http.Client
}

// NewMatcher creates a face matcher backed by the configured external
// service. When no base URL is configured the matcher always skips.
func NewMatcher(cfg config.FaceMatchConfig) Matcher {
	if cfg.BaseURL == "" {
		return &disabledMatcher{}
	}
	return &httpMatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Match calls the external recognition service. Collaborator failures do
// not fail the check outright; they mark it pending so the record lands in
// review instead of being rejected.
func (m *httpMatcher) Match(ctx context.Context, userID string, imageURL string) timerecord.FaceCheck {
	if imageURL == "" {
		return timerecord.FaceCheck{Status: timerecord.CheckSkipped}
	}

	payload, err := json.Marshal(matchRequest{UserID: userID, ImageURL: imageURL})
	if err != nil {
		return timerecord.FaceCheck{Status: timerecord.CheckPending, ImageURL: &imageURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/v1/match", bytes.NewReader(payload))
	if err != nil {
		return timerecord.FaceCheck{Status: timerecord.CheckPending, ImageURL: &imageURL}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		slog.Warn("Face match service unreachable", "error", err)
		return timerecord.FaceCheck{Status: timerecord.CheckPending, ImageURL: &imageURL}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Face match service returned non-OK status", "status", resp.StatusCode)
		return timerecord.FaceCheck{Status: timerecord.CheckPending, ImageURL: &imageURL}
	}

	var result matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("Face match response decode failed", "error", fmt.Errorf("decode: %w", err))
		return timerecord.FaceCheck{Status: timerecord.CheckPending, ImageURL: &imageURL}
	}

	status := timerecord.CheckFailed
	if result.Match && result.Confidence >= m.cfg.MinConfidence {
		status = timerecord.CheckSuccess
	}

	return timerecord.FaceCheck{
		Status:     status,
		Confidence: &result.Confidence,
		ImageURL:   &imageURL,
	}
}

// disabledMatcher skips every check. Used when face recognition is not
// configured for the deployment.
type disabledMatcher struct{}

func (m *disabledMatcher) Match(ctx context.Context, userID string, imageURL string) timerecord.FaceCheck {
	check := timerecord.FaceCheck{Status: timerecord.CheckSkipped}
	if imageURL != "" {
		check.ImageURL = &imageURL
	}
	return check
}
