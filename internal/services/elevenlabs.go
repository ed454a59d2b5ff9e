package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"job-application-api/internal/config"
	"job-application-api/internal/models"
)

const (
	defaultStability       = 0.5
	defaultSimilarityBoost = 0.7
)

// TTSService forwards text to the ElevenLabs speech API and returns the raw
// audio bytes. Voice parameters are passed through untouched; whatever the
// provider does with out-of-range values is surfaced to the caller.
type TTSService interface {
	Synthesize(ctx context.Context, req *models.TextToSpeechRequest) ([]byte, error)
}

type elevenLabsService struct {
	apiKey         string
	baseURL        string
	defaultVoiceID string
	modelID        string
	httpClient     *http.Client
}

func NewElevenLabsService(cfg config.ElevenLabsConfig, timeout time.Duration) TTSService {
	return &elevenLabsService{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		defaultVoiceID: cfg.VoiceID,
		modelID:        cfg.ModelID,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// Synthesize implements TTSService.
func (s *elevenLabsService) Synthesize(ctx context.Context, req *models.TextToSpeechRequest) ([]byte, error) {
	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = s.defaultVoiceID
	}

	settings := voiceSettings{
		Stability:       defaultStability,
		SimilarityBoost: defaultSimilarityBoost,
	}
	if req.Stability != nil {
		settings.Stability = *req.Stability
	}
	if req.SimilarityBoost != nil {
		settings.SimilarityBoost = *req.SimilarityBoost
	}

	body, err := json.Marshal(synthesizeRequest{
		Text:          req.Text,
		ModelID:       s.modelID,
		VoiceSettings: settings,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", s.baseURL, voiceID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("xi-api-key", s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(audio)}
	}

	return audio, nil
}
