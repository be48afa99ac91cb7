package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/utils"
)

// suggestRequest is the wire shape the text-generation service accepts.
type suggestRequest struct {
	Prompt string `json:"prompt"`
}

// suggestResponse is the wire shape the text-generation service returns.
type suggestResponse struct {
	Text string `json:"text"`
}

type httpSuggestAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSuggestAdapter constructs an HTTP implementation of
// [ObjectiveSuggester] over cfg.BaseURL. The API key, when present, is sent
// as a bearer token on every request.
//
// Returns [ErrNotConfigured] when cfg.BaseURL is empty, so the caller can
// decide at startup whether the suggestion endpoint is available at all.
func NewHTTPSuggestAdapter(cfg config.Suggest, logger *logger.Logger) (ObjectiveSuggester, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid suggestion service address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &httpSuggestAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SuggestObjective implements [ObjectiveSuggester]. It POSTs a prompt built
// from the theme to /v1/generate and returns the trimmed generated text.
// Any transport failure, non-2xx status or empty body is reported through
// the package error set.
func (h *httpSuggestAdapter) SuggestObjective(ctx context.Context, theme string) (string, error) {
	var out suggestResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(suggestRequest{Prompt: buildPrompt(theme)}).
		SetResult(&out).
		Post("/v1/generate")
	if err != nil {
		h.logger.Err(err).Str("func", "SuggestObjective").Msg("suggestion request failed")
		return "", fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("func", "SuggestObjective").Int("status", resp.StatusCode()).Msg("suggestion request rejected")
		return "", err
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUpstream)
	}

	return text, nil
}

func buildPrompt(theme string) string {
	return "Escreva um objetivo curto e claro para uma ação pastoral sobre o tema: " + strings.TrimSpace(theme)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
	}
}
