// Package vision forwards camera images to an OpenAI-compatible
// chat-completions endpoint for seat-occupancy analysis.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedw/folio/ports"
)

const defaultPrompt = "Analyze this image and tell me if there are any occupied chairs. " +
	"If there are, describe their locations."

// Client calls a hosted vision model over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient creates a vision client. The API key is required configuration;
// refusing it here keeps the failure at startup instead of first use.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("vision API key is required")
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o"
	}
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze sends the base64-encoded JPEG to the vision model and returns its
// description of seat occupancy.
func (c *Client) Analyze(ctx context.Context, base64Image string) (string, error) {
	if base64Image == "" {
		return "", errors.New("empty image")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: defaultPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + base64Image}},
			},
		}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read vision response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "vision request failed"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		c.logger.Error().Int("status", resp.StatusCode).Str("error", msg).Msg("vision model error")
		return "", fmt.Errorf("vision model returned %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("vision response has no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// Ensure interface compliance.
var _ ports.ImageAnalyzer = (*Client)(nil)
