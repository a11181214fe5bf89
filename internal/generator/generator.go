package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"promptGallery/internal/config"
)

// Client calls the external image generator. The generator renders the
// prompt passed as a query parameter and replies with raw JPEG bytes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(cfg *config.Generator) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	const op = "generator.Generate"

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base URL: %w", op, err)
	}

	q := reqURL.Query()
	q.Set("prompt", prompt)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "image/jpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	// the body text is kept for diagnostics, it is never shown to end users
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status code: %d, body: %s", op, resp.StatusCode, string(body))
	}

	return body, nil
}
