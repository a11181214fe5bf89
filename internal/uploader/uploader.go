package uploader

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"promptGallery/internal/config"
)

// Client uploads image bytes to a Cloudinary-compatible storage endpoint
// under a fixed logical folder and returns the public URL of the asset.
type Client struct {
	httpClient *http.Client
	uploadURL  string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
}

func New(cfg *config.Storage) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		uploadURL: cfg.UploadURL,
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
	}
}

func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	const op = "uploader.Upload"

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return "", fmt.Errorf("%s: failed to create form file: %w", op, err)
	}
	if _, err = part.Write(data); err != nil {
		return "", fmt.Errorf("%s: failed to write image data: %w", op, err)
	}

	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"folder":    c.folder,
		"signature": c.sign(timestamp),
	}
	for name, value := range fields {
		if err = writer.WriteField(name, value); err != nil {
			return "", fmt.Errorf("%s: failed to write field %s: %w", op, name, err)
		}
	}

	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("%s: failed to close writer: %w", op, err)
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.uploadURL, c.cloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: failed to send request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%s: unexpected status code: %d, body: %s", op, resp.StatusCode, string(respBody))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("%s: response contains no secure_url", op)
	}

	return result.SecureURL, nil
}

// sign builds the request signature: SHA-1 over the alphabetically ordered
// signed parameters joined with the API secret, as the upload API expects.
func (c *Client) sign(timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", c.folder, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(toSign))

	return hex.EncodeToString(sum[:])
}
