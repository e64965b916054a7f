// Package media talks to the external image-hosting provider. The provider is
// treated as an opaque upload sink: it stores the bytes and returns a public
// URL plus an opaque handle used for later deletion.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"
)

// UploadResult is the provider's answer to a successful upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Blurhash string `json:"blurhash,omitempty"`
}

// Host is the contract the avatar service depends on. Implementations talk to
// a real provider; tests inject fakes.
type Host interface {
	Upload(ctx context.Context, data []byte, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// Config holds the provider connection details.
type Config struct {
	BaseURL string // e.g. https://media.example.com
	APIKey  string
	Timeout time.Duration
}

// Client is an HTTP implementation of Host.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new media host client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Upload sends the image bytes to the provider as a multipart form and
// decodes the returned URL and public ID.
func (c *Client) Upload(ctx context.Context, data []byte, contentType string) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "upload")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.WriteField("content_type", contentType); err != nil {
		return nil, fmt.Errorf("failed to write content_type field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media host upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("media host upload returned status %d: %s", resp.StatusCode, respBody)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.URL == "" || result.PublicID == "" {
		return nil, fmt.Errorf("media host returned incomplete upload result")
	}
	return &result, nil
}

// Delete asks the provider to remove a previously uploaded image. Callers
// treat failures here as best-effort; the error is returned for logging only.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/images/"+publicID, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("media host delete failed: %w", err)
	}
	defer resp.Body.Close()

	// A 404 means the object is already gone, which is fine for our purposes.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("media host delete returned status %d", resp.StatusCode)
	}

	log.Printf("Deleted media object %s at host", publicID)
	return nil
}
