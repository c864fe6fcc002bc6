package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Uploader pushes a locally held file to a remote asset host and returns
// the URL under which the host serves it.
type Uploader interface {
	Upload(name string, file io.Reader, folder string) (string, error)
}

// Config holds remote asset host connection details.
type Config struct {
	// URL is the host's unsigned upload endpoint.
	URL string
}

// HTTPUploader is an Uploader that posts multipart uploads to an asset
// host's upload endpoint and reads the secure URL from its JSON reply.
type HTTPUploader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPUploader creates a new HTTPUploader for the given endpoint.
func NewHTTPUploader(cfg Config) *HTTPUploader {
	return &HTTPUploader{
		endpoint: cfg.URL,
		client:   http.DefaultClient,
	}
}

// Upload sends the file to the asset host under the given logical folder
// and returns the secure URL assigned by the host.
func (u *HTTPUploader) Upload(name string, file io.Reader, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read file for upload: %w", err)
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("asset host upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("asset host upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode asset host response: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("asset host response contained no secure_url")
	}
	return result.SecureURL, nil
}
