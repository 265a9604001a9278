package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxResponseBytes = 4 << 20 // 4MB

// Category-specific fallback thumbnails, used when an upstream response carries
// no usable image.
const (
	defaultBlogThumbnail       = "default-blog-thumbnail.jpg"
	defaultVideoThumbnail      = "default-video-thumbnail.jpg"
	defaultJobThumbnail        = "default-job-thumbnail.jpg"
	defaultInternshipThumbnail = "default-internship-thumbnail.jpg"
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// getJSON issues a GET and decodes the JSON body into v.
func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshal body: %w", err)
	}
	return nil
}
