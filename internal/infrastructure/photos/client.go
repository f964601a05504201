package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MediaItem is one entry from the managed photo library.
type MediaItem struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	BaseURL      string `json:"baseUrl"`
	MimeType     string `json:"mimeType"`
	CreationTime string `json:"creationTime"`
	Width        string `json:"width"`
	Height       string `json:"height"`
}

type Album struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

const (
	albumPageSize  = 100
	recentPageSize = 50
)

// Client talks to the managed photo library REST API with a caller-supplied
// bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchAlbum returns up to 100 media items belonging to the album.
func (c *Client) SearchAlbum(ctx context.Context, accessToken, albumID string) ([]MediaItem, error) {
	body, err := json.Marshal(map[string]interface{}{
		"albumId":  albumID,
		"pageSize": albumPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mediaItems:search", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result struct {
		MediaItems []MediaItem `json:"mediaItems"`
	}
	if err := c.do(req, accessToken, &result); err != nil {
		return nil, err
	}
	return result.MediaItems, nil
}

// ListRecent returns the 50 most recent media items across the library,
// used as the fallback when no album is configured.
func (c *Client) ListRecent(ctx context.Context, accessToken string) ([]MediaItem, error) {
	url := fmt.Sprintf("%s/mediaItems?pageSize=%d", c.baseURL, recentPageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	var result struct {
		MediaItems []MediaItem `json:"mediaItems"`
	}
	if err := c.do(req, accessToken, &result); err != nil {
		return nil, err
	}
	return result.MediaItems, nil
}

// ListAlbums lists the library's albums, used by the admin connect screen.
func (c *Client) ListAlbums(ctx context.Context, accessToken string) ([]Album, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/albums", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	var result struct {
		Albums []Album `json:"albums"`
	}
	if err := c.do(req, accessToken, &result); err != nil {
		return nil, err
	}
	return result.Albums, nil
}

func (c *Client) do(req *http.Request, accessToken string, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("photo library request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("photo library returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}
	return nil
}

// SizedURL parameterizes a media item base URL with a resize variant.
func SizedURL(baseURL string, width, height int) string {
	return fmt.Sprintf("%s=w%d-h%d", baseURL, width, height)
}
