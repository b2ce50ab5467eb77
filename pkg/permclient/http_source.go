package permclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const snapshotPath = "/api/v1/me/permissions"

// TokenProvider supplies the bearer token for each request. Implementations
// typically return the current access token and handle refresh themselves.
type TokenProvider func() string

// HTTPSource fetches snapshots from the permission snapshot endpoint.
type HTTPSource struct {
	baseURL string
	token   TokenProvider
	client  *http.Client
}

// NewHTTPSource creates a Source backed by the API at baseURL. The URL
// carries no trailing slash, e.g. "https://api.clubhub.example.com".
func NewHTTPSource(baseURL string, token TokenProvider) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// envelope mirrors the API's standard response format.
type envelope struct {
	Success bool      `json:"success"`
	Data    *Snapshot `json:"data"`
	Error   string    `json:"error"`
}

// Fetch retrieves the snapshot for the token's user.
func (s *HTTPSource) Fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+snapshotPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding permission snapshot: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if body.Error != "" {
			return nil, fmt.Errorf("fetching permission snapshot: %s", body.Error)
		}
		return nil, fmt.Errorf("fetching permission snapshot: status %d", resp.StatusCode)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("fetching permission snapshot: empty response")
	}

	return body.Data, nil
}
