package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the narrow remote boundary of the sync engine: one paged
// fetch and one batch upsert. Both are assumed pre-authenticated by the
// networking collaborator and fail closed.
type ClientAPI interface {
	// Fetch requests remote records with (updated_at, id) past the
	// cursor, ascending, at most pageSize of them
	Fetch(ctx context.Context, userID, resource string, since models.Cursor, pageSize int) (*api.FetchResponse, error)

	// Upsert sends a batch of dirty records; all-or-nothing on the server
	Upsert(ctx context.Context, userID, resource string, records []api.SyncRecord) (*api.UpsertResponse, error)
}

// Client is the HTTP implementation of ClientAPI
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch requests one page of the remote change stream
func (c *Client) Fetch(ctx context.Context, userID, resource string, since models.Cursor, pageSize int) (*api.FetchResponse, error) {
	query := url.Values{}
	if !since.IsZero() {
		query.Set("since_ts", since.LastSyncedAt.UTC().Format(time.RFC3339Nano))
		query.Set("since_id", since.LastID)
	}
	query.Set("limit", strconv.Itoa(pageSize))

	path := fmt.Sprintf("/api/v1/sync/%s?%s", resource, query.Encode())

	var resp api.FetchResponse
	if err := c.doRequest(ctx, http.MethodGet, path, userID, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}
	return &resp, nil
}

// Upsert sends a batch of records for the owner
func (c *Client) Upsert(ctx context.Context, userID, resource string, records []api.SyncRecord) (*api.UpsertResponse, error) {
	req := api.UpsertRequest{Records: records}

	var resp api.UpsertResponse
	path := fmt.Sprintf("/api/v1/sync/%s", resource)
	if err := c.doRequest(ctx, http.MethodPost, path, userID, req, &resp); err != nil {
		return nil, fmt.Errorf("upsert request failed: %w", err)
	}
	return &resp, nil
}

// doRequest performs an HTTP request against the sync server
func (c *Client) doRequest(ctx context.Context, method, path, userID string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Identity is injected by the out-of-scope auth layer in production;
	// the header is its stand-in.
	req.Header.Set("X-User-ID", userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

var _ ClientAPI = (*Client)(nil)
