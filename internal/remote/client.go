package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mquinn/rpsduel-go/internal/model"
)

// History limit bounds accepted by the remote service
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 20
)

// Client is an HTTP client for the remote opponent service. It wraps
// the three operations the service exposes: submit a move, fetch
// recent history, and fetch aggregate stats. No retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client against the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type playRequest struct {
	PlayerID   model.PlayerID `json:"playerId"`
	PlayerName string         `json:"playerName"`
	Choice     model.Choice   `json:"choice"`
}

type playResponse struct {
	Success      bool             `json:"success"`
	PlayerChoice model.Choice     `json:"playerChoice"`
	AIChoice     model.Choice     `json:"aiChoice"`
	Result       model.Result     `json:"result"`
	Record       model.GameRecord `json:"record"`
}

type historyResponse struct {
	Games []model.GameRecord `json:"games"`
}

type statsResponse struct {
	Stats model.PlayerStats `json:"stats"`
}

// Play submits a move for the given player. The result is decided by
// the service; any non-success HTTP status or transport error is
// reported as model.ErrRequestFailed.
func (c *Client) Play(ctx context.Context, id model.PlayerID, name string, choice model.Choice) (*model.PlayOutcome, error) {
	req := playRequest{
		PlayerID:   id,
		PlayerName: name,
		Choice:     choice,
	}

	var resp playResponse
	if err := c.do(ctx, http.MethodPost, "/api/rps/play", req, &resp); err != nil {
		return nil, err
	}

	return &model.PlayOutcome{
		PlayerChoice: resp.PlayerChoice,
		AIChoice:     resp.AIChoice,
		Result:       resp.Result,
		Record:       resp.Record,
	}, nil
}

// History fetches recent records, most recent first. A limit outside
// the service's accepted range is clamped. An empty id fetches the
// shared history across all players.
func (c *Client) History(ctx context.Context, id model.PlayerID, limit int) ([]model.GameRecord, error) {
	if limit < DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if id != "" {
		query.Set("playerId", string(id))
	}

	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "/api/rps/history?"+query.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	if resp.Games == nil {
		return []model.GameRecord{}, nil
	}
	return resp.Games, nil
}

// Stats fetches the aggregate counters for the given player
func (c *Client) Stats(ctx context.Context, id model.PlayerID) (model.PlayerStats, error) {
	path := "/api/rps/stats/" + url.PathEscape(string(id))

	var resp statsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return model.PlayerStats{}, err
	}
	return resp.Stats, nil
}

// do performs an HTTP request against the service
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", model.ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", model.ErrRequestFailed, resp.StatusCode)
	}

	// The response body is trusted as-is; no schema validation
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
