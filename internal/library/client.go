package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"curator/internal/logging"
	"curator/internal/services"
)

const (
	userAgent             = "Curator-Go/0.1.0"
	defaultTimeoutSeconds = 30
	movieType             = "1"
	collectionType        = "18"
)

// Item is a read-only view of one library movie.
type Item struct {
	RatingKey string
	Title     string
	Summary   string
	Genres    []string
}

// Config carries the settings required to reach the library server.
type Config struct {
	URL            string
	Token          string
	Section        string
	TimeoutSeconds int
}

// Client talks to the library server over its HTTP API. The section key and
// server machine identifier are resolved once and cached for the client's
// lifetime.
type Client struct {
	baseURL    string
	token      string
	section    string
	httpClient *http.Client
	logger     *slog.Logger

	mu         sync.Mutex
	sectionKey string
	machineID  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient creates a library client.
func NewClient(cfg Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if baseURL == "" {
		return nil, errors.New("library url required")
	}
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("library token required")
	}
	section := strings.TrimSpace(cfg.Section)
	if section == "" {
		return nil, errors.New("library section required")
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		section:    section,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger:     logging.NewComponentLogger(logger, "library"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Section returns the configured section title.
func (c *Client) Section() string {
	return c.section
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parse library url: %w", err)
	}
	if params != nil {
		endpoint.RawQuery = params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build library request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.WrapNetwork("library", method+" "+path, "", err)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, params)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("library %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

type sectionsPayload struct {
	MediaContainer struct {
		Directory []struct {
			Key   string `json:"key"`
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"Directory"`
	} `json:"MediaContainer"`
}

type metadataPayload struct {
	MediaContainer struct {
		Metadata []metadataEntry `json:"Metadata"`
	} `json:"MediaContainer"`
}

type metadataEntry struct {
	RatingKey string     `json:"ratingKey"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Genre     []tagEntry `json:"Genre"`
}

type tagEntry struct {
	Tag string `json:"tag"`
}

type identityPayload struct {
	MediaContainer struct {
		MachineIdentifier string `json:"machineIdentifier"`
	} `json:"MediaContainer"`
}

func (e metadataEntry) item() Item {
	genres := make([]string, 0, len(e.Genre))
	for _, g := range e.Genre {
		if g.Tag != "" {
			genres = append(genres, g.Tag)
		}
	}
	return Item{
		RatingKey: e.RatingKey,
		Title:     e.Title,
		Summary:   e.Summary,
		Genres:    genres,
	}
}

// resolveSectionKey finds the configured section's key, caching it.
func (c *Client) resolveSectionKey(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sectionKey != "" {
		return c.sectionKey, nil
	}

	var payload sectionsPayload
	if err := c.getJSON(ctx, "/library/sections", nil, &payload); err != nil {
		return "", err
	}
	for _, dir := range payload.MediaContainer.Directory {
		if dir.Key == "" || dir.Title == "" {
			continue
		}
		if strings.EqualFold(dir.Title, c.section) {
			c.sectionKey = dir.Key
			return c.sectionKey, nil
		}
	}
	return "", fmt.Errorf("library section %q not found", c.section)
}

// machineIdentifier fetches the server identity once and caches it.
func (c *Client) machineIdentifier(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.machineID != "" {
		return c.machineID, nil
	}

	var payload identityPayload
	if err := c.getJSON(ctx, "/identity", nil, &payload); err != nil {
		return "", err
	}
	if payload.MediaContainer.MachineIdentifier == "" {
		return "", errors.New("library identity response missing machine identifier")
	}
	c.machineID = payload.MediaContainer.MachineIdentifier
	return c.machineID, nil
}

// ListMovies returns every movie in the configured section, in library
// enumeration order.
func (c *Client) ListMovies(ctx context.Context) ([]Item, error) {
	key, err := c.resolveSectionKey(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("type", movieType)
	var payload metadataPayload
	if err := c.getJSON(ctx, "/library/sections/"+key+"/all", params, &payload); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(payload.MediaContainer.Metadata))
	for _, entry := range payload.MediaContainer.Metadata {
		items = append(items, entry.item())
	}
	c.logger.Debug("loaded library movies", logging.Int("count", len(items)))
	return items, nil
}

// Ping verifies the server is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	var payload identityPayload
	return c.getJSON(ctx, "/identity", nil, &payload)
}
