package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"thesaurusrex/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public Free Dictionary API
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// NotFoundMessage is the only lookup failure shown to users
const NotFoundMessage = "Couldn't Find The Word"

// maxBodySize caps the response body read from the API
const maxBodySize = 4 << 20

// ErrNotFound is returned for every failed lookup: unknown word, non-OK status,
// network failure, or an empty or malformed body.
var ErrNotFound = errors.New("word not found")

// Lookuper resolves a word to a dictionary entry
type Lookuper interface {
	Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error)
}

// Client queries the remote dictionary API. Each lookup is a single attempt;
// concurrent lookups of the same word share one request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	group      singleflight.Group
}

// NewClient creates a client for baseURL
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("component", "dictionary")),
	}
}

// Lookup fetches word and returns the first entry of the response
func (c *Client) Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	if strings.TrimSpace(word) == "" {
		return nil, ErrNotFound
	}

	// the fetch outlives any single caller; the http client timeout bounds it
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(word, func() (any, error) {
		return c.fetch(fetchCtx, word)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrNotFound, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			c.logger.Debug("Lookup failed",
				zap.String("word", word),
				zap.Bool("shared", res.Shared),
				zap.Error(res.Err),
			)
			return nil, fmt.Errorf("%w: %v", ErrNotFound, res.Err)
		}
		return res.Val.(*domain.DictionaryEntry), nil
	}
}

func (c *Client) fetch(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("empty response")
	}

	entry := entries[0].toDomain(word)

	c.logger.Debug("Lookup succeeded",
		zap.String("word", word),
		zap.Int("meanings", len(entry.Meanings)),
		zap.Bool("has_audio", entry.AudioURL() != ""),
	)

	return entry, nil
}
