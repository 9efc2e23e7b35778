package source

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"horactl/pkg/timetable"
)

// Client fetches timetable pages over HTTP
type Client struct {
	httpClient *http.Client
	useCache   bool
}

// NewClient creates a new client that caches fetched pages on disk
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		useCache: true,
	}
}

// WithoutCache makes the client always hit the network
func (c *Client) WithoutCache() *Client {
	c.useCache = false
	return c
}

// Get fetches the given URL and returns the HTTP response
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "horactl/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}

// FetchBlocks downloads a timetable page and extracts its period blocks
func (c *Client) FetchBlocks(url string) ([]timetable.RawBlock, error) {
	if c.useCache {
		if blocks, ok := readCache(url); ok {
			log.Debug().Str("url", url).Msg("using cached timetable")
			return blocks, nil
		}
	}

	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	blocks, err := ParseDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable from %s: %w", url, err)
	}

	if c.useCache {
		writeCache(url, blocks)
	}
	return blocks, nil
}
