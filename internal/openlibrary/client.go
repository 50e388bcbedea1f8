// Package openlibrary provides a rate-limited client for the Open Library
// books API, used to prefill catalog entries from an ISBN.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Open Library API base URL.
	BaseURL = "https://openlibrary.org"

	// DefaultUserAgent identifies this client; Open Library asks API
	// consumers to send a descriptive User-Agent.
	DefaultUserAgent = "shelf/1.0 (personal book catalog)"

	// DefaultRPS keeps requests well under Open Library's limits.
	DefaultRPS = 2

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// MaxRetries bounds retry attempts for 429 and 5xx responses.
	MaxRetries = 3
)

// Client is a rate-limited HTTP client for the Open Library books API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRPS overrides the request rate limit.
func WithRPS(rps int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates an Open Library client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second/DefaultRPS), 1),
		baseURL:    BaseURL,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BookData matches one bibkey entry of api/books?jscmd=data.
type BookData struct {
	Title   string `json:"title"`
	Authors []struct {
		Name string `json:"name"`
	} `json:"authors"`
	PublishDate string `json:"publish_date"`
}

// CatalogAuthor renders the first author as "Last, First", the catalog's
// conventional author format. Additional authors are dropped.
func (b BookData) CatalogAuthor() string {
	if len(b.Authors) == 0 {
		return ""
	}
	name := strings.TrimSpace(b.Authors[0].Name)
	i := strings.LastIndex(name, " ")
	if i < 0 {
		return name
	}
	return name[i+1:] + ", " + name[:i]
}

// LookupISBN fetches metadata for a single ISBN. The second return value
// is false when Open Library has no record for it.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (BookData, bool, error) {
	url := fmt.Sprintf("%s/api/books?bibkeys=ISBN:%s&jscmd=data&format=json",
		c.baseURL, isbn)

	var res map[string]BookData
	if err := c.get(ctx, url, &res); err != nil {
		return BookData{}, false, err
	}

	data, ok := res["ISBN:"+isbn]
	return data, ok, nil
}

// get performs a rate-limited GET with retry and exponential backoff on
// 429 and 5xx responses.
func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= MaxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", MaxRetries, lastErr)
}
