package country

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the REST Countries v3.1 API endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// fields requested from the API; keeps the response small and the record
// shape stable.
const fields = "name,capital,region,subregion,population,languages,currencies,timezones,cca2,cca3"

// Record is a single country record as returned by the REST Countries API.
type Record struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string            `json:"capital"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Population int64               `json:"population"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]Currency `json:"currencies"`
	Timezones  []string            `json:"timezones"`
	CCA2       string              `json:"cca2"`
	CCA3       string              `json:"cca3"`
}

// Currency is a currency entry of a country record.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// DisplayName returns the best available name of the country.
func (r *Record) DisplayName() string {
	if r.Name.Common != "" {
		return r.Name.Common
	}
	if r.Name.Official != "" {
		return r.Name.Official
	}
	return "Unknown country"
}

// Fetcher looks up a country record by name.
type Fetcher interface {
	FetchCountry(ctx context.Context, name string) (*Record, error)
}

// Client is a Fetcher backed by the REST Countries HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a REST Countries client with a bounded request timeout.
func NewClient(timeout time.Duration, opts ...ClientOption) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCountry implements Fetcher. A 404 response or an empty result set is
// reported as ErrCountryNotFound.
func (c *Client) FetchCountry(ctx context.Context, name string) (*Record, error) {
	u := fmt.Sprintf("%s/name/%s?fields=%s", c.baseURL, url.PathEscape(name), fields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create country lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, name)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("country lookup returned status %d", resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode country lookup response: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, name)
	}

	return &records[0], nil
}
