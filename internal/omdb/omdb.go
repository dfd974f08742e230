// Package omdb is a thin client for the OMDb REST API.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PageSize is the number of results per search page. Fixed by the API,
// not configurable.
const PageSize = 10

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// Sentinel is the API's convention for "field not available".
const Sentinel = "N/A"

// SearchItem is one entry of a search response page.
type SearchItem struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	Type   string `json:"Type"`
}

// SearchPage is one page of search results plus the API-reported
// total match count.
type SearchPage struct {
	Items []SearchItem
	Total int
}

// TotalPages derives the page count from the total at the API's fixed
// page size.
func (p SearchPage) TotalPages() int {
	return (p.Total + PageSize - 1) / PageSize
}

// Detail is the full record for a single title.
type Detail struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Type       string `json:"Type"`
	Rated      string `json:"Rated"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Awards     string `json:"Awards"`
	BoxOffice  string `json:"BoxOffice"`
	ImdbRating string `json:"imdbRating"`
}

// APIError carries a message the API itself reported (zero matches,
// invalid key, rate limit). These are shown to the user verbatim and
// are distinct from transport failures.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client queries the OMDb API. Responses are cached briefly in memory
// so flipping back and forth between pages does not re-hit the API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *gocache.Cache
}

// New builds a Client. An empty baseURL selects the public endpoint;
// a nil httpClient gets a 10s-timeout default.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
		cache:   gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// HasCredential reports whether an API key is configured. Without one
// every query is skipped by the callers.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
}

// Search fetches one page of movie results for term. Page numbering
// is 1-based.
func (c *Client) Search(ctx context.Context, term string, page int) (SearchPage, error) {
	key := fmt.Sprintf("s:%s:%d", term, page)
	if v, ok := c.cache.Get(key); ok {
		return v.(SearchPage), nil
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("s", term)
	q.Set("type", "movie")
	q.Set("page", strconv.Itoa(page))

	var body searchResponse
	if err := c.getJSON(ctx, q, &body); err != nil {
		return SearchPage{}, err
	}
	if body.Response != "True" {
		return SearchPage{}, &APIError{Message: body.Error}
	}

	total, err := strconv.Atoi(body.TotalResults)
	if err != nil || total < 0 {
		total = len(body.Search)
	}
	result := SearchPage{Items: body.Search, Total: total}
	c.cache.Set(key, result, gocache.DefaultExpiration)
	return result, nil
}

type detailResponse struct {
	Detail
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// ByID fetches the full record for one IMDb identifier.
func (c *Client) ByID(ctx context.Context, id string) (*Detail, error) {
	key := "i:" + id
	if v, ok := c.cache.Get(key); ok {
		return v.(*Detail), nil
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("i", id)
	q.Set("plot", "full")

	var body detailResponse
	if err := c.getJSON(ctx, q, &body); err != nil {
		return nil, err
	}
	if body.Response != "True" {
		return nil, &APIError{Message: body.Error}
	}

	d := body.Detail
	c.cache.Set(key, &d, gocache.DefaultExpiration)
	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The API reports its own errors (invalid key, rate limit) as a
	// JSON body, sometimes with a non-200 status. Prefer the decoded
	// message over a bare status error.
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("omdb: unexpected status %d", resp.StatusCode)
		}
		return err
	}
	return nil
}
