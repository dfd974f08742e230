package omdb_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GJFR71/cinebusca/internal/omdb"
)

// stubTransport serves canned JSON and records the requests it saw.
type stubTransport struct {
	body   string
	status int
	err    error
	calls  int
	lastQ  map[string]string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	s.lastQ = map[string]string{}
	for k, vs := range req.URL.Query() {
		s.lastQ[k] = vs[0]
	}
	if s.err != nil {
		return nil, s.err
	}
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    req,
	}, nil
}

func newClient(st *stubTransport) *omdb.Client {
	return omdb.New("http://omdb.test/", "k3y", &http.Client{Transport: st})
}

const searchBody = `{
	"Search": [
		{"Title": "The Matrix", "Year": "1999", "imdbID": "tt0133093", "Type": "movie", "Poster": "https://img.test/matrix.jpg"},
		{"Title": "The Matrix Reloaded", "Year": "2003", "imdbID": "tt0234215", "Type": "movie", "Poster": "N/A"}
	],
	"totalResults": "42",
	"Response": "True"
}`

func TestSearch(t *testing.T) {
	st := &stubTransport{body: searchBody}
	c := newClient(st)

	page, err := c.Search(context.Background(), "matrix", 2)
	require.NoError(t, err)

	assert.Equal(t, "k3y", st.lastQ["apikey"])
	assert.Equal(t, "matrix", st.lastQ["s"])
	assert.Equal(t, "movie", st.lastQ["type"])
	assert.Equal(t, "2", st.lastQ["page"])

	require.Len(t, page.Items, 2)
	assert.Equal(t, "tt0133093", page.Items[0].ImdbID)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 5, page.TotalPages())
}

func TestSearchNoResultsSurfacesAPIMessage(t *testing.T) {
	st := &stubTransport{body: `{"Response": "False", "Error": "Movie not found!"}`}
	c := newClient(st)

	_, err := c.Search(context.Background(), "zzzzzz", 1)
	var apiErr *omdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Movie not found!", apiErr.Message)
}

func TestSearchInvalidKeyNon200StillSurfacesMessage(t *testing.T) {
	st := &stubTransport{
		body:   `{"Response": "False", "Error": "Invalid API key!"}`,
		status: http.StatusUnauthorized,
	}
	c := newClient(st)

	_, err := c.Search(context.Background(), "matrix", 1)
	var apiErr *omdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid API key!", apiErr.Message)
}

func TestSearchTransportFailure(t *testing.T) {
	st := &stubTransport{err: errors.New("connection refused")}
	c := newClient(st)

	_, err := c.Search(context.Background(), "matrix", 1)
	require.Error(t, err)
	var apiErr *omdb.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestSearchCachesPerTermAndPage(t *testing.T) {
	st := &stubTransport{body: searchBody}
	c := newClient(st)

	_, err := c.Search(context.Background(), "matrix", 1)
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "matrix", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, st.calls)

	_, err = c.Search(context.Background(), "matrix", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, st.calls)
}

func TestByID(t *testing.T) {
	st := &stubTransport{body: `{
		"Title": "The Matrix", "Year": "1999", "Rated": "R", "Runtime": "136 min",
		"Genre": "Action, Sci-Fi", "Director": "Lana Wachowski, Lilly Wachowski",
		"Actors": "Keanu Reeves", "Plot": "A hacker learns the truth.",
		"Awards": "Won 4 Oscars", "BoxOffice": "$172,076,928",
		"imdbRating": "8.7", "imdbID": "tt0133093", "Type": "movie",
		"Poster": "https://img.test/matrix.jpg", "Response": "True"
	}`}
	c := newClient(st)

	d, err := c.ByID(context.Background(), "tt0133093")
	require.NoError(t, err)

	assert.Equal(t, "k3y", st.lastQ["apikey"])
	assert.Equal(t, "tt0133093", st.lastQ["i"])
	assert.Equal(t, "full", st.lastQ["plot"])

	assert.Equal(t, "The Matrix", d.Title)
	assert.Equal(t, "8.7", d.ImdbRating)
	assert.Equal(t, "$172,076,928", d.BoxOffice)

	// Second lookup comes from cache.
	_, err = c.ByID(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, 1, st.calls)
}

func TestByIDNotFound(t *testing.T) {
	st := &stubTransport{body: `{"Response": "False", "Error": "Incorrect IMDb ID."}`}
	c := newClient(st)

	d, err := c.ByID(context.Background(), "nope")
	assert.Nil(t, d)
	var apiErr *omdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Incorrect IMDb ID.", apiErr.Message)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, want int
	}{
		{0, 0}, {1, 1}, {9, 1}, {10, 1}, {11, 2}, {20, 2}, {21, 3}, {42, 5},
	}
	for _, tt := range tests {
		p := omdb.SearchPage{Total: tt.total}
		assert.Equal(t, tt.want, p.TotalPages(), "total=%d", tt.total)
	}
}

func TestHasCredential(t *testing.T) {
	assert.False(t, omdb.New("", "", nil).HasCredential())
	assert.True(t, omdb.New("", "k", nil).HasCredential())
}
