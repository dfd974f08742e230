package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GJFR71/cinebusca/internal/route"
)

func TestParse(t *testing.T) {
	tests := []struct {
		fragment string
		want     route.Route
	}{
		{"", route.Route{Kind: route.Search}},
		{"/", route.Route{Kind: route.Search}},
		{"/favoritos", route.Route{Kind: route.Favorites}},
		{"/detalhes/tt0133093", route.Route{Kind: route.Details, ID: "tt0133093"}},
		{"#/detalhes/tt0133093", route.Route{Kind: route.Details, ID: "tt0133093"}},
		{"/detalhes/", route.Route{Kind: route.Search}},
		{"/unknown", route.Route{Kind: route.Search}},
		{"/favoritos/extra", route.Route{Kind: route.Search}},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.want, route.Parse(tt.fragment))
		})
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	for _, r := range []route.Route{
		{Kind: route.Search},
		{Kind: route.Favorites},
		{Kind: route.Details, ID: "tt4154796"},
	} {
		assert.Equal(t, r, route.Parse(r.Fragment()))
	}
}
