// Package route maps URL-fragment style paths to application views.
package route

import "strings"

// Kind identifies which view a route addresses.
type Kind int

const (
	Search Kind = iota
	Favorites
	Details
)

// Route is the parsed form of a fragment path. ID is only meaningful
// for Details routes.
type Route struct {
	Kind Kind
	ID   string
}

const detailsPrefix = "/detalhes/"

// Parse converts a fragment string into a Route. Unknown shapes fall
// back to the search view rather than erroring.
func Parse(fragment string) Route {
	frag := strings.TrimPrefix(fragment, "#")

	switch {
	case frag == "" || frag == "/":
		return Route{Kind: Search}
	case frag == "/favoritos":
		return Route{Kind: Favorites}
	case strings.HasPrefix(frag, detailsPrefix):
		// The id is the verbatim remainder, slashes included.
		if id := frag[len(detailsPrefix):]; id != "" {
			return Route{Kind: Details, ID: id}
		}
	}
	return Route{Kind: Search}
}

// Fragment renders the route back into its fragment form.
func (r Route) Fragment() string {
	switch r.Kind {
	case Favorites:
		return "/favoritos"
	case Details:
		return detailsPrefix + r.ID
	default:
		return "/"
	}
}
