// Package tui is the terminal interface: one root model routing
// between the search, favorites and details views.
package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GJFR71/cinebusca/internal/favorites"
	"github.com/GJFR71/cinebusca/internal/omdb"
	"github.com/GJFR71/cinebusca/internal/route"
)

// App is the root model. The active route decides which view handles
// input and renders.
type App struct {
	api  *omdb.Client
	favs *favorites.Store

	route route.Route
	prev  route.Route // where Esc from the details view returns to

	search  searchModel
	details detailsModel
	favList favListModel

	initCmd tea.Cmd

	width  int
	height int
}

// NewApp builds the application model. initial is usually the search
// route; a details route starts loading immediately (deep link).
func NewApp(api *omdb.Client, favs *favorites.Store, initial route.Route) App {
	a := App{
		api:     api,
		favs:    favs,
		route:   initial,
		prev:    route.Route{Kind: route.Search},
		search:  newSearchModel(api),
		details: newDetailsModel(api),
		favList: newFavListModel(favs),
		width:   80,
		height:  24,
	}
	if initial.Kind == route.Details {
		a.initCmd = a.details.start(initial.ID)
	}
	return a
}

// Init initializes the application
func (a App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.initCmd)
}

// typing reports whether key presses belong to the search text input.
func (a App) typing() bool {
	return a.route.Kind == route.Search && a.search.state != searchStateResults
}

// goToDetails navigates to the details view for id, remembering where
// to come back to.
func (a *App) goToDetails(id string) tea.Cmd {
	if a.route.Kind != route.Details {
		a.prev = a.route
	}
	a.route = route.Route{Kind: route.Details, ID: id}
	return a.details.start(id)
}

// Update handles messages and user input
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global key handling
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if !a.typing() {
				return a, tea.Quit
			}
		case "tab":
			if a.route.Kind == route.Favorites {
				a.route = route.Route{Kind: route.Search}
			} else if a.route.Kind == route.Search {
				a.route = route.Route{Kind: route.Favorites}
				a.favList.clamp()
			}
			return a, nil
		case "esc":
			switch a.route.Kind {
			case route.Details:
				a.route = a.prev
				if a.route.Kind == route.Favorites {
					a.favList.clamp()
				}
				return a, nil
			case route.Favorites:
				a.route = route.Route{Kind: route.Search}
				return a, nil
			case route.Search:
				if a.search.state == searchStateResults || a.search.state == searchStateMessage {
					a.search.reset()
					return a, textinput.Blink
				}
			}
		}

		// Route-specific key handling
		switch a.route.Kind {
		case route.Search:
			cmds = append(cmds, a.handleSearchKey(msg))
		case route.Favorites:
			cmds = append(cmds, a.handleFavoritesKey(msg))
		case route.Details:
			cmds = append(cmds, a.handleDetailsKey(msg))
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.details.vp.Width = msg.Width - 4
		a.details.vp.Height = msg.Height - 8
		if a.details.detail != nil {
			a.details.vp.SetContent(formatDetail(a.details.detail, a.details.vp.Width))
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		if a.search.state == searchStateLoading {
			a.search.spin, cmd = a.search.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		if a.details.loading {
			a.details.spin, cmd = a.details.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case searchResultsMsg:
		a.search.applyResults(msg)

	case searchFailedMsg:
		a.search.applyFailure(msg)

	case detailReadyMsg:
		a.details.applyReady(msg)

	case detailFailedMsg:
		a.details.applyFailure(msg)

	case browserMsg:
		if msg.err != nil {
			log.Printf("open browser: %v", msg.err)
		}
	}

	return a, tea.Batch(cmds...)
}

// View renders the current UI
func (a App) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("🎬 CineBusca"))
	sb.WriteString("\n\n")

	switch a.route.Kind {
	case route.Favorites:
		sb.WriteString(a.favoritesView())
	case route.Details:
		sb.WriteString(a.detailsView())
	default:
		sb.WriteString(a.searchView())
	}

	return lipgloss.NewStyle().
		Width(a.width).
		MaxHeight(a.height).
		Render(sb.String())
}
