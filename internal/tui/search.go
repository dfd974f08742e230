package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GJFR71/cinebusca/internal/favorites"
	"github.com/GJFR71/cinebusca/internal/omdb"
)

// Search view states
const (
	searchStateInput = iota
	searchStateLoading
	searchStateResults
	searchStateMessage
)

const (
	genericSearchError = "Não foi possível concluir a busca. Verifique sua conexão e tente novamente."
	missingKeyHint     = "Defina OMDB_API_KEY para habilitar a busca."
)

// searchModel owns the search term, current page, result list, total
// count and loading/error state.
type searchModel struct {
	api     *omdb.Client
	input   textinput.Model
	spin    spinner.Model
	pager   paginator.Model
	state   int
	term    string // last submitted term
	results []omdb.SearchItem
	total   int
	cursor  int
	message string
	seq     int // request sequence; stale responses are dropped
}

type searchResultsMsg struct {
	seq  int
	page omdb.SearchPage
}

type searchFailedMsg struct {
	seq int
	err error
}

func newSearchModel(api *omdb.Client) searchModel {
	ti := textinput.New()
	ti.Placeholder = "Digite o nome de um filme..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = omdb.PageSize
	pg.ActiveDot = activeDot
	pg.InactiveDot = inactiveDot

	return searchModel{
		api:   api,
		input: ti,
		spin:  sp,
		pager: pg,
		state: searchStateInput,
	}
}

// submit issues a fresh query for the typed term, resetting to page 1.
// Without a non-empty term and a credential it is a no-op.
func (m *searchModel) submit() tea.Cmd {
	term := strings.TrimSpace(m.input.Value())
	if term == "" || !m.api.HasCredential() {
		return nil
	}
	m.term = term
	m.pager.Page = 0
	return m.fetch(1)
}

// fetch queries one page for the current term.
func (m *searchModel) fetch(page int) tea.Cmd {
	m.seq++
	m.state = searchStateLoading

	seq := m.seq
	api := m.api
	term := m.term
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			result, err := api.Search(context.Background(), term, page)
			if err != nil {
				return searchFailedMsg{seq: seq, err: err}
			}
			return searchResultsMsg{seq: seq, page: result}
		},
	)
}

func (m *searchModel) applyResults(msg searchResultsMsg) {
	if msg.seq != m.seq {
		// An earlier request arriving late; the newer one wins.
		return
	}
	m.results = msg.page.Items
	m.total = msg.page.Total
	m.cursor = 0
	m.message = ""
	m.pager.TotalPages = msg.page.TotalPages()
	m.state = searchStateResults
	m.input.Blur()
}

func (m *searchModel) applyFailure(msg searchFailedMsg) {
	if msg.seq != m.seq {
		return
	}
	m.results = nil
	m.total = 0

	var apiErr *omdb.APIError
	if errors.As(msg.err, &apiErr) {
		m.message = apiErr.Message
	} else {
		m.message = genericSearchError
	}
	m.state = searchStateMessage
	m.input.Focus()
}

// reset returns the view to the empty prompt.
func (m *searchModel) reset() {
	m.state = searchStateInput
	m.results = nil
	m.total = 0
	m.cursor = 0
	m.message = ""
	m.input.Focus()
}

// selected returns the highlighted result, if any.
func (m *searchModel) selected() (omdb.SearchItem, bool) {
	if m.state != searchStateResults || len(m.results) == 0 {
		return omdb.SearchItem{}, false
	}
	return m.results[m.cursor], true
}

// handleSearchKey handles keys while the search view is active.
func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	m := &a.search

	switch m.state {
	case searchStateInput, searchStateMessage:
		if msg.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd

	case searchStateResults:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "f":
			if item, ok := m.selected(); ok {
				a.favs.Toggle(favorites.Record{
					ID:     item.ImdbID,
					Title:  item.Title,
					Year:   item.Year,
					Poster: item.Poster,
					Type:   item.Type,
				})
			}
		case "enter":
			if item, ok := m.selected(); ok {
				return a.goToDetails(item.ImdbID)
			}
		default:
			// Page keys live in the paginator; a page change while a
			// term is submitted re-issues the query for the new page.
			before := m.pager.Page
			var cmd tea.Cmd
			m.pager, cmd = m.pager.Update(msg)
			if m.pager.Page != before && m.term != "" && m.api.HasCredential() {
				return tea.Batch(cmd, m.fetch(m.pager.Page+1))
			}
			return cmd
		}
	}
	return nil
}

func (a App) searchView() string {
	m := a.search
	var sb strings.Builder

	switch m.state {
	case searchStateInput:
		sb.WriteString(subtitleStyle.Render("Buscar filme:"))
		sb.WriteString("\n")
		sb.WriteString(inputStyle.Render(m.input.View()))
		sb.WriteString("\n\n")
		if !m.api.HasCredential() {
			sb.WriteString(errorStyle.Render(missingKeyHint))
		} else {
			sb.WriteString(helpStyle.Render("Enter: buscar • Tab: favoritos • Ctrl+C: sair"))
		}

	case searchStateLoading:
		sb.WriteString(subtitleStyle.Render("Buscando..."))
		sb.WriteString("\n")
		sb.WriteString(m.spin.View())
		sb.WriteString(" ")
		sb.WriteString(normalTextStyle.Render("Procurando por \"" + m.term + "\""))

	case searchStateResults:
		header := fmt.Sprintf("%d resultado(s) para \"%s\"", m.total, m.term)
		sb.WriteString(subtitleStyle.Render(header))
		sb.WriteString("\n")

		var list strings.Builder
		for i, item := range m.results {
			mark := "  "
			if a.favs.Has(item.ImdbID) {
				mark = favMarkStyle.Render("★") + " "
			}
			line := fmt.Sprintf("%s (%s)", item.Title, item.Year)
			if i == m.cursor {
				list.WriteString(highlightedTextStyle.Render("> " + mark + line))
			} else {
				list.WriteString(normalTextStyle.Render("  " + mark + line))
			}
			list.WriteString("\n")
		}
		sb.WriteString(listStyle.Render(list.String()))
		sb.WriteString("\n")
		if m.pager.TotalPages > 1 {
			sb.WriteString(m.pager.View())
			sb.WriteString(helpStyle.Render(fmt.Sprintf("  pág. %d/%d", m.pager.Page+1, m.pager.TotalPages)))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("↑/↓: navegar • ←/→: página • Enter: detalhes • f: favoritar • Esc: nova busca"))

	case searchStateMessage:
		sb.WriteString(subtitleStyle.Render("Buscar filme:"))
		sb.WriteString("\n")
		sb.WriteString(inputStyle.Render(m.input.View()))
		sb.WriteString("\n\n")
		sb.WriteString(infoStyle.Render(m.message))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("Enter: buscar novamente • Tab: favoritos"))
	}

	return sb.String()
}
