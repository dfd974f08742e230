package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GJFR71/cinebusca/internal/favorites"
	"github.com/GJFR71/cinebusca/internal/omdb"
)

const genericDetailError = "Não foi possível carregar os detalhes. Tente novamente."

// detailsModel owns the single-title detail state.
type detailsModel struct {
	api     *omdb.Client
	spin    spinner.Model
	vp      viewport.Model
	id      string
	detail  *omdb.Detail
	message string
	loading bool
	seq     int
}

type detailReadyMsg struct {
	seq    int
	detail *omdb.Detail
}

type detailFailedMsg struct {
	seq int
	err error
}

type browserMsg struct {
	err error
}

func newDetailsModel(api *omdb.Client) detailsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().BorderForeground(accentColor)

	return detailsModel{api: api, spin: sp, vp: vp}
}

// start loads the record for id. Requires a credential and a non-empty
// id; re-entering the view for the id already loaded keeps the data.
func (m *detailsModel) start(id string) tea.Cmd {
	if id == "" || !m.api.HasCredential() {
		return nil
	}
	if m.detail != nil && m.detail.ImdbID == id {
		return nil
	}

	m.id = id
	m.detail = nil
	m.message = ""
	m.loading = true
	m.seq++

	seq := m.seq
	api := m.api
	return tea.Batch(
		m.spin.Tick,
		func() tea.Msg {
			d, err := api.ByID(context.Background(), id)
			if err != nil {
				return detailFailedMsg{seq: seq, err: err}
			}
			return detailReadyMsg{seq: seq, detail: d}
		},
	)
}

func (m *detailsModel) applyReady(msg detailReadyMsg) {
	if msg.seq != m.seq {
		return
	}
	m.loading = false
	m.detail = msg.detail
	m.message = ""
	m.vp.SetContent(formatDetail(msg.detail, m.vp.Width))
	m.vp.GotoTop()
}

func (m *detailsModel) applyFailure(msg detailFailedMsg) {
	if msg.seq != m.seq {
		return
	}
	m.loading = false
	m.detail = nil

	var apiErr *omdb.APIError
	if errors.As(msg.err, &apiErr) {
		m.message = apiErr.Message
	} else {
		m.message = genericDetailError
	}
}

// handleDetailsKey handles keys while the details view is active.
func (a *App) handleDetailsKey(msg tea.KeyMsg) tea.Cmd {
	m := &a.details

	switch msg.String() {
	case "f":
		if d := m.detail; d != nil {
			a.favs.Toggle(favorites.Record{
				ID:     d.ImdbID,
				Title:  d.Title,
				Year:   d.Year,
				Poster: d.Poster,
				Type:   d.Type,
			})
		}
		return nil
	case "enter":
		if d := m.detail; d != nil {
			url := imdbTitleURL(d.ImdbID)
			return func() tea.Msg {
				return browserMsg{err: openBrowser(url)}
			}
		}
		return nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (a App) detailsView() string {
	m := a.details
	var sb strings.Builder

	switch {
	case m.loading:
		sb.WriteString(subtitleStyle.Render("Carregando detalhes..."))
		sb.WriteString("\n")
		sb.WriteString(m.spin.View())
		sb.WriteString(" ")
		sb.WriteString(normalTextStyle.Render("Buscando informações do título"))

	case m.message != "":
		sb.WriteString(errorStyle.Render(m.message))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("Esc: voltar"))

	case m.detail == nil:
		sb.WriteString(normalTextStyle.Render("Nenhum detalhe disponível"))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("Esc: voltar"))

	default:
		sb.WriteString(m.vp.View())
		sb.WriteString("\n\n")
		fav := "f: favoritar"
		if a.favs.Has(m.detail.ImdbID) {
			fav = "f: remover favorito"
		}
		sb.WriteString(helpStyle.Render("↑/↓: rolar • Enter: abrir no IMDb • " + fav + " • Esc: voltar"))
	}

	return sb.String()
}

// detailField is one optional labeled line of the detail panel.
type detailField struct {
	label string
	value string
}

// formatDetail renders the detail panel. Fields carrying the API's
// "N/A" sentinel are omitted entirely.
func formatDetail(d *omdb.Detail, width int) string {
	var sb strings.Builder

	title := d.Title
	if present(d.Year) {
		title += " (" + d.Year + ")"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	fields := []detailField{
		{"Avaliação IMDb", d.ImdbRating},
		{"Classificação", d.Rated},
		{"Duração", d.Runtime},
		{"Gênero", d.Genre},
		{"Direção", d.Director},
		{"Elenco", d.Actors},
		{"Prêmios", d.Awards},
		{"Bilheteria", d.BoxOffice},
	}
	for _, f := range fields {
		if !present(f.value) {
			continue
		}
		sb.WriteString(fieldLabelStyle.Render(f.label + ": "))
		sb.WriteString(normalTextStyle.Render(f.value))
		sb.WriteString("\n")
	}

	if present(d.Plot) {
		maxWidth := width - 8
		if maxWidth < 20 {
			maxWidth = 60
		}
		sb.WriteString("\n")
		sb.WriteString(fieldLabelStyle.Render("Sinopse:"))
		sb.WriteString("\n")
		sb.WriteString(normalTextStyle.Width(maxWidth).Render(d.Plot))
		sb.WriteString("\n")
	}

	return sb.String()
}

// present reports whether a field holds a real value rather than the
// collaborator's "not available" sentinel.
func present(v string) bool {
	return v != "" && v != omdb.Sentinel
}
