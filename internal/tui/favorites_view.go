package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GJFR71/cinebusca/internal/favorites"
)

// favListModel owns the cursor over the favorites grid. The records
// themselves live in the favorites store.
type favListModel struct {
	favs   *favorites.Store
	cursor int
}

func newFavListModel(favs *favorites.Store) favListModel {
	return favListModel{favs: favs}
}

// clamp keeps the cursor inside the list after removals.
func (m *favListModel) clamp() {
	if n := m.favs.Len(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m *favListModel) selected() (favorites.Record, bool) {
	all := m.favs.All()
	if len(all) == 0 || m.cursor >= len(all) {
		return favorites.Record{}, false
	}
	return all[m.cursor], true
}

// handleFavoritesKey handles keys while the favorites view is active.
func (a *App) handleFavoritesKey(msg tea.KeyMsg) tea.Cmd {
	m := &a.favList

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.favs.Len()-1 {
			m.cursor++
		}
	case "x", "delete", "f":
		if rec, ok := m.selected(); ok {
			m.favs.Remove(rec.ID)
			m.clamp()
		}
	case "enter":
		if rec, ok := m.selected(); ok {
			return a.goToDetails(rec.ID)
		}
	}
	return nil
}

func (a App) favoritesView() string {
	m := a.favList
	var sb strings.Builder

	all := m.favs.All()
	sb.WriteString(subtitleStyle.Render(fmt.Sprintf("Favoritos (%d)", len(all))))
	sb.WriteString("\n")

	if len(all) == 0 {
		sb.WriteString(normalTextStyle.Render("Nenhum favorito ainda."))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("Pressione f em um resultado de busca para adicionar • Tab: busca"))
		return sb.String()
	}

	var list strings.Builder
	for i, rec := range all {
		line := fmt.Sprintf("%s (%s)", rec.Title, rec.Year)
		if i == m.cursor {
			list.WriteString(highlightedTextStyle.Render("> ★ " + line))
		} else {
			list.WriteString(normalTextStyle.Render("  ★ " + line))
		}
		list.WriteString("\n")
	}
	sb.WriteString(listStyle.Render(list.String()))
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("↑/↓: navegar • Enter: detalhes • x: remover • Tab: busca"))

	return sb.String()
}
