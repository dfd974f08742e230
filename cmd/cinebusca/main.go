package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GJFR71/cinebusca/internal/config"
	"github.com/GJFR71/cinebusca/internal/favorites"
	"github.com/GJFR71/cinebusca/internal/omdb"
	"github.com/GJFR71/cinebusca/internal/route"
	"github.com/GJFR71/cinebusca/internal/storage"
	"github.com/GJFR71/cinebusca/internal/tui"
)

func main() {
	cfg := config.Load()

	// The TUI owns the terminal, so logs either go to a file or away.
	if cfg.Debug {
		f, err := tea.LogToFile("cinebusca.log", "cinebusca")
		if err != nil {
			fmt.Fprintln(os.Stderr, "abrindo log:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// File-backed store when possible, in-memory for the session when
	// the data dir is unavailable.
	var kv storage.Store
	if fs, err := storage.NewFileStore(cfg.DataDir); err == nil {
		kv = fs
	} else {
		log.Printf("data dir %q unavailable, persistence disabled: %v", cfg.DataDir, err)
		kv = storage.NewMemStore()
	}

	// A credential from the environment is written through to the
	// store; absent one, the stored credential is used.
	apiKey := cfg.APIKey
	if apiKey != "" {
		kv.Set(config.APIKeyStorageKey, apiKey)
	} else {
		kv.Get(config.APIKeyStorageKey, &apiKey)
	}

	client := omdb.New(cfg.APIBaseURL, apiKey, nil)
	favs := favorites.NewStore(kv)

	// An optional fragment argument deep-links into a view, e.g.
	// cinebusca "/detalhes/tt0133093"
	initial := route.Route{Kind: route.Search}
	if len(os.Args) > 1 {
		initial = route.Parse(os.Args[1])
	}

	p := tea.NewProgram(tui.NewApp(client, favs, initial), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
