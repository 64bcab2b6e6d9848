// Package ui provides the terminal dashboard for browsing OpenSea data.
package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/seaview/explorer/internal/config"
	"github.com/seaview/explorer/internal/opensea"
)

// Page names for the three explorer endpoints.
const (
	PageAssets = "assets"
	PageEvents = "events"
	PageRarity = "rarity"
)

// App is the main TUI application. One page per endpoint: live assets,
// live events, and rarity computed from the fetcher's local dump.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	layout *tview.Flex

	// Views
	assets *AssetsView
	events *EventsView
	rarity *RarityView

	current string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates a new TUI application backed by the given client.
func NewApp(client *opensea.Client, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		current: PageAssets,
		ctx:     ctx,
		cancel:  cancel,
	}

	// Initialize views; each view schedules redraws through the app.
	draw := func(fn func()) { a.app.QueueUpdateDraw(fn) }
	a.assets = NewAssetsView(client, cfg.DefaultCollection, draw)
	a.events = NewEventsView(client, draw)
	a.rarity = NewRarityView(cfg.AssetsFile, cfg.CollectionSupply, draw)

	a.setupLayout()
	a.setupKeyboard()

	return a
}

// setupLayout stacks a key-hint bar above the page area.
func (a *App) setupLayout() {
	a.pages.AddPage(PageAssets, a.assets.Widget(), true, true)
	a.pages.AddPage(PageEvents, a.events.Widget(), true, false)
	a.pages.AddPage(PageRarity, a.rarity.Widget(), true, false)

	hints := tview.NewTextView().
		SetDynamicColors(true).
		SetText(" [yellow]1[-] Assets  [yellow]2[-] Events  [yellow]3[-] Rarity  [yellow]r[-] Refresh  [yellow]q[-] Quit")

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(hints, 1, 0, false).
		AddItem(a.pages, 0, 1, true)

	a.app.SetRoot(a.layout, true)
}

// setupKeyboard configures global shortcuts. Rune shortcuts are ignored
// while an input field or dropdown has focus so typing still works.
func (a *App) setupKeyboard() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			a.Stop()
			return nil
		}

		if event.Key() != tcell.KeyRune || a.typing() {
			return event
		}

		switch event.Rune() {
		case '1':
			a.switchTo(PageAssets)
			return nil
		case '2':
			a.switchTo(PageEvents)
			return nil
		case '3':
			a.switchTo(PageRarity)
			return nil
		case 'r', 'R':
			a.refresh()
			return nil
		case 'q', 'Q':
			a.Stop()
			return nil
		}
		return event
	})
}

// typing reports whether the focused primitive consumes rune input.
func (a *App) typing() bool {
	switch a.app.GetFocus().(type) {
	case *tview.InputField, *tview.DropDown:
		return true
	}
	return false
}

// switchTo shows the named page and refreshes it.
func (a *App) switchTo(page string) {
	a.current = page
	a.pages.SwitchToPage(page)
	a.refresh()
}

// refresh re-fetches the current page's data.
func (a *App) refresh() {
	switch a.current {
	case PageAssets:
		a.assets.Fetch(a.ctx)
	case PageEvents:
		a.events.Fetch(a.ctx)
	case PageRarity:
		a.rarity.Reload()
	}
}

// Run starts the TUI application (blocking).
func (a *App) Run() error {
	// Populate the initial page before handing control to tview.
	a.assets.Fetch(a.ctx)

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the application.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
