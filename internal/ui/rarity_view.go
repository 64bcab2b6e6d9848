package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/seaview/explorer/internal/fetcher"
	"github.com/seaview/explorer/internal/rarity"
)

// rarityTopN is how many of the rarest assets the page shows.
const rarityTopN = 20

// RarityView ranks the locally downloaded assets by rarity score. It reads
// the fetcher's dump file; run the fetcher first to populate it.
type RarityView struct {
	text   *tview.TextView
	draw   func(func())
	path   string
	supply int
}

// NewRarityView creates the rarity page.
func NewRarityView(path string, supply int, draw func(func())) *RarityView {
	text := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	text.SetTitle(" Rarity ").SetBorder(true)

	return &RarityView{
		text:   text,
		draw:   draw,
		path:   path,
		supply: supply,
	}
}

// Widget returns the tview primitive.
func (v *RarityView) Widget() tview.Primitive {
	return v.text
}

// Reload re-reads the dump file and re-ranks off the UI goroutine.
func (v *RarityView) Reload() {
	go func() {
		assets, err := fetcher.ReadDump(v.path)
		if err != nil {
			v.draw(func() {
				v.text.SetText(fmt.Sprintf("[red]%v\n\nRun the fetcher to download a collection first.", err))
			})
			return
		}

		ranked := rarity.Top(rarity.Rank(assets, v.supply), rarityTopN)
		v.draw(func() {
			v.render(ranked, len(assets))
		})
	}()
}

// render writes the ranked assets with their traits.
func (v *RarityView) render(ranked []rarity.ScoredAsset, total int) {
	v.text.Clear()

	if len(ranked) == 0 {
		fmt.Fprint(v.text, "No assets in the dump file.")
		return
	}

	for i, scored := range ranked {
		asset := scored.Asset
		fmt.Fprintf(v.text, "[yellow]#%d %s[-]  score %.3e\n", i+1, tview.Escape(asset.DisplayName()), scored.Score)
		if img := asset.ImageURL(); img != "" {
			fmt.Fprintf(v.text, "[blue]%s[-]\n", tview.Escape(img))
		}

		traits := asset.Traits()
		fmt.Fprintf(v.text, "%d traits\n", len(traits))
		for _, trait := range traits {
			fmt.Fprintf(v.text, "  %s - %s - %d have this\n",
				tview.Escape(trait.Type()), tview.Escape(trait.Value()), trait.Count())
		}
		fmt.Fprintln(v.text)
	}

	v.text.SetTitle(fmt.Sprintf(" Rarity (top %d of %d) ", len(ranked), total))
	v.text.ScrollToBeginning()
}
