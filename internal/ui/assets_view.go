package ui

import (
	"context"
	"fmt"

	"github.com/rivo/tview"

	"github.com/seaview/explorer/internal/model"
	"github.com/seaview/explorer/internal/opensea"
)

// assetPageLimit is how many assets the page shows per fetch.
const assetPageLimit = 5

// AssetsView displays live assets for a collection/owner filter.
type AssetsView struct {
	flex    *tview.Flex
	form    *tview.Form
	results *tview.TextView
	client  *opensea.Client
	draw    func(func())

	collection string
	owner      string
}

// NewAssetsView creates the assets page. The draw callback schedules
// renders on the UI goroutine.
func NewAssetsView(client *opensea.Client, defaultCollection string, draw func(func())) *AssetsView {
	v := &AssetsView{
		client:     client,
		draw:       draw,
		collection: defaultCollection,
	}

	v.form = tview.NewForm().
		AddInputField("Collection", defaultCollection, 30, nil, func(text string) {
			v.collection = text
		}).
		AddInputField("Owner", "", 44, nil, func(text string) {
			v.owner = text
		}).
		AddButton("Fetch", func() {
			v.Fetch(context.Background())
		})
	v.form.SetTitle(" Filters ").SetBorder(true)

	v.results = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	v.results.SetTitle(" Assets ").SetBorder(true)

	v.flex = tview.NewFlex().
		AddItem(v.form, 36, 0, true).
		AddItem(v.results, 0, 1, false)

	return v
}

// Widget returns the tview primitive.
func (v *AssetsView) Widget() tview.Primitive {
	return v.flex
}

// Fetch loads assets for the current filters off the UI goroutine.
func (v *AssetsView) Fetch(ctx context.Context) {
	collection := v.collection
	owner := v.owner

	go func() {
		resp, err := v.client.GetAssets(ctx, opensea.AssetFilter{
			Collection: collection,
			Owner:      owner,
			Limit:      assetPageLimit,
		})
		if err != nil {
			v.draw(func() {
				v.results.SetText(fmt.Sprintf("[red]fetch failed: %v", err))
			})
			return
		}

		assets := model.AssetsFrom(resp)
		v.draw(func() {
			v.render(assets)
		})
	}()
}

// render writes the fetched assets into the results pane.
func (v *AssetsView) render(assets []model.Asset) {
	v.results.Clear()

	if len(assets) == 0 {
		fmt.Fprint(v.results, "No assets found.")
		return
	}

	for _, asset := range assets {
		writeAsset(v.results, asset)
	}
	v.results.SetTitle(fmt.Sprintf(" Assets (%d) ", len(assets)))
	v.results.ScrollToBeginning()
}

// writeAsset renders one asset with the display-name and description
// fallbacks applied.
func writeAsset(w *tview.TextView, asset model.Asset) {
	fmt.Fprintf(w, "[yellow]%s[-]\n", tview.Escape(asset.DisplayName()))
	if desc := asset.Description(); desc != "" {
		fmt.Fprintf(w, "%s\n", tview.Escape(desc))
	}
	if img := asset.ImageURL(); img != "" {
		fmt.Fprintf(w, "[blue]%s[-]\n", tview.Escape(img))
	}
	fmt.Fprintln(w)
}
