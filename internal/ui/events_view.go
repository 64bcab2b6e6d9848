package ui

import (
	"context"
	"fmt"

	"github.com/rivo/tview"

	"github.com/seaview/explorer/internal/model"
	"github.com/seaview/explorer/internal/opensea"
)

// EventsView displays live marketplace events.
type EventsView struct {
	flex   *tview.Flex
	form   *tview.Form
	table  *tview.Table
	client *opensea.Client
	draw   func(func())

	collection      string
	contractAddress string
	tokenID         string
	eventType       string
}

// NewEventsView creates the events page.
func NewEventsView(client *opensea.Client, draw func(func())) *EventsView {
	v := &EventsView{
		client:    client,
		draw:      draw,
		eventType: model.EventOfferEntered,
	}

	v.form = tview.NewForm().
		AddDropDown("Event Type", model.EventTypes, 0, func(option string, _ int) {
			v.eventType = option
		}).
		AddInputField("Collection", "", 30, nil, func(text string) {
			v.collection = text
		}).
		AddInputField("Contract Address", "", 44, nil, func(text string) {
			v.contractAddress = text
		}).
		AddInputField("Token ID", "", 20, nil, func(text string) {
			v.tokenID = text
		}).
		AddButton("Fetch", func() {
			v.Fetch(context.Background())
		})
	v.form.SetTitle(" Filters ").SetBorder(true)

	v.table = tview.NewTable().
		SetBorders(false).
		SetFixed(1, 0)
	v.table.SetTitle(" Events ").SetBorder(true)
	v.setHeader()

	v.flex = tview.NewFlex().
		AddItem(v.form, 50, 0, true).
		AddItem(v.table, 0, 1, false)

	return v
}

// Widget returns the tview primitive.
func (v *EventsView) Widget() tview.Primitive {
	return v.flex
}

// setHeader writes the fixed header row.
func (v *EventsView) setHeader() {
	headers := []string{"Time", "Bidder", "Bid (ETH)", "Collection", "Token"}
	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tview.Styles.SecondaryTextColor).
			SetAlign(tview.AlignLeft).
			SetSelectable(false)
		v.table.SetCell(0, col, cell)
	}
}

// Fetch loads events for the current filters off the UI goroutine.
func (v *EventsView) Fetch(ctx context.Context) {
	filter := opensea.EventFilter{
		Collection:           v.collection,
		AssetContractAddress: v.contractAddress,
		TokenID:              v.tokenID,
		EventType:            v.eventType,
	}

	go func() {
		resp, err := v.client.GetEvents(ctx, filter)
		if err != nil {
			v.draw(func() {
				v.table.Clear()
				v.setHeader()
				v.table.SetCell(1, 0, tview.NewTableCell(fmt.Sprintf("fetch failed: %v", err)).
					SetAlign(tview.AlignLeft).
					SetExpansion(1))
			})
			return
		}

		events := model.EventsFrom(resp)
		v.draw(func() {
			v.render(events)
		})
	}()
}

// render fills the table with event rows.
func (v *EventsView) render(events []model.Event) {
	v.table.Clear()
	v.setHeader()

	for i, event := range events {
		row := i + 1

		bid := "-"
		if amount, ok := event.BidAmountEther(); ok {
			bid = amount.StringFixed(4)
		}

		bidder := event.Bidder()
		if len(bidder) > 16 {
			bidder = bidder[:8] + "..." + bidder[len(bidder)-4:]
		}

		asset := event.Asset()
		cells := []string{
			event.CreatedDate(),
			bidder,
			bid,
			asset.Collection().Name(),
			asset.TokenID(),
		}

		for col, text := range cells {
			cell := tview.NewTableCell(tview.Escape(text)).
				SetAlign(tview.AlignLeft)
			v.table.SetCell(row, col, cell)
		}
	}

	v.table.SetTitle(fmt.Sprintf(" Events (%d) ", len(events)))
	v.table.ScrollToBeginning()
}
