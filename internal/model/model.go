// Package model provides read-only views over raw OpenSea API responses.
//
// The API schema is large and changes without notice, so records are kept as
// generic JSON mappings. Typed accessors exist only for the fields the
// explorer actually consumes; every accessor tolerates missing or null
// fields and returns a zero value instead.
package model

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Object is a raw JSON object as decoded from an API response.
type Object = map[string]any

// Asset is one NFT record inside a collection.
type Asset Object

// Trait is a named attribute-value pair on an asset, with a frequency count
// across its collection.
type Trait Object

// Collection is the nested collection mapping on an asset.
type Collection Object

// Event is a marketplace occurrence (offer, transfer, cancellation, ...)
// tied to one asset.
type Event Object

// Event types returned by the events endpoint.
const (
	EventOfferEntered = "offer_entered"
	EventCancelled    = "cancelled"
	EventBidWithdrawn = "bid_withdrawn"
	EventTransfer     = "transfer"
	EventApprove      = "approve"
)

// EventTypes lists the event types the explorer can filter on.
var EventTypes = []string{
	EventOfferEntered,
	EventCancelled,
	EventBidWithdrawn,
	EventTransfer,
	EventApprove,
}

// weiPerEther is the scale between the smallest currency unit and ether.
var weiPerEther = decimal.New(1, 18)

// AssetsFrom extracts the asset list from a raw assets response.
func AssetsFrom(resp Object) []Asset {
	raw := arr(resp, "assets")
	assets := make([]Asset, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			assets = append(assets, Asset(obj))
		}
	}
	return assets
}

// EventsFrom extracts the event list from a raw events response.
func EventsFrom(resp Object) []Event {
	raw := arr(resp, "asset_events")
	events := make([]Event, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			events = append(events, Event(obj))
		}
	}
	return events
}

// TokenID returns the asset's token id. The API serves it as a string for
// some collections and as a number for others.
func (a Asset) TokenID() string {
	return stringish(a["token_id"])
}

// Name returns the asset's own name, which may be empty (null in the API).
func (a Asset) Name() string {
	return str(a, "name")
}

// DisplayName returns the asset name, falling back to
// "<collection name> #<token id>" when the asset is unnamed.
func (a Asset) DisplayName() string {
	if name := a.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s #%s", a.Collection().Name(), a.TokenID())
}

// Description returns the asset description, falling back to the collection
// description when the asset has none.
func (a Asset) Description() string {
	if desc := str(a, "description"); desc != "" {
		return desc
	}
	return a.Collection().Description()
}

// ImageURL returns the asset image URL.
func (a Asset) ImageURL() string {
	return str(a, "image_url")
}

// Collection returns the nested collection record.
func (a Asset) Collection() Collection {
	return Collection(obj(a, "collection"))
}

// Traits returns the asset's trait records in API order.
func (a Asset) Traits() []Trait {
	raw := arr(a, "traits")
	traits := make([]Trait, 0, len(raw))
	for _, item := range raw {
		if t, ok := item.(map[string]any); ok {
			traits = append(traits, Trait(t))
		}
	}
	return traits
}

// Name returns the collection name.
func (c Collection) Name() string {
	return str(c, "name")
}

// Description returns the collection description.
func (c Collection) Description() string {
	return str(c, "description")
}

// Type returns the trait's type label.
func (t Trait) Type() string {
	return str(t, "trait_type")
}

// Value returns the trait value rendered as a string.
func (t Trait) Value() string {
	return stringish(t["value"])
}

// Count returns how many assets in the collection carry this trait value.
func (t Trait) Count() int64 {
	return integer(t["trait_count"])
}

// CreatedDate returns the event's creation timestamp string.
func (e Event) CreatedDate() string {
	return str(e, "created_date")
}

// EventType returns the event type label.
func (e Event) EventType() string {
	return str(e, "event_type")
}

// Asset returns the asset the event refers to.
func (e Event) Asset() Asset {
	return Asset(obj(e, "asset"))
}

// Bidder returns the username of the bidding account, falling back to its
// address when the account has no user profile.
func (e Event) Bidder() string {
	account := obj(e, "from_account")
	if user := obj(account, "user"); user != nil {
		if name := str(user, "username"); name != "" {
			return name
		}
	}
	return str(account, "address")
}

// BidAmountEther returns the bid amount converted from the smallest currency
// unit to ether. The second return is false when the event carries no bid.
func (e Event) BidAmountEther() (decimal.Decimal, bool) {
	raw := stringish(e["bid_amount"])
	if raw == "" {
		return decimal.Zero, false
	}
	wei, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return wei.Div(weiPerEther), true
}

// str reads a string field, returning "" for missing or non-string values.
func str(o map[string]any, key string) string {
	if o == nil {
		return ""
	}
	s, _ := o[key].(string)
	return s
}

// obj reads a nested object field.
func obj(o map[string]any, key string) map[string]any {
	if o == nil {
		return nil
	}
	nested, _ := o[key].(map[string]any)
	return nested
}

// arr reads an array field.
func arr(o map[string]any, key string) []any {
	if o == nil {
		return nil
	}
	items, _ := o[key].([]any)
	return items
}

// stringish renders a value that may be a string or a JSON number.
func stringish(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

// integer reads a value that may be a JSON number or numeric string.
func integer(v any) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case int64:
		return val
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	default:
		return 0
	}
}
