package opensea

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/seaview/explorer/internal/model"
)

// AssetFilter narrows an assets query. Zero-valued fields are omitted from
// the outgoing query entirely, never sent as empty or null.
type AssetFilter struct {
	Collection     string
	Owner          string
	OrderDirection string
	Limit          int
	Offset         int
}

// EventFilter narrows an events query. Zero-valued fields are omitted.
type EventFilter struct {
	Collection           string
	AssetContractAddress string
	TokenID              string
	EventType            string
}

// GetAssets fetches assets matching the filter. The collection slug is
// lower-cased before transmission.
func (c *Client) GetAssets(ctx context.Context, filter AssetFilter) (model.Object, error) {
	params := url.Values{}
	if filter.Collection != "" {
		params.Set("collection", strings.ToLower(filter.Collection))
	}
	if filter.Owner != "" {
		params.Set("owner", filter.Owner)
	}
	if filter.OrderDirection != "" {
		params.Set("order_direction", filter.OrderDirection)
	}
	if filter.Limit != 0 {
		params.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset != 0 {
		params.Set("offset", strconv.Itoa(filter.Offset))
	}
	return c.Get(ctx, "assets", params)
}

// GetEvents fetches marketplace events matching the filter. The collection
// slug is lower-cased and sent under the collection_slug key.
func (c *Client) GetEvents(ctx context.Context, filter EventFilter) (model.Object, error) {
	params := url.Values{}
	if filter.Collection != "" {
		params.Set("collection_slug", strings.ToLower(filter.Collection))
	}
	if filter.AssetContractAddress != "" {
		params.Set("asset_contract_address", filter.AssetContractAddress)
	}
	if filter.TokenID != "" {
		params.Set("token_id", filter.TokenID)
	}
	if filter.EventType != "" {
		params.Set("event_type", filter.EventType)
	}
	return c.Get(ctx, "events", params)
}
