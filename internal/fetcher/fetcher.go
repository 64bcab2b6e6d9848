// Package fetcher downloads every asset of a collection to a local JSON file.
package fetcher

import (
	"context"
	"log/slog"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/seaview/explorer/internal/model"
	"github.com/seaview/explorer/internal/opensea"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AssetsAPI is the slice of the OpenSea client the fetcher needs.
type AssetsAPI interface {
	GetAssets(ctx context.Context, filter opensea.AssetFilter) (model.Object, error)
}

// Fetcher paginates through a collection's assets and persists the result.
// Pages are fetched sequentially with an optional courtesy delay between
// requests; a failure on any page aborts the run without writing the file.
type Fetcher struct {
	client   AssetsAPI
	pageSize int
	delay    time.Duration
	outPath  string
}

// New creates a Fetcher writing to outPath.
func New(client AssetsAPI, pageSize int, delay time.Duration, outPath string) *Fetcher {
	return &Fetcher{
		client:   client,
		pageSize: pageSize,
		delay:    delay,
		outPath:  outPath,
	}
}

// Run downloads all assets of the collection and writes them to the output
// file as {"assets":[...]}, overwriting any existing content. It returns
// the number of assets persisted.
func (f *Fetcher) Run(ctx context.Context, collection string) (int, error) {
	slog.Info("fetch_started", "collection", collection, "page_size", f.pageSize)

	accumulated := make([]any, 0, f.pageSize)
	offset := 0
	for part := 1; ; part++ {
		resp, err := f.client.GetAssets(ctx, opensea.AssetFilter{
			Collection:     collection,
			OrderDirection: "asc",
			Limit:          f.pageSize,
			Offset:         offset,
		})
		if err != nil {
			return 0, errors.Wrapf(err, "failed on fetch page at offset %d", offset)
		}

		page, ok := resp["assets"].([]any)
		if !ok {
			return 0, errors.Errorf("assets response at offset %d has no asset list", offset)
		}
		accumulated = append(accumulated, page...)

		// A short page is the last page.
		if len(page) < f.pageSize {
			break
		}
		offset += f.pageSize
		slog.Info("page_fetched", "part", part, "assets", len(accumulated))

		if err := f.pause(ctx); err != nil {
			return 0, err
		}
	}

	if err := f.writeDump(accumulated); err != nil {
		return 0, err
	}

	slog.Info("fetch_complete", "collection", collection, "assets", len(accumulated), "file", f.outPath)
	return len(accumulated), nil
}

// pause waits out the inter-page delay, honoring cancellation.
func (f *Fetcher) pause(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "fetch cancelled")
	case <-time.After(f.delay):
		return nil
	}
}

// writeDump serializes the accumulated assets, destructive overwrite.
func (f *Fetcher) writeDump(assets []any) error {
	payload, err := json.Marshal(map[string]any{"assets": assets})
	if err != nil {
		return errors.Wrap(err, "failed on serialize assets")
	}
	if err := os.WriteFile(f.outPath, payload, 0o644); err != nil {
		return errors.Wrapf(err, "failed on write %s", f.outPath)
	}
	return nil
}

// ReadDump loads a previously written assets file.
func ReadDump(path string) ([]model.Asset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed on read %s", path)
	}

	var dump model.Object
	if err := json.Unmarshal(raw, &dump); err != nil {
		return nil, errors.Wrapf(err, "failed on parse %s", path)
	}
	return model.AssetsFrom(dump), nil
}
