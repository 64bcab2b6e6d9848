// Package rarity scores assets by how uncommon their trait combinations are.
package rarity

import (
	"sort"

	"github.com/seaview/explorer/internal/model"
)

// ScoredAsset is an asset annotated with its computed rarity score. Lower
// scores are rarer.
type ScoredAsset struct {
	Asset model.Asset
	Score float64
}

// Score computes the rarity of an asset as the product over its traits of
// trait_count/totalSupply. Traits are treated as independent, which they
// are not in reality; the product is an approximation, not a probability.
func Score(asset model.Asset, totalSupply int) float64 {
	score := 1.0
	for _, trait := range asset.Traits() {
		score *= float64(trait.Count()) / float64(totalSupply)
	}
	return score
}

// Rank scores every asset and returns them sorted rarest first.
func Rank(assets []model.Asset, totalSupply int) []ScoredAsset {
	scored := make([]ScoredAsset, 0, len(assets))
	for _, asset := range assets {
		scored = append(scored, ScoredAsset{
			Asset: asset,
			Score: Score(asset, totalSupply),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
	return scored
}

// Top returns the first n ranked assets (or fewer when less are available).
func Top(ranked []ScoredAsset, n int) []ScoredAsset {
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[:n]
}
