package rarity

import (
	"math"
	"testing"

	"github.com/seaview/explorer/internal/model"
)

// assetWithCounts builds an asset whose traits carry the given counts.
func assetWithCounts(tokenID string, counts ...float64) model.Asset {
	traits := make([]any, len(counts))
	for i, count := range counts {
		traits[i] = map[string]any{
			"trait_type":  "trait",
			"value":       "v",
			"trait_count": count,
		}
	}
	return model.Asset{"token_id": tokenID, "traits": traits}
}

func TestScore(t *testing.T) {
	asset := assetWithCounts("1", 100, 50)

	got := Score(asset, 1000)
	want := 0.005 // (100/1000) * (50/1000)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected score %v, got %v", want, got)
	}
}

func TestScoreNoTraits(t *testing.T) {
	asset := model.Asset{"token_id": "1"}
	if got := Score(asset, 1000); got != 1 {
		t.Errorf("expected score 1 for traitless asset, got %v", got)
	}
}

func TestRankAscending(t *testing.T) {
	common := assetWithCounts("common", 900, 800)
	rare := assetWithCounts("rare", 10, 5)
	middling := assetWithCounts("middling", 400, 300)

	ranked := Rank([]model.Asset{common, rare, middling}, 1000)

	want := []string{"rare", "middling", "common"}
	for i, id := range want {
		if ranked[i].Asset.TokenID() != id {
			t.Errorf("position %d: expected %q, got %q", i, id, ranked[i].Asset.TokenID())
		}
	}
	if ranked[0].Score >= ranked[1].Score || ranked[1].Score >= ranked[2].Score {
		t.Errorf("expected strictly ascending scores, got %v %v %v",
			ranked[0].Score, ranked[1].Score, ranked[2].Score)
	}
}

func TestTop(t *testing.T) {
	assets := []model.Asset{
		assetWithCounts("a", 10),
		assetWithCounts("b", 20),
		assetWithCounts("c", 30),
	}
	ranked := Rank(assets, 100)

	if got := len(Top(ranked, 2)); got != 2 {
		t.Errorf("expected top 2, got %d", got)
	}
	if got := len(Top(ranked, 20)); got != 3 {
		t.Errorf("expected all 3 when fewer than requested, got %d", got)
	}
}
