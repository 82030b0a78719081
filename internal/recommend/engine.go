// Package recommend scores candidate menu items against a cart using the
// prebuilt co-occurrence artifacts, with type-diversity boosting, spicy
// awareness and popularity fallback.
package recommend

import (
	"errors"
	"math"
	"sort"

	"smartcart-service/internal/menu"
	"smartcart-service/internal/model"
)

// ErrModelNotReady signals that no artifact bundle is available to score
// against. Callers must build (or load) a model first.
var ErrModelNotReady = errors.New("model not ready")

// DefaultBlacklist: packaging, fees and condiments, never worth suggesting.
var DefaultBlacklist = map[string]bool{
	"Plastic Fork":     true,
	"Plastic Knife":    true,
	"Plastic Straw":    true,
	"Plastic Utensils": true,
	"Delivery Fee":     true,
	"Unavailable Item": true,
	"Ketchup Pack":     true,
	"Seasoning Pack":   true,
	"Extra Sauce":      true,
}

// fallbackOrder is the fixed type priority for popularity backfill.
var fallbackOrder = []string{menu.TypeMain, menu.TypeSide, menu.TypeDip, menu.TypeDrink}

type Options struct {
	TopN        int
	BoostFactor float64
	MaxPerType  int
	Blacklist   map[string]bool
}

func DefaultOptions() Options {
	return Options{TopN: 3, BoostFactor: 1.2, MaxPerType: 1, Blacklist: DefaultBlacklist}
}

// Scored is one ranked recommendation. Score is 0 for pure-fallback picks.
type Scored struct {
	Item  string  `json:"item"`
	Score float64 `json:"score"`
}

// Recommend ranks up to opts.TopN items to add to the cart. It is a pure
// function of (cart, artifacts, opts): identical inputs produce identical
// output, with ties broken by item name ascending.
func Recommend(cart []string, art *model.Artifacts, opts Options) ([]Scored, error) {
	if art == nil || len(art.Items) == 0 {
		return nil, ErrModelNotReady
	}
	if opts.TopN <= 0 {
		opts.TopN = 3
	}
	if opts.MaxPerType <= 0 {
		opts.MaxPerType = 1
	}
	if opts.BoostFactor <= 0 {
		opts.BoostFactor = 1.2
	}
	if opts.Blacklist == nil {
		opts.Blacklist = DefaultBlacklist
	}

	inCart := make(map[string]bool, len(cart))
	cartTypes := map[string]int{}
	cartHasSpicy := false
	for _, it := range cart {
		inCart[it] = true
		cartTypes[art.TypeOf(it)]++
		if art.TagsOf(it).Has(menu.TagSpicy) {
			cartHasSpicy = true
		}
	}

	// Accumulate weighted co-occurrence across all cart items. A spicy
	// candidate gets a bonus, larger when the cart has no spicy item yet.
	// A candidate whose type is missing from the cart is boosted, drinks
	// extra so carts without one tend to get a drink suggestion.
	score := map[string]float64{}
	for _, it := range cart {
		row, ok := art.CoOccur[it]
		if !ok {
			continue
		}
		for cand, v := range row {
			if inCart[cand] || opts.Blacklist[cand] {
				continue
			}
			bonus := 0.0
			if art.TagsOf(cand).Has(menu.TagSpicy) {
				if cartHasSpicy {
					bonus = v * 0.1
				} else {
					bonus = v * 0.3
				}
			}
			t := art.TypeOf(cand)
			switch {
			case cartTypes[t] == 0 && t == menu.TypeDrink:
				score[cand] += v*(opts.BoostFactor*1.5) + bonus
			case cartTypes[t] == 0:
				score[cand] += v*opts.BoostFactor + bonus
			default:
				score[cand] += v + bonus
			}
		}
	}

	ranked := make([]Scored, 0, len(score))
	for it, sc := range score {
		ranked = append(ranked, Scored{Item: it, Score: sc})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item < ranked[j].Item
	})

	usedType := map[string]int{}
	out := make([]Scored, 0, opts.TopN)
	for _, c := range ranked {
		t := art.TypeOf(c.Item)
		if usedType[t] >= opts.MaxPerType {
			continue
		}
		out = append(out, Scored{Item: c.Item, Score: round4(c.Score)})
		usedType[t]++
		if len(out) >= opts.TopN {
			break
		}
	}

	// Popularity fallback: walk types in fixed priority order, appending the
	// most purchased eligible items at score 0 until TopN is reached. The
	// per-type cap applies here too, so an empty cart yields a diverse set.
	if len(out) < opts.TopN {
		picked := make(map[string]bool, len(out))
		for _, r := range out {
			picked[r.Item] = true
		}
	fill:
		for _, t := range fallbackOrder {
			for _, cand := range art.TopByType[t] {
				if usedType[t] >= opts.MaxPerType {
					continue fill
				}
				if inCart[cand.Name] || picked[cand.Name] || opts.Blacklist[cand.Name] {
					continue
				}
				out = append(out, Scored{Item: cand.Name})
				picked[cand.Name] = true
				usedType[t]++
				if len(out) >= opts.TopN {
					break fill
				}
			}
		}
	}
	return out, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
