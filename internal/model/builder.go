package model

import (
	"math/rand"
	"sort"
	"strings"

	"smartcart-service/internal/menu"
)

// sampleSeed keeps subsampled builds reproducible.
const sampleSeed = 42

// Build derives the artifact bundle from per-order item lists. Item
// classification and frequency rankings always cover the full corpus; the
// co-occurrence table is computed over a fixed-seed subsample of sampleN
// orders when sampleN > 0.
func Build(orders [][]string, sampleN int) *Artifacts {
	seen := map[string]struct{}{}
	for _, items := range orders {
		for _, it := range items {
			seen[it] = struct{}{}
		}
	}
	items := make([]string, 0, len(seen))
	for it := range seen {
		items = append(items, it)
	}
	sort.Strings(items)

	types := make(map[string]string, len(items))
	tags := make(map[string]menu.TagSet, len(items))
	lower := make(map[string]string, len(items))
	for _, it := range items {
		types[it] = menu.ItemType(it)
		tags[it] = menu.Tags(it)
		lower[strings.ToLower(it)] = it
	}

	return &Artifacts{
		ItemTypes:   types,
		ItemTags:    tags,
		TopByType:   rankByType(orders, types),
		CoOccur:     buildCoMatrix(subsample(orders, sampleN)),
		Items:       items,
		LowerToName: lower,
		OrderCount:  len(orders),
		SampleN:     sampleN,
	}
}

// rankByType counts total occurrences of each item (repeats within an order
// count multiply) and ranks them per coarse type. Items typed "other" are
// excluded from fallback candidacy. Ties break by name ascending.
func rankByType(orders [][]string, types map[string]string) map[string][]RankedItem {
	counts := map[string]int{}
	for _, items := range orders {
		for _, it := range items {
			counts[it]++
		}
	}

	names := make([]string, 0, len(counts))
	for it := range counts {
		names = append(names, it)
	}
	sort.Strings(names)

	top := map[string][]RankedItem{}
	for _, it := range names {
		switch t := types[it]; t {
		case menu.TypeMain, menu.TypeSide, menu.TypeDip, menu.TypeDrink:
			top[t] = append(top[t], RankedItem{Name: it, Count: counts[it]})
		}
	}
	for t := range top {
		rs := top[t]
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].Count != rs[j].Count {
				return rs[i].Count > rs[j].Count
			}
			return rs[i].Name < rs[j].Name
		})
	}
	return top
}

// buildCoMatrix builds the directed, row-normalized co-occurrence table:
// value[a][b] = count(orders with both a and b) / count(orders with a).
// Items are deduplicated within each order first, so repeats contribute no
// extra signal. Zero entries are never materialized.
func buildCoMatrix(orders [][]string) map[string]map[string]float64 {
	itemCount := map[string]int{}
	pairCount := map[string]map[string]int{}

	for _, items := range orders {
		uniq := dedupe(items)
		for _, a := range uniq {
			itemCount[a]++
		}
		for _, a := range uniq {
			for _, b := range uniq {
				if a == b {
					continue
				}
				row := pairCount[a]
				if row == nil {
					row = map[string]int{}
					pairCount[a] = row
				}
				row[b]++
			}
		}
	}

	norm := make(map[string]map[string]float64, len(pairCount))
	for a, row := range pairCount {
		denom := itemCount[a]
		if denom == 0 {
			denom = 1 // degenerate, cannot occur for items seen in any order
		}
		out := make(map[string]float64, len(row))
		for b, c := range row {
			out[b] = float64(c) / float64(denom)
		}
		norm[a] = out
	}
	return norm
}

// dedupe preserves first-encounter order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// subsample picks n orders without replacement using a fixed seed, so
// repeated builds over the same corpus agree.
func subsample(orders [][]string, n int) [][]string {
	if n <= 0 || n >= len(orders) {
		return orders
	}
	idx := rand.New(rand.NewSource(sampleSeed)).Perm(len(orders))[:n]
	sort.Ints(idx)
	out := make([][]string, 0, n)
	for _, i := range idx {
		out = append(out, orders[i])
	}
	return out
}
