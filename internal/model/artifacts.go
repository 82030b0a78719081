// Package model builds and holds the recommendation artifacts: item
// classification maps, frequency rankings and the normalized co-occurrence
// table. Artifacts are immutable snapshots; one build pass produces them and
// scoring reads them without mutation.
package model

import (
	"sort"

	"smartcart-service/internal/menu"
)

// RankedItem is one entry of a per-type frequency ranking.
type RankedItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Artifacts is the full model bundle produced by Build.
type Artifacts struct {
	// canonical item name -> coarse type / tag set
	ItemTypes map[string]string      `json:"item_types"`
	ItemTags  map[string]menu.TagSet `json:"item_tags"`

	// coarse type -> items sorted by global purchase count desc, name asc
	TopByType map[string][]RankedItem `json:"top_by_type"`

	// directed, row-normalized co-occurrence: CoOccur[a][b] ~ P(b|a).
	// Absent entries mean zero observed co-occurrence.
	CoOccur map[string]map[string]float64 `json:"co_occur"`

	// sorted canonical names, plus the case-insensitive lookup index
	Items       []string          `json:"items"`
	LowerToName map[string]string `json:"lower_to_name"`

	OrderCount int `json:"order_count"`
	SampleN    int `json:"sample_n,omitempty"`
}

// TypeOf returns the coarse type of an item, "other" for unknown names.
func (a *Artifacts) TypeOf(item string) string {
	if t, ok := a.ItemTypes[item]; ok {
		return t
	}
	return menu.TypeOther
}

// TagsOf returns the tag set of an item; unknown names have no tags.
func (a *Artifacts) TagsOf(item string) menu.TagSet {
	return a.ItemTags[item]
}

// KnownLower returns the lowercased catalog names in sorted order, for
// deterministic fuzzy-match scans.
func (a *Artifacts) KnownLower() []string {
	out := make([]string, 0, len(a.LowerToName))
	for k := range a.LowerToName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
