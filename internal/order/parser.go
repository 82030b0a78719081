// Package order extracts purchased item names from raw order payloads.
package order

import (
	"strings"

	"github.com/goccy/go-json"
)

type itemDetail struct {
	ItemName string `json:"item_name"`
}

type subOrder struct {
	ItemDetails []itemDetail `json:"item_details"`
}

type payload struct {
	Orders []subOrder `json:"orders"`
}

// Administrative lines share the payload shape with real items; anything
// whose lowercased name contains one of these is not a product.
var nonItemSubstrings = []string{"memo", "blankline", "asap", "order"}

// ExtractItemNames pulls every item name out of one order payload, in
// encounter order. Malformed payloads yield nil: a bad record degrades to
// an empty item list and never aborts a batch build.
func ExtractItemNames(raw string) []string {
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	var names []string
	for _, o := range p.Orders {
		for _, it := range o.ItemDetails {
			if it.ItemName != "" {
				names = append(names, it.ItemName)
			}
		}
	}
	return names
}

// CleanItemList drops administrative entries (memos, metadata lines).
func CleanItemList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		l := strings.ToLower(it)
		if containsAnySub(l, nonItemSubstrings) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func containsAnySub(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
