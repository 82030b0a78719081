package recommend

import (
	"sort"
	"strings"

	"smartcart-service/internal/model"
)

// DefaultCutoff is the minimum similarity for a fuzzy catalog match.
const DefaultCutoff = 0.75

// similarity: normalized Damerau-Levenshtein in [0,1].
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	d := damerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 1 - float64(d)/float64(m)
}

// tokenSort makes the comparison robust to word order.
func tokenSort(s string) string {
	if s == "" {
		return s
	}
	t := strings.Fields(s)
	sort.Strings(t)
	return strings.Join(t, " ")
}

func bestSimilarity(a, b string) float64 {
	x := similarity(a, b)
	if y := similarity(tokenSort(a), tokenSort(b)); y > x {
		return y
	}
	return x
}

// ResolveCart maps free-form inputs to canonical catalog names. Blank inputs
// are dropped. Exact case-insensitive matches win; otherwise the closest
// known name at or above cutoff is used. Unresolved names pass through
// unchanged; downstream scoring simply finds no signal for them.
// Candidates are scanned in sorted order so similarity ties resolve to the
// lexicographically smaller name.
func ResolveCart(raw []string, art *model.Artifacts, cutoff float64) []string {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	known := art.KnownLower()

	out := make([]string, 0, len(raw))
	for _, x := range raw {
		if strings.TrimSpace(x) == "" {
			continue
		}
		lx := strings.ToLower(x)
		if canon, ok := art.LowerToName[lx]; ok {
			out = append(out, canon)
			continue
		}
		best, bestName := -1.0, ""
		for _, cand := range known {
			if s := bestSimilarity(lx, cand); s > best {
				best, bestName = s, cand
			}
		}
		if bestName != "" && best >= cutoff {
			out = append(out, art.LowerToName[bestName])
		} else {
			out = append(out, x)
		}
	}
	return out
}
