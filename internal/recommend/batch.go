package recommend

import (
	"fmt"

	"smartcart-service/internal/model"
)

// Batch input and output column names.
var (
	ItemColumns           = []string{"item1", "item2", "item3"}
	RecommendationColumns = []string{"RECOMMENDATION 1", "RECOMMENDATION 2", "RECOMMENDATION 3"}
)

// BatchPredict resolves each row's raw item fields into a cart, scores it,
// and returns the rows with the recommendation columns filled in rank order.
// Blank item fields contribute nothing; unused output slots stay empty.
// Input rows are not mutated.
func BatchPredict(rows []map[string]string, art *model.Artifacts, cutoff float64, opts Options) ([]map[string]string, error) {
	if art == nil {
		return nil, ErrModelNotReady
	}
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		raw := make([]string, 0, len(ItemColumns))
		for _, col := range ItemColumns {
			raw = append(raw, row[col])
		}
		cart := ResolveCart(raw, art, cutoff)
		recs, err := Recommend(cart, art, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		m := make(map[string]string, len(row)+len(RecommendationColumns))
		for k, v := range row {
			m[k] = v
		}
		for j, col := range RecommendationColumns {
			if j < len(recs) {
				m[col] = recs[j].Item
			} else {
				m[col] = ""
			}
		}
		out[i] = m
	}
	return out, nil
}
