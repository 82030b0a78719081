package recommend

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcart-service/internal/menu"
	"smartcart-service/internal/model"
)

// artWith builds a bundle by hand so tests control co-occurrence values and
// rankings exactly.
func artWith(co map[string]map[string]float64, top map[string][]model.RankedItem, names ...string) *model.Artifacts {
	a := &model.Artifacts{
		ItemTypes:   map[string]string{},
		ItemTags:    map[string]menu.TagSet{},
		TopByType:   top,
		CoOccur:     co,
		LowerToName: map[string]string{},
	}
	if a.TopByType == nil {
		a.TopByType = map[string][]model.RankedItem{}
	}
	if a.CoOccur == nil {
		a.CoOccur = map[string]map[string]float64{}
	}
	for _, n := range names {
		a.ItemTypes[n] = menu.ItemType(n)
		a.ItemTags[n] = menu.Tags(n)
		a.LowerToName[strings.ToLower(n)] = n
		a.Items = append(a.Items, n)
	}
	sort.Strings(a.Items)
	return a
}

func popularCatalog() map[string][]model.RankedItem {
	return map[string][]model.RankedItem{
		menu.TypeMain:  {{Name: "Wings Combo", Count: 50}, {Name: "Chicken Feast", Count: 40}},
		menu.TypeSide:  {{Name: "Seasoned Fries", Count: 30}, {Name: "Corn Sticks", Count: 25}},
		menu.TypeDip:   {{Name: "Ranch Dip", Count: 20}},
		menu.TypeDrink: {{Name: "Cola Soda", Count: 10}},
	}
}

func TestRecommendModelNotReady(t *testing.T) {
	_, err := Recommend([]string{"Wings Combo"}, nil, DefaultOptions())
	require.ErrorIs(t, err, ErrModelNotReady)

	empty := &model.Artifacts{}
	_, err = Recommend(nil, empty, DefaultOptions())
	require.ErrorIs(t, err, ErrModelNotReady)
}

func TestRecommendSpicyBonusWithoutSpicyCart(t *testing.T) {
	co := map[string]map[string]float64{
		"Chicken Feast": {"Mild Dip": 10, "Spicy Ranch Dip": 10},
	}
	art := artWith(co, nil, "Chicken Feast", "Mild Dip", "Spicy Ranch Dip")

	opts := DefaultOptions()
	opts.TopN = 2
	opts.MaxPerType = 2
	recs, err := Recommend([]string{"Chicken Feast"}, art, opts)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// both dips get the same absent-type boost (10 * 1.2); the spicy one
	// adds 10 * 0.3 on top because nothing in the cart is spicy yet
	assert.Equal(t, Scored{Item: "Spicy Ranch Dip", Score: 15.0}, recs[0])
	assert.Equal(t, Scored{Item: "Mild Dip", Score: 12.0}, recs[1])
	assert.InDelta(t, 10*0.3, recs[0].Score-recs[1].Score, 1e-9)
}

func TestRecommendSpicyBonusShrinksWhenCartSpicy(t *testing.T) {
	co := map[string]map[string]float64{
		"Spicy Wings": {"Mild Dip": 10, "Spicy Ranch Dip": 10},
	}
	art := artWith(co, nil, "Spicy Wings", "Mild Dip", "Spicy Ranch Dip")

	opts := DefaultOptions()
	opts.TopN = 2
	opts.MaxPerType = 2
	recs, err := Recommend([]string{"Spicy Wings"}, art, opts)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, Scored{Item: "Spicy Ranch Dip", Score: 13.0}, recs[0])
	assert.Equal(t, Scored{Item: "Mild Dip", Score: 12.0}, recs[1])
}

func TestRecommendDrinkBoost(t *testing.T) {
	co := map[string]map[string]float64{
		"Wings Combo": {"Cola Soda": 1.0, "Onion Ring Platter": 1.0},
	}
	art := artWith(co, nil, "Wings Combo", "Cola Soda", "Onion Ring Platter")

	opts := DefaultOptions()
	opts.TopN = 3
	recs, err := Recommend([]string{"Wings Combo"}, art, opts)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	// absent drink type is boosted 1.2*1.5 vs 1.2 for other absent types
	assert.Equal(t, "Cola Soda", recs[0].Item)
	assert.InDelta(t, 1.8, recs[0].Score, 1e-9)
}

func TestRecommendExcludesCartAndBlacklist(t *testing.T) {
	co := map[string]map[string]float64{
		"Wings Combo": {
			"Wings Combo":    0.9, // self, must never surface
			"Seasoned Fries": 0.8,
			"Extra Sauce":    0.9, // blacklisted
		},
		"Seasoned Fries": {"Wings Combo": 0.7},
	}
	art := artWith(co, nil, "Wings Combo", "Seasoned Fries", "Extra Sauce")

	recs, err := Recommend([]string{"Wings Combo"}, art, DefaultOptions())
	require.NoError(t, err)
	for _, r := range recs {
		assert.NotEqual(t, "Wings Combo", r.Item)
		assert.NotEqual(t, "Extra Sauce", r.Item)
	}
	require.NotEmpty(t, recs)
	assert.Equal(t, "Seasoned Fries", recs[0].Item)
}

func TestRecommendTypeDiversity(t *testing.T) {
	co := map[string]map[string]float64{
		"Wings Combo": {
			"Seasoned Fries": 0.9,
			"Corn Sticks":    0.8,
			"Ranch Dip":      0.5,
			"Cola Soda":      0.2,
		},
	}
	art := artWith(co, nil, "Wings Combo", "Seasoned Fries", "Corn Sticks", "Ranch Dip", "Cola Soda")

	recs, err := Recommend([]string{"Wings Combo"}, art, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	seenTypes := map[string]bool{}
	for _, r := range recs {
		tp := art.TypeOf(r.Item)
		assert.False(t, seenTypes[tp], "type %s picked twice", tp)
		seenTypes[tp] = true
	}
	// Corn Sticks loses to Seasoned Fries despite outscoring dip and drink
	for _, r := range recs {
		assert.NotEqual(t, "Corn Sticks", r.Item)
	}
}

func TestRecommendEmptyCartFallback(t *testing.T) {
	art := artWith(nil, popularCatalog(),
		"Wings Combo", "Chicken Feast", "Seasoned Fries", "Corn Sticks", "Ranch Dip", "Cola Soda")

	recs, err := Recommend(nil, art, DefaultOptions())
	require.NoError(t, err)

	// most popular item per type, fixed priority order, all scored zero
	require.Equal(t, []Scored{
		{Item: "Wings Combo"},
		{Item: "Seasoned Fries"},
		{Item: "Ranch Dip"},
	}, recs)

	// repeated calls agree
	again, err := Recommend(nil, art, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, recs, again)
}

func TestRecommendFallbackSkipsCartSelectedAndBlacklisted(t *testing.T) {
	top := popularCatalog()
	top[menu.TypeDip] = []model.RankedItem{{Name: "Extra Sauce", Count: 99}, {Name: "Ranch Dip", Count: 20}}
	art := artWith(nil, top,
		"Wings Combo", "Chicken Feast", "Seasoned Fries", "Corn Sticks", "Extra Sauce", "Ranch Dip", "Cola Soda")

	recs, err := Recommend([]string{"Wings Combo"}, art, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []Scored{
		{Item: "Chicken Feast"}, // cart already holds the top main
		{Item: "Seasoned Fries"},
		{Item: "Ranch Dip"}, // Extra Sauce blacklisted
	}, recs)
}

func TestRecommendTopNCap(t *testing.T) {
	art := artWith(nil, popularCatalog(),
		"Wings Combo", "Chicken Feast", "Seasoned Fries", "Corn Sticks", "Ranch Dip", "Cola Soda")

	opts := DefaultOptions()
	opts.TopN = 2
	recs, err := Recommend(nil, art, opts)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	opts.TopN = 10
	recs, err = Recommend(nil, art, opts)
	require.NoError(t, err)
	// one per type with the default cap: four types available
	assert.Len(t, recs, 4)
}

func TestRecommendScoreRounding(t *testing.T) {
	co := map[string]map[string]float64{
		"Wings Combo": {"Chicken Feast": 1.0 / 3.0},
	}
	art := artWith(co, nil, "Wings Combo", "Chicken Feast")

	recs, err := Recommend([]string{"Wings Combo"}, art, DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, 0.3333, recs[0].Score)
}
