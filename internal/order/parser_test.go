package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractItemNames(t *testing.T) {
	raw := `{"orders":[
		{"item_details":[{"item_name":"Wings Combo"},{"item_name":"Ranch Dip"}]},
		{"item_details":[{"item_name":"Iced Tea"}]}
	]}`
	assert.Equal(t, []string{"Wings Combo", "Ranch Dip", "Iced Tea"}, ExtractItemNames(raw))
}

func TestExtractItemNamesMalformed(t *testing.T) {
	// parse failures degrade to an empty list, never an error
	assert.Nil(t, ExtractItemNames(`{oops`))
	assert.Nil(t, ExtractItemNames(``))
	assert.Nil(t, ExtractItemNames(`[1,2,3]`))
}

func TestExtractItemNamesSkipsBlankNames(t *testing.T) {
	raw := `{"orders":[{"item_details":[{"item_name":""},{"item_name":"Fries"}]}]}`
	assert.Equal(t, []string{"Fries"}, ExtractItemNames(raw))
}

func TestCleanItemList(t *testing.T) {
	in := []string{"Wings Combo", "Memo Line", "BLANKLINE", "Asap Request", "Order Note", "Fries"}
	assert.Equal(t, []string{"Wings Combo", "Fries"}, CleanItemList(in))
}

func TestCleanItemListEmpty(t *testing.T) {
	assert.Empty(t, CleanItemList(nil))
}
