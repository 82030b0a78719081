package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnyMapsCSV(t *testing.T) {
	src := "name,qty\nWings Combo,2\nRanch Dip,1\n"
	rows, err := ReadAnyMaps(strings.NewReader(src), "orders.csv", 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Wings Combo", rows[0]["name"])
	assert.Equal(t, "1", rows[1]["qty"])
}

func TestReadAnyMapsSkipsEmptyRows(t *testing.T) {
	src := "name\nWings Combo\n\n  \nFries\n"
	rows, err := ReadAnyMaps(strings.NewReader(src), "orders.csv", 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestReadAnyMapsUnsupported(t *testing.T) {
	_, err := ReadAnyMaps(strings.NewReader(""), "orders.pdf", 1)
	require.Error(t, err)
}

func TestPickHeaderFillsBlanks(t *testing.T) {
	h := pickHeader([][]string{{"name", "", "qty"}}, 1)
	assert.Equal(t, []string{"name", "Column 2", "qty"}, h)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	headers := []string{"item1", "RECOMMENDATION 1"}
	rows := []map[string]string{
		{"item1": "Wings Combo", "RECOMMENDATION 1": "Seasoned Fries"},
		{"item1": "Iced Tea"}, // missing key becomes empty cell
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, headers, rows))

	got, err := ReadAnyMaps(&buf, "out.csv", 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Seasoned Fries", got[0]["RECOMMENDATION 1"])
	assert.Equal(t, "Iced Tea", got[1]["item1"])
}
