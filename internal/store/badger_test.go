package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcart-service/internal/model"
)

func openTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)

	art := model.Build([][]string{
		{"Wings Combo", "Seasoned Fries", "Iced Tea"},
		{"Wings Combo", "Spicy Ranch Dip"},
	}, 0)
	require.NoError(t, st.Save(DefaultArtifact, art))

	got, err := st.Load(DefaultArtifact)
	require.NoError(t, err)
	// the bundle must round-trip all nested maps and sets faithfully
	assert.Equal(t, art, got)
}

func TestLoadAbsent(t *testing.T) {
	st := openTestStore(t)
	_, err := st.Load("never-built")
	require.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestSaveReplaces(t *testing.T) {
	st := openTestStore(t)

	first := model.Build([][]string{{"Wings Combo"}}, 0)
	second := model.Build([][]string{{"Iced Tea"}, {"Iced Tea", "Wings Combo"}}, 0)
	require.NoError(t, st.Save(DefaultArtifact, first))
	require.NoError(t, st.Save(DefaultArtifact, second))

	got, err := st.Load(DefaultArtifact)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
