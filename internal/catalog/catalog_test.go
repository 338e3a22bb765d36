package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/routeguided/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cat, err := Load(filepath.Join("testdata", "route_guide_db.json"))
	require.NoError(t, err)

	assert.Equal(t, 6, cat.Len())
	assert.Equal(t, "Patriots Path, Mendham, NJ 07945, USA",
		cat.Lookup(model.Point{Latitude: 407838351, Longitude: -746143763}))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does_not_exist.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0644))

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataLoad)
}

func TestLookup_Miss(t *testing.T) {
	cat := New([]model.Feature{
		{Name: "A", Location: model.Point{Latitude: 10000000, Longitude: 10000000}},
	})

	// Near misses are still misses: matching is exact integer equality
	assert.Equal(t, "", cat.Lookup(model.Point{}))
	assert.Equal(t, "", cat.Lookup(model.Point{Latitude: 10000000, Longitude: 10000001}))
	assert.Equal(t, "", cat.Lookup(model.Point{Latitude: 9999999, Longitude: 10000000}))
}

func TestLookup_DuplicateCoordinatesFirstWins(t *testing.T) {
	p := model.Point{Latitude: 407838351, Longitude: -746143763}

	cat := New([]model.Feature{
		{Name: "first", Location: p},
		{Name: "second", Location: p},
	})

	assert.Equal(t, "first", cat.Lookup(p))
}

func TestLookup_UnnamedFeature(t *testing.T) {
	// An unnamed record still occupies its location: the lookup result
	// is indistinguishable from a miss
	p := model.Point{Latitude: 1, Longitude: 2}

	cat := New([]model.Feature{{Location: p}})

	assert.Equal(t, "", cat.Lookup(p))
}
