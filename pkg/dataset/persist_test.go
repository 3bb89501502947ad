package dataset

import (
	"path/filepath"
	"testing"

	"fedtools/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	dts := []dates.Date{
		mustDate(t, "beigebook201901.htm", dates.WidthMonthly),
		mustDate(t, "beigebook201910.htm", dates.WidthMonthly),
	}
	ds, err := Assemble("Beige_Book", dts, []string{"january body", "october body"})
	require.NoError(t, err)
	return ds
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "beige.gob")

	require.NoError(t, ds.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ds.Column(), loaded.Column())
	assert.Equal(t, ds.Rows(), loaded.Rows())
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	ds := testDataset(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "beige.pkl")

	require.NoError(t, ds.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	ds := testDataset(t)

	for _, path := range []string{"beige.csv", "beige", "beige.json"} {
		err := ds.Save(filepath.Join(t.TempDir(), path))
		assert.ErrorIs(t, err, ErrUnsupportedExtension, path)
	}
}

func TestSaveAcceptsLegacyExtensions(t *testing.T) {
	ds := testDataset(t)
	dir := t.TempDir()

	assert.NoError(t, ds.Save(filepath.Join(dir, "a.pkl")))
	assert.NoError(t, ds.Save(filepath.Join(dir, "b.pickle")))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.gob"))
	assert.Error(t, err)
}
