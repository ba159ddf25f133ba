package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/restomap/internal/sources"
	"github.com/agentstation/restomap/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []sources.ID{sources.MatchedID, sources.ESBID, sources.JakartaID}, sources.IDs())
	assert.True(t, sources.ESBID.IsValid())
	assert.False(t, sources.ID("unknown").IsValid())
	assert.Equal(t, "jakarta", sources.JakartaID.String())
}

func TestSchemaDefaults(t *testing.T) {
	for _, id := range sources.IDs() {
		assert.Equal(t, id.String(), id.Schema().Dataset)
	}
	assert.Equal(t, "lat", sources.ESBID.Schema().LatField)
	assert.Equal(t, "other", sources.ID("other").Schema().Dataset)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "esb.csv", "brandName,latitude,longitude\nA,-6.20,106.80\n")

	d, err := sources.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"brandName", "latitude", "longitude"}, d.Columns)
	require.Equal(t, 1, d.Len())
	brand, ok := d.Rows[0].Get("brandName")
	assert.True(t, ok)
	assert.Equal(t, "A", brand)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := sources.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadMalformedCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ragged.csv", "a,b\n1,2,3\n")

	_, err := sources.Load(path)
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	matched := writeFile(t, dir, "matched.csv", "brandName_esb,branchName_esb,latitude_esb,longitude_esb\nA,1,-6.20,106.80\n")
	esb := writeFile(t, dir, "esb.csv", "brandName,branchName,latitude,longitude\nB,2,-6.21,106.81\n")
	jakarta := writeFile(t, dir, "jakarta.csv", "Nama Restoran,latitude,longitude\nC,-6.22,106.82\n")

	m, e, j, err := sources.LoadAll(matched, esb, jakarta)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, e.Len())
	assert.Equal(t, 1, j.Len())

	_, _, _, err = sources.LoadAll(matched, filepath.Join(dir, "missing.csv"), jakarta)
	assert.Error(t, err)
}
