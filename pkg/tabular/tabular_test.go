package tabular_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/restomap/pkg/geo"
	"github.com/agentstation/restomap/pkg/tabular"
)

func jakartaValidator() geo.Validator {
	return geo.NewValidator(geo.JakartaBounds())
}

func TestRowAccessors(t *testing.T) {
	row := tabular.Row{"lat": " -6.20 ", "lon": "106.80", "brand_name": "", "pricing": "abc"}

	v, ok := row.Get("lat")
	assert.True(t, ok)
	assert.Equal(t, " -6.20 ", v, "cell values are returned verbatim")

	_, ok = row.Get("brand_name")
	assert.False(t, ok, "empty cell is missing")

	_, ok = row.Get("city_name")
	assert.False(t, ok, "absent key is missing")

	f, ok := row.Float("lon")
	assert.True(t, ok)
	assert.Equal(t, 106.80, f)

	_, ok = row.Float("pricing")
	assert.False(t, ok, "non-numeric cell does not parse")
}

func TestHarmonize(t *testing.T) {
	aliases := map[string]string{
		"latitude":     "lat",
		"longitude":    "lon",
		"Nama Restoran": "restaurant_name",
	}

	t.Run("renames aliased columns", func(t *testing.T) {
		d := tabular.New("Nama Restoran", "latitude", "longitude", "Pricing")
		d.Append(tabular.Row{"Nama Restoran": "Sate Khas", "latitude": "-6.20", "longitude": "106.80", "Pricing": "$$"})

		out := tabular.Harmonize(d, aliases)

		assert.Equal(t, []string{"restaurant_name", "lat", "lon", "Pricing"}, out.Columns)
		name, ok := out.Rows[0].Get("restaurant_name")
		assert.True(t, ok)
		assert.Equal(t, "Sate Khas", name)
		_, ok = out.Rows[0].Get("Nama Restoran")
		assert.False(t, ok, "old column name must be gone")
	})

	t.Run("absent aliases are a no-op", func(t *testing.T) {
		d := tabular.New("lat", "lon", "brand_name")
		d.Append(tabular.Row{"lat": "-6.20", "lon": "106.80", "brand_name": "A"})

		out := tabular.Harmonize(d, aliases)
		assert.Equal(t, d.Columns, out.Columns)
		assert.Equal(t, d.Rows, out.Rows)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		d := tabular.New("latitude", "longitude")
		d.Append(tabular.Row{"latitude": "-6.20", "longitude": "106.80"})

		_ = tabular.Harmonize(d, aliases)

		assert.Equal(t, []string{"latitude", "longitude"}, d.Columns)
		_, ok := d.Rows[0].Get("latitude")
		assert.True(t, ok)
	})

	t.Run("keeps canonical column on collision", func(t *testing.T) {
		d := tabular.New("lat", "latitude", "lon")
		d.Append(tabular.Row{"lat": "-6.20", "latitude": "-9.99", "lon": "106.80"})

		out := tabular.Harmonize(d, aliases)
		assert.Equal(t, []string{"lat", "lon"}, out.Columns)
		v, _ := out.Rows[0].Get("lat")
		assert.Equal(t, "-6.20", v)
	})
}

func TestCleanCoordinates(t *testing.T) {
	t.Run("empty input is returned unchanged", func(t *testing.T) {
		d := tabular.New("lat", "lon")
		out, stats := tabular.CleanCoordinates(d, "lat", "lon", jakartaValidator())
		assert.True(t, out.Empty())
		assert.Equal(t, 0, stats.Before)
		assert.Equal(t, 0, stats.After)
	})

	t.Run("drops invalid rows and keeps counts", func(t *testing.T) {
		d := tabular.New("brand_name", "lat", "lon")
		d.Append(tabular.Row{"brand_name": "A", "lat": "-6.20", "lon": "106.80"})
		d.Append(tabular.Row{"brand_name": "B", "lat": "", "lon": "106.80"})        // missing lat
		d.Append(tabular.Row{"brand_name": "C", "lat": "-6.20", "lon": "200.0"})   // out of range
		d.Append(tabular.Row{"brand_name": "D", "lat": "not-a-number", "lon": "106.80"})
		d.Append(tabular.Row{"brand_name": "E", "lat": "-6.21", "lon": "106.81"})

		out, stats := tabular.CleanCoordinates(d, "lat", "lon", jakartaValidator())

		assert.Equal(t, 5, stats.Before)
		assert.Equal(t, 2, stats.After)
		assert.Equal(t, 3, stats.Dropped())
		require.Len(t, out.Rows, 2)
		a, _ := out.Rows[0].Get("brand_name")
		e, _ := out.Rows[1].Get("brand_name")
		assert.Equal(t, "A", a)
		assert.Equal(t, "E", e)
	})

	t.Run("idempotent", func(t *testing.T) {
		d := tabular.New("lat", "lon")
		d.Append(tabular.Row{"lat": "-6.20", "lon": "106.80"})
		d.Append(tabular.Row{"lat": "-6.20", "lon": "200.0"})

		once, _ := tabular.CleanCoordinates(d, "lat", "lon", jakartaValidator())
		twice, stats := tabular.CleanCoordinates(once, "lat", "lon", jakartaValidator())

		assert.Equal(t, once.Rows, twice.Rows)
		assert.Equal(t, 0, stats.Dropped())
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		d := tabular.New("lat", "lon")
		d.Append(tabular.Row{"lat": "-6.20", "lon": "200.0"})

		_, _ = tabular.CleanCoordinates(d, "lat", "lon", jakartaValidator())
		assert.Equal(t, 1, d.Len())
	})
}

func TestReadCSV(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		in := "brand_name,lat,lon\nA,-6.20,106.80\nB,-6.21,106.81\n"
		d, err := tabular.ReadCSV(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, []string{"brand_name", "lat", "lon"}, d.Columns)
		require.Equal(t, 2, d.Len())
		brand, _ := d.Rows[1].Get("brand_name")
		assert.Equal(t, "B", brand)
	})

	t.Run("empty input is a parse error", func(t *testing.T) {
		_, err := tabular.ReadCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("ragged record is a parse error", func(t *testing.T) {
		_, err := tabular.ReadCSV(strings.NewReader("a,b\n1\n"))
		assert.Error(t, err)
	})
}

func TestWriteCSV(t *testing.T) {
	d := tabular.New("brand_name", "lat", "lon")
	d.Append(tabular.Row{"brand_name": "A", "lat": "-6.20", "lon": "106.80"})
	d.Append(tabular.Row{"brand_name": "B", "lat": "-6.21"}) // missing lon

	var sb strings.Builder
	require.NoError(t, tabular.WriteCSV(&sb, d))

	out, err := tabular.ReadCSV(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, d.Columns, out.Columns)
	require.Equal(t, 2, out.Len())
	_, ok := out.Rows[1].Get("lon")
	assert.False(t, ok)
}
