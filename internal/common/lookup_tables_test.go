package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAircraftSpeedTable_DefaultsUnknownModel(t *testing.T) {
	table := NewAircraftSpeedTable(map[string]float64{"Boeing 737-800": 842})

	kmh, ok := table.CruiseSpeed("Boeing 737-800")
	assert.True(t, ok)
	assert.Equal(t, 842.0, kmh)

	kmh, ok = table.CruiseSpeed("Concorde")
	assert.False(t, ok)
	assert.Equal(t, DefaultCruiseSpeedKmh, kmh)

	var empty *AircraftSpeedTable
	kmh, _ = empty.CruiseSpeed("Boeing 737-800")
	assert.Equal(t, DefaultCruiseSpeedKmh, kmh)
}

func TestTaxiTimeTable_Fallbacks(t *testing.T) {
	withDefault := NewTaxiTimeTable(map[string]TaxiTime{
		"Default": {TaxiOut: 12, TaxiIn: 5},
		"jfk":     {TaxiOut: 24, TaxiIn: 10},
	})

	assert.Equal(t, 24, withDefault.TaxiOut("JFK"))
	assert.Equal(t, 10, withDefault.TaxiIn("jfk"))
	assert.Equal(t, 12, withDefault.TaxiOut("IST"))
	assert.Equal(t, 5, withDefault.TaxiIn("IST"))

	noDefault := NewTaxiTimeTable(map[string]TaxiTime{"JFK": {TaxiOut: 24, TaxiIn: 10}})
	assert.Equal(t, DefaultTaxiOutMinutes, noDefault.TaxiOut("IST"))
	assert.Equal(t, DefaultTaxiInMinutes, noDefault.TaxiIn("IST"))
}

func TestLoadLookupTables_Embedded(t *testing.T) {
	tables := LoadLookupTables("", "")

	kmh, ok := tables.Speeds.CruiseSpeed("Airbus A320")
	assert.True(t, ok)
	assert.Equal(t, 828.0, kmh)

	assert.Equal(t, 24, tables.Taxi.TaxiOut("JFK"))
	assert.Equal(t, 15, tables.Taxi.TaxiOut("IST"))
	assert.Equal(t, 7, tables.Taxi.TaxiIn("FRA"))
}

func TestLoadLookupTables_FileOverride(t *testing.T) {
	dir := t.TempDir()
	speeds := filepath.Join(dir, "speeds.json")
	taxi := filepath.Join(dir, "taxi.json")
	require.NoError(t, os.WriteFile(speeds, []byte(`{"Dash 8-400": 667}`), 0o600))
	require.NoError(t, os.WriteFile(taxi, []byte(`{"YYZ": {"taxiOut": 25, "taxiIn": 11}}`), 0o600))

	tables := LoadLookupTables(speeds, taxi)

	kmh, ok := tables.Speeds.CruiseSpeed("Dash 8-400")
	assert.True(t, ok)
	assert.Equal(t, 667.0, kmh)
	assert.Equal(t, 1, tables.Speeds.Len())
	assert.Equal(t, 25, tables.Taxi.TaxiOut("YYZ"))
}

func TestLoadLookupTables_DegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{not json`), 0o600))

	tables := LoadLookupTables(filepath.Join(dir, "missing.json"), broken)

	require.NotNil(t, tables.Speeds)
	require.NotNil(t, tables.Taxi)
	assert.Equal(t, 0, tables.Speeds.Len())
	assert.Equal(t, 0, tables.Taxi.Len())

	kmh, _ := tables.Speeds.CruiseSpeed("Airbus A320")
	assert.Equal(t, DefaultCruiseSpeedKmh, kmh)
	assert.Equal(t, DefaultTaxiOutMinutes, tables.Taxi.TaxiOut("JFK"))
}
