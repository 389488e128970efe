package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flightdesk/dispatch/internal/models/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAirportStore struct {
	upserted []gorm.Airport
}

func (m *mockAirportStore) UpsertBatch(_ context.Context, airports []gorm.Airport) error {
	m.upserted = append(m.upserted, airports...)
	return nil
}

func (m *mockAirportStore) Count(context.Context) (int64, error) {
	return int64(len(m.upserted)), nil
}

const airportsJSON = `{
	"LTFM": {"icao": "LTFM", "iata": "ist", "name": "Istanbul Airport", "city": "Istanbul", "country": "TR", "lat": 41.2753, "lon": 28.7519, "tz": "Europe/Istanbul"},
	"EDDF": {"icao": "EDDF", "iata": "FRA", "name": "Frankfurt am Main", "city": "Frankfurt", "country": "DE", "lat": 50.0333, "lon": 8.5706, "tz": "Europe/Berlin"},
	"00AK": {"icao": "00AK", "iata": "", "name": "Lowell Field", "lat": 59.9, "lon": -151.7},
	"XXXX": {"icao": "XXXX", "iata": "ZZ", "name": "Broken", "lat": 1, "lon": 1}
}`

func TestAirportLoader_LoadFromJSON(t *testing.T) {
	store := &mockAirportStore{}
	loader := NewAirportLoaderService(store, "")

	n, err := loader.LoadFromJSON(context.Background(), strings.NewReader(airportsJSON))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	codes := map[string]gorm.Airport{}
	for _, a := range store.upserted {
		codes[a.IATA] = a
	}
	require.Contains(t, codes, "IST")
	assert.Equal(t, "LTFM", codes["IST"].ICAO)
	assert.Equal(t, 41.2753, codes["IST"].Latitude)
	assert.Contains(t, codes, "FRA")
}

func TestAirportLoader_DuplicateIATAKeepsLowestKey(t *testing.T) {
	const duplicated = `{
		"LTBA": {"icao": "LTBA", "iata": "IST", "name": "Ataturk", "lat": 40.9769, "lon": 28.8146},
		"LTFM": {"icao": "LTFM", "iata": "IST", "name": "Istanbul Airport", "lat": 41.2753, "lon": 28.7519},
		"EDDF": {"icao": "EDDF", "iata": "FRA", "name": "Frankfurt am Main", "lat": 50.0333, "lon": 8.5706}
	}`

	for i := 0; i < 20; i++ {
		store := &mockAirportStore{}
		n, err := NewAirportLoaderService(store, "").LoadFromJSON(context.Background(), strings.NewReader(duplicated))
		require.NoError(t, err)
		require.Equal(t, 2, n)

		require.Len(t, store.upserted, 2)
		assert.Equal(t, "FRA", store.upserted[0].IATA)
		assert.Equal(t, "IST", store.upserted[1].IATA)
		assert.Equal(t, "LTBA", store.upserted[1].ICAO)
		assert.Equal(t, 40.9769, store.upserted[1].Latitude)
	}
}

func TestAirportLoader_RejectsEmptyInput(t *testing.T) {
	loader := NewAirportLoaderService(&mockAirportStore{}, "")

	_, err := loader.LoadFromJSON(context.Background(), strings.NewReader(`{}`))
	assert.Error(t, err)

	_, err = loader.LoadFromJSON(context.Background(), strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestAirportLoader_LoadFromSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/airports.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(airportsJSON))
	}))
	defer srv.Close()

	store := &mockAirportStore{}
	n, err := NewAirportLoaderService(store, srv.URL+"/airports.json").LoadFromSource(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = NewAirportLoaderService(store, srv.URL+"/missing").LoadFromSource(context.Background())
	assert.Error(t, err)
}
