package common

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheService_GetOrSet(t *testing.T) {
	cache := NewCacheService(60, 120)
	calls := 0
	loader := func() (any, error) {
		calls++
		return AirportCoordinate{IATA: "IST", Latitude: 41.2753, Longitude: 28.7519}, nil
	}

	first, err := cache.GetOrSet("AIRPORT_COORD_IST", time.Minute, loader)
	require.NoError(t, err)
	second, err := cache.GetOrSet("AIRPORT_COORD_IST", time.Minute, loader)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.ItemCount())

	cache.Delete("AIRPORT_COORD_IST")
	_, found := cache.Get("AIRPORT_COORD_IST")
	assert.False(t, found)
}

func TestCacheService_LoaderErrorNotCached(t *testing.T) {
	cache := NewCacheService(60, 120)
	boom := errors.New("db down")

	_, err := cache.GetOrSet("k", time.Minute, func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, found := cache.Get("k")
	assert.False(t, found)
	assert.NoError(t, cache.Ping())
}

func TestCachedValue(t *testing.T) {
	want := AirportCoordinate{IATA: "FRA", Latitude: 50.0333, Longitude: 8.5706}

	got, ok := CachedValue[AirportCoordinate](want)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	got, ok = CachedValue[AirportCoordinate](&want)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	// Redis returns decoded JSON as a generic map.
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	var generic interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))

	got, ok = CachedValue[AirportCoordinate](generic)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = CachedValue[AirportCoordinate](nil)
	assert.False(t, ok)
}
