package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"flightdesk/dispatch/internal/logging"
	"flightdesk/dispatch/internal/models/gorm"
)

// AirportStore is the part of the airport repository the loader writes to.
type AirportStore interface {
	UpsertBatch(ctx context.Context, airports []gorm.Airport) error
	Count(ctx context.Context) (int64, error)
}

// AirportLoaderService imports airport reference data keyed by IATA code
type AirportLoaderService struct {
	repo      AirportStore
	client    *http.Client
	sourceURL string
}

// RawAirportData represents the structure of airport data from JSON
type RawAirportData struct {
	ICAO    string  `json:"icao"`
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TZ      string  `json:"tz"`
}

// NewAirportLoaderService creates a loader that fetches from sourceURL
func NewAirportLoaderService(repo AirportStore, sourceURL string) *AirportLoaderService {
	return &AirportLoaderService{
		repo:      repo,
		client:    &http.Client{Timeout: 60 * time.Second},
		sourceURL: sourceURL,
	}
}

// LoadFromJSON upserts airports from a reader.
// Expected format: object with airport data as values
// Example: {"KJFK": {"icao": "KJFK", "iata": "JFK", "name": "John F. Kennedy...", ...}}
// Records without a three-letter IATA code are skipped; existing rows with the
// same IATA code are updated in place.
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (int, error) {
	var rawData map[string]RawAirportData
	if err := json.NewDecoder(reader).Decode(&rawData); err != nil {
		return 0, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(rawData) == 0 {
		return 0, fmt.Errorf("no airport data found in JSON")
	}

	// keys are ICAO codes; walking them sorted makes the lowest one win a
	// duplicated IATA code on every sync
	byIATA := make(map[string]gorm.Airport, len(rawData))
	for _, key := range slices.Sorted(maps.Keys(rawData)) {
		raw := rawData[key]
		iata := NormalizeIATA(raw.IATA)
		name := strings.TrimSpace(raw.Name)
		if len(iata) != 3 || name == "" {
			continue
		}
		if _, dup := byIATA[iata]; dup {
			continue
		}

		timezone := raw.TZ
		if timezone == "" && raw.State != "" {
			timezone = raw.State
		}

		byIATA[iata] = gorm.Airport{
			IATA:      iata,
			ICAO:      strings.ToUpper(strings.TrimSpace(raw.ICAO)),
			Name:      name,
			City:      strings.TrimSpace(raw.City),
			Country:   strings.TrimSpace(raw.Country),
			Latitude:  raw.Lat,
			Longitude: raw.Lon,
			Timezone:  timezone,
		}
	}

	if len(byIATA) == 0 {
		return 0, fmt.Errorf("no valid airports found after parsing")
	}

	airports := make([]gorm.Airport, 0, len(byIATA))
	for _, iata := range slices.Sorted(maps.Keys(byIATA)) {
		airports = append(airports, byIATA[iata])
	}

	if err := s.repo.UpsertBatch(ctx, airports); err != nil {
		return 0, fmt.Errorf("failed to upsert airports: %w", err)
	}

	logging.Info("Airports imported",
		"records", len(rawData),
		"imported", len(airports),
	)
	return len(airports), nil
}

// LoadFromSource fetches the configured airport dataset and imports it.
func (s *AirportLoaderService) LoadFromSource(ctx context.Context) (int, error) {
	logging.Info("Fetching airport dataset", "url", s.sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build airport request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch airports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch airports: HTTP %d", resp.StatusCode)
	}

	return s.LoadFromJSON(ctx, resp.Body)
}

// Count returns how many airports are stored
func (s *AirportLoaderService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
