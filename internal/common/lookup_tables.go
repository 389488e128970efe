package common

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"flightdesk/dispatch/internal/logging"
)

const (
	DefaultCruiseSpeedKmh = 840.0
	DefaultTaxiOutMinutes = 15
	DefaultTaxiInMinutes  = 7

	// TaxiDefaultKey is the taxi table entry used for airports without their own.
	TaxiDefaultKey = "default"
)

//go:embed data/aircraft_speeds.json data/taxi_times.json
var embeddedTables embed.FS

// AircraftSpeedTable maps an aircraft model name to its cruise speed in km/h.
// It is never mutated after construction.
type AircraftSpeedTable struct {
	speeds map[string]float64
}

func NewAircraftSpeedTable(speeds map[string]float64) *AircraftSpeedTable {
	copied := make(map[string]float64, len(speeds))
	for model, kmh := range speeds {
		if kmh > 0 {
			copied[strings.TrimSpace(model)] = kmh
		}
	}
	return &AircraftSpeedTable{speeds: copied}
}

// CruiseSpeed returns the speed for model and whether it was in the table.
// Unknown models get DefaultCruiseSpeedKmh.
func (t *AircraftSpeedTable) CruiseSpeed(model string) (float64, bool) {
	if t != nil {
		if kmh, ok := t.speeds[strings.TrimSpace(model)]; ok {
			return kmh, true
		}
	}
	return DefaultCruiseSpeedKmh, false
}

func (t *AircraftSpeedTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.speeds)
}

// TaxiTime is the ground time spent at an airport, in minutes.
type TaxiTime struct {
	TaxiOut int `json:"taxiOut"`
	TaxiIn  int `json:"taxiIn"`
}

// TaxiTimeTable maps an IATA code to its taxi times. It is never mutated after
// construction.
type TaxiTimeTable struct {
	times map[string]TaxiTime
}

func NewTaxiTimeTable(times map[string]TaxiTime) *TaxiTimeTable {
	copied := make(map[string]TaxiTime, len(times))
	for code, tt := range times {
		key := strings.ToUpper(strings.TrimSpace(code))
		if strings.EqualFold(key, TaxiDefaultKey) {
			key = TaxiDefaultKey
		}
		copied[key] = tt
	}
	return &TaxiTimeTable{times: copied}
}

// TaxiOut returns the taxi-out minutes for a departure airport, falling back
// to the "default" entry and then to DefaultTaxiOutMinutes.
func (t *TaxiTimeTable) TaxiOut(iata string) int {
	if tt, ok := t.lookup(iata); ok {
		return tt.TaxiOut
	}
	if tt, ok := t.lookup(TaxiDefaultKey); ok {
		return tt.TaxiOut
	}
	return DefaultTaxiOutMinutes
}

// TaxiIn returns the taxi-in minutes for an arrival airport, falling back to
// the "default" entry and then to DefaultTaxiInMinutes.
func (t *TaxiTimeTable) TaxiIn(iata string) int {
	if tt, ok := t.lookup(iata); ok {
		return tt.TaxiIn
	}
	if tt, ok := t.lookup(TaxiDefaultKey); ok {
		return tt.TaxiIn
	}
	return DefaultTaxiInMinutes
}

func (t *TaxiTimeTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.times)
}

func (t *TaxiTimeTable) lookup(code string) (TaxiTime, bool) {
	if t == nil {
		return TaxiTime{}, false
	}
	key := strings.ToUpper(strings.TrimSpace(code))
	if strings.EqualFold(key, TaxiDefaultKey) {
		key = TaxiDefaultKey
	}
	tt, ok := t.times[key]
	return tt, ok
}

// LookupTables bundles the read-only forecasting tables loaded at startup.
type LookupTables struct {
	Speeds *AircraftSpeedTable
	Taxi   *TaxiTimeTable
}

// LoadLookupTables reads both tables, from the given files when set and from
// the embedded defaults otherwise. A table that fails to load is replaced by
// an empty one; startup never fails because of it.
func LoadLookupTables(speedsFile, taxiFile string) *LookupTables {
	speeds, err := loadSpeeds(speedsFile)
	if err != nil {
		logging.Warn("Aircraft speed table unavailable, using default cruise speed",
			"file", speedsFile,
			"error", err.Error(),
		)
		speeds = NewAircraftSpeedTable(nil)
	}

	taxi, err := loadTaxiTimes(taxiFile)
	if err != nil {
		logging.Warn("Taxi time table unavailable, using default taxi times",
			"file", taxiFile,
			"error", err.Error(),
		)
		taxi = NewTaxiTimeTable(nil)
	}

	logging.Info("Lookup tables loaded",
		"aircraft_models", speeds.Len(),
		"taxi_airports", taxi.Len(),
	)
	return &LookupTables{Speeds: speeds, Taxi: taxi}
}

func loadSpeeds(path string) (*AircraftSpeedTable, error) {
	rc, err := openTable(path, "data/aircraft_speeds.json")
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var raw map[string]float64
	if err := json.NewDecoder(rc).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode aircraft speeds: %w", err)
	}
	return NewAircraftSpeedTable(raw), nil
}

func loadTaxiTimes(path string) (*TaxiTimeTable, error) {
	rc, err := openTable(path, "data/taxi_times.json")
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var raw map[string]TaxiTime
	if err := json.NewDecoder(rc).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode taxi times: %w", err)
	}
	return NewTaxiTimeTable(raw), nil
}

func openTable(path, embedded string) (io.ReadCloser, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return f, nil
	}
	return embeddedTables.Open(embedded)
}
