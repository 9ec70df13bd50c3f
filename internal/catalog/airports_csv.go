package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"airline_tycoon/internal/models"
)

// LoadAirportsCSV parses an airport list with the header
// code,name,country,lat,lon,scale,slots,runway_m. Missing slots fall back
// to the default for the airport's scale.
func LoadAirportsCSV(path string) ([]models.Airport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airports csv: %w", err)
	}
	defer f.Close()
	return ReadAirports(f)
}

func ReadAirports(r io.Reader) ([]models.Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read airports header: %w", err)
	}
	idx := func(name string) int {
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	cols := map[string]int{}
	for _, name := range []string{"code", "name", "country", "lat", "lon", "scale", "slots", "runway_m"} {
		cols[name] = idx(name)
	}
	for _, required := range []string{"code", "country", "lat", "lon", "scale"} {
		if cols[required] < 0 {
			return nil, fmt.Errorf("airports csv: missing column %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i := cols[name]
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var airports []models.Airport
	seen := map[string]bool{}
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("airports csv line %d: %w", line, err)
		}

		code := strings.ToUpper(field(rec, "code"))
		if code == "" {
			continue
		}
		if seen[code] {
			return nil, fmt.Errorf("airports csv line %d: duplicate code %s", line, code)
		}
		seen[code] = true

		scale := models.AirportScale(strings.ToUpper(field(rec, "scale")))
		if _, ok := slotsByScale[scale]; !ok {
			return nil, fmt.Errorf("airports csv line %d: unknown scale %q", line, scale)
		}
		lat, err := strconv.ParseFloat(field(rec, "lat"), 64)
		if err != nil {
			return nil, fmt.Errorf("airports csv line %d: lat: %w", line, err)
		}
		lon, err := strconv.ParseFloat(field(rec, "lon"), 64)
		if err != nil {
			return nil, fmt.Errorf("airports csv line %d: lon: %w", line, err)
		}
		slots := slotsByScale[scale]
		if s := field(rec, "slots"); s != "" {
			if slots, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("airports csv line %d: slots: %w", line, err)
			}
		}
		runway, _ := strconv.Atoi(field(rec, "runway_m"))

		name := field(rec, "name")
		if name == "" {
			name = code
		}
		if _, ok := ParseAirportCode(name); !ok {
			name = DisplayName(name, code)
		}

		airports = append(airports, models.Airport{
			Code:         code,
			Name:         name,
			Country:      strings.ToUpper(field(rec, "country")),
			Latitude:     lat,
			Longitude:    lon,
			Scale:        scale,
			Slots:        slots,
			RunwayLength: runway,
		})
	}
	if len(airports) == 0 {
		return nil, fmt.Errorf("airports csv: no airports")
	}
	return airports, nil
}
