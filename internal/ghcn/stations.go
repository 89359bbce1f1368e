// Package ghcn fetches and parses NOAA GHCN-Daily data: the station
// inventory file and the per-station daily archives.
package ghcn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// Fixed column ranges of ghcnd-stations.txt.
const (
	stationIDEnd   = 11
	stationLatEnd  = 20
	stationLonEnd  = 30
	stationNameOff = 41
	stationNameEnd = 71
)

// ParseStations reads the GHCN station inventory. Lines that do not parse
// are skipped so a single malformed entry cannot poison the catalog.
func ParseStations(r io.Reader) ([]*model.Station, error) {
	// Station names may carry non-ASCII characters in a legacy encoding.
	reader := transform.NewReader(r, charmap.ISO8859_15.NewDecoder())

	fileScanner := bufio.NewScanner(reader)
	fileScanner.Split(bufio.ScanLines)

	var stations []*model.Station
	for fileScanner.Scan() {
		station, err := parseStationLine(fileScanner.Text())
		if err != nil {
			logger.Error(err)
			continue
		}

		stations = append(stations, station)
	}
	if err := fileScanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stations file: %w", err)
	}

	return stations, nil
}

// parseStationLine parses one fixed-column inventory line.
func parseStationLine(line string) (*model.Station, error) {
	if len(line) < stationLonEnd {
		return nil, fmt.Errorf("station line too short: %q", line)
	}

	id := strings.TrimSpace(line[:stationIDEnd])
	if id == "" {
		return nil, fmt.Errorf("station line has empty id: %q", line)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(line[stationIDEnd+1:stationLatEnd]), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse station latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(line[stationLatEnd+1:stationLonEnd]), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse station longitude: %w", err)
	}

	var name string
	if len(line) > stationNameOff {
		end := stationNameEnd
		if len(line) < end {
			end = len(line)
		}
		name = strings.TrimSpace(line[stationNameOff:end])
	}

	return &model.Station{
		ID:        id,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
