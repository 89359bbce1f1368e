package ghcn

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/climate"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
)

// Layout of a .dly line: station id, year, month, element, then 31 day
// slots of 8 characters (5-char value followed by 3 flag characters).
const (
	dailyIDEnd      = 11
	dailyYearEnd    = 15
	dailyMonthEnd   = 17
	dailyElementEnd = 21
	daySlotWidth    = 8
	dayValueWidth   = 5
	daysPerLine     = 31
)

// missingValue marks an absent observation in the GHCN format.
const missingValue = -9999

// ParseDaily reads a GHCN .dly file and returns the valid TMIN/TMAX
// observations in °C. Other elements, missing values (-9999) and
// impossible dates (day 31 of a 30-day month) are dropped. Raw values are
// tenths of a degree and are scaled here.
func ParseDaily(r io.Reader) ([]climate.Reading, error) {
	fileScanner := bufio.NewScanner(r)
	fileScanner.Split(bufio.ScanLines)

	var readings []climate.Reading
	for fileScanner.Scan() {
		lineReadings, err := parseDailyLine(fileScanner.Text())
		if err != nil {
			logger.Error(err)
			continue
		}

		readings = append(readings, lineReadings...)
	}
	if err := fileScanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily file: %w", err)
	}

	return readings, nil
}

// ParseDailyArchive is ParseDaily for a possibly gzip-compressed archive,
// keyed by the archive file name.
func ParseDailyArchive(name string, r io.Reader) ([]climate.Reading, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create a gzip reader: %w", err)
		}
		defer gz.Close()

		return ParseDaily(gz)
	}

	return ParseDaily(r)
}

// parseDailyLine parses one month of observations for one element.
func parseDailyLine(line string) ([]climate.Reading, error) {
	if len(line) < dailyElementEnd {
		return nil, fmt.Errorf("daily line too short: %q", line)
	}

	element := strings.TrimSpace(line[dailyMonthEnd:dailyElementEnd])
	if element != climate.ElementTMin && element != climate.ElementTMax {
		return nil, nil
	}

	year, err := strconv.Atoi(strings.TrimSpace(line[dailyIDEnd:dailyYearEnd]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse year value: %w", err)
	}

	month, err := strconv.Atoi(strings.TrimSpace(line[dailyYearEnd:dailyMonthEnd]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse month value: %w", err)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month %d out of range in line %q", month, line)
	}

	readings := make([]climate.Reading, 0, daysPerLine)
	for day := 0; day < daysPerLine; day++ {
		start := dailyElementEnd + day*daySlotWidth
		if start+dayValueWidth > len(line) {
			break
		}

		raw := strings.TrimSpace(line[start : start+dayValueWidth])
		value, err := strconv.Atoi(raw)
		if err != nil || value == missingValue {
			continue
		}

		date := time.Date(year, time.Month(month), day+1, 0, 0, 0, 0, time.UTC)
		if date.Month() != time.Month(month) {
			// Slot for a day the month does not have.
			continue
		}

		readings = append(readings, climate.Reading{
			Date:    date,
			Element: element,
			Value:   float64(value) / 10.0,
		})
	}

	return readings, nil
}
