// Package climate turns per-station temperature records into the chart
// series and table rows shown to the user, and aggregates raw daily
// readings into per-year and per-season averages.
package climate

import (
	"strconv"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// NoDataPlaceholder is rendered in table cells for which the record holds
// no value. It is distinct from any numeric rendering.
const NoDataPlaceholder = "-"

// Series is one chart line: a label plus one value per axis year. A nil
// value is a true gap; chart renderers must not draw through it.
type Series struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

// TableRow is one table line with pre-rendered cells. Cell order is fixed:
// annual min, annual max, then (min, max) per display season in the order
// Spring, Summer, Autumn, Winter.
type TableRow struct {
	Year  int      `json:"year"`
	Cells []string `json:"cells"`
}

// Projection is the display-ready form of a station record over a year
// range: a dense year axis, the ten chart series and the table rows.
type Projection struct {
	Years  []int      `json:"years"`
	Series []Series   `json:"series"`
	Rows   []TableRow `json:"rows"`
}

// DisplaySeason maps a stored reference season to the label shown for a
// station at the given latitude. South of the equator the calendar seasons
// invert: Spring↔Autumn, Summer↔Winter. The mapping is an involution, so
// it also translates a display label back to its stored season.
func DisplaySeason(stored model.Season, latitude float64) model.Season {
	if latitude >= 0 {
		return stored
	}
	switch stored {
	case model.Spring:
		return model.Autumn
	case model.Summer:
		return model.Winter
	case model.Autumn:
		return model.Spring
	case model.Winter:
		return model.Summer
	}
	return stored
}

// Project produces the chart series and table rows for record over the
// inclusive year range [startYear, endYear]. The axis is dense: every year
// in the range gets a position, and any missing year, season or statistic
// becomes a nil series value and a placeholder cell rather than a zero.
// A degenerate range (startYear > endYear) yields empty outputs.
// The record itself is never modified.
func Project(record *model.StationRecord, startYear, endYear int, latitude float64) *Projection {
	years := yearAxis(startYear, endYear)

	p := &Projection{
		Years:  years,
		Series: make([]Series, 0, 10),
		Rows:   make([]TableRow, 0, len(years)),
	}

	annualMin := make([]*float64, len(years))
	annualMax := make([]*float64, len(years))
	seasonMin := make(map[model.Season][]*float64, len(model.DisplaySeasons))
	seasonMax := make(map[model.Season][]*float64, len(model.DisplaySeasons))
	for _, s := range model.DisplaySeasons {
		seasonMin[s] = make([]*float64, len(years))
		seasonMax[s] = make([]*float64, len(years))
	}

	for i, year := range years {
		stats, ok := record.Years[year]
		if ok {
			annualMin[i] = stats.AvgMin
			annualMax[i] = stats.AvgMax
		}

		cells := []string{renderCell(annualMin[i]), renderCell(annualMax[i])}

		for _, display := range model.DisplaySeasons {
			// The same relabeling feeds both views so chart and
			// table can never disagree.
			stored := DisplaySeason(display, latitude)
			if ok {
				if ss, found := stats.Seasons[stored]; found {
					seasonMin[display][i] = ss.AvgMin
					seasonMax[display][i] = ss.AvgMax
				}
			}
			cells = append(cells, renderCell(seasonMin[display][i]), renderCell(seasonMax[display][i]))
		}

		p.Rows = append(p.Rows, TableRow{Year: year, Cells: cells})
	}

	p.Series = append(p.Series,
		Series{Label: "Annual Min", Values: annualMin},
		Series{Label: "Annual Max", Values: annualMax},
	)
	for _, s := range model.DisplaySeasons {
		p.Series = append(p.Series,
			Series{Label: string(s) + " Min", Values: seasonMin[s]},
			Series{Label: string(s) + " Max", Values: seasonMax[s]},
		)
	}

	return p
}

// yearAxis returns the ordered inclusive sequence startYear..endYear, or
// an empty axis when the range is degenerate.
func yearAxis(startYear, endYear int) []int {
	if startYear > endYear {
		return []int{}
	}

	years := make([]int, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
	}
	return years
}

func renderCell(v *float64) string {
	if v == nil {
		return NoDataPlaceholder
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
