package climate

import (
	"time"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// Temperature elements of the GHCN daily format.
const (
	ElementTMin = "TMIN"
	ElementTMax = "TMAX"
)

// Reading is one valid daily temperature observation in °C. Invalid
// values are filtered out during parsing and never reach the aggregator.
type Reading struct {
	Date    time.Time
	Element string
	Value   float64
}

type accumulator struct {
	sum float64
	num int
}

func (a *accumulator) add(v float64) {
	a.sum += v
	a.num++
}

func (a *accumulator) average() *float64 {
	if a.num == 0 {
		return nil
	}
	avg := a.sum / float64(a.num)
	return &avg
}

type seasonKey struct {
	year   int
	season model.Season
}

// Aggregate computes per-year and per-season average minimum and maximum
// temperatures from daily readings. Years and seasons without any valid
// reading are simply absent from the result. Seasons are meteorological:
// Mar–May Spring, Jun–Aug Summer, Sep–Nov Autumn, Dec–Feb Winter, with a
// December reading counted toward the following year's Winter. Annual
// averages use the plain calendar year.
func Aggregate(readings []Reading) map[int]model.YearStats {
	yearMin := make(map[int]*accumulator)
	yearMax := make(map[int]*accumulator)
	seasonMin := make(map[seasonKey]*accumulator)
	seasonMax := make(map[seasonKey]*accumulator)

	for _, r := range readings {
		var annual map[int]*accumulator
		var bySeason map[seasonKey]*accumulator

		switch r.Element {
		case ElementTMin:
			annual, bySeason = yearMin, seasonMin
		case ElementTMax:
			annual, bySeason = yearMax, seasonMax
		default:
			continue
		}

		year := r.Date.Year()
		if acc := annual[year]; acc != nil {
			acc.add(r.Value)
		} else {
			annual[year] = &accumulator{sum: r.Value, num: 1}
		}

		key := seasonOf(r.Date)
		if acc := bySeason[key]; acc != nil {
			acc.add(r.Value)
		} else {
			bySeason[key] = &accumulator{sum: r.Value, num: 1}
		}
	}

	stats := make(map[int]model.YearStats)

	ensure := func(year int) model.YearStats {
		ys, ok := stats[year]
		if !ok {
			ys = model.YearStats{}
		}
		return ys
	}

	for year, acc := range yearMin {
		ys := ensure(year)
		ys.AvgMin = acc.average()
		stats[year] = ys
	}
	for year, acc := range yearMax {
		ys := ensure(year)
		ys.AvgMax = acc.average()
		stats[year] = ys
	}

	for key, acc := range seasonMin {
		ys := ensure(key.year)
		if ys.Seasons == nil {
			ys.Seasons = make(map[model.Season]model.SeasonStats)
		}
		ss := ys.Seasons[key.season]
		ss.AvgMin = acc.average()
		ys.Seasons[key.season] = ss
		stats[key.year] = ys
	}
	for key, acc := range seasonMax {
		ys := ensure(key.year)
		if ys.Seasons == nil {
			ys.Seasons = make(map[model.Season]model.SeasonStats)
		}
		ss := ys.Seasons[key.season]
		ss.AvgMax = acc.average()
		ys.Seasons[key.season] = ss
		stats[key.year] = ys
	}

	return stats
}

// seasonOf assigns a date to its meteorological season. December belongs
// to the Winter of the following year, so "Winter 2024" spans Dec 2023
// through Feb 2024.
func seasonOf(date time.Time) seasonKey {
	year := date.Year()

	switch date.Month() {
	case time.March, time.April, time.May:
		return seasonKey{year: year, season: model.Spring}
	case time.June, time.July, time.August:
		return seasonKey{year: year, season: model.Summer}
	case time.September, time.October, time.November:
		return seasonKey{year: year, season: model.Autumn}
	case time.December:
		return seasonKey{year: year + 1, season: model.Winter}
	default:
		return seasonKey{year: year, season: model.Winter}
	}
}
