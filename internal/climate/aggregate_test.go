package climate

import (
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateAnnualAverages(t *testing.T) {
	readings := []Reading{
		{Date: day(2022, time.January, 10), Element: ElementTMin, Value: -2},
		{Date: day(2022, time.July, 10), Element: ElementTMin, Value: 12},
		{Date: day(2022, time.January, 10), Element: ElementTMax, Value: 4},
		{Date: day(2022, time.July, 10), Element: ElementTMax, Value: 30},
	}

	stats := Aggregate(readings)
	assert.Len(t, stats, 1)

	ys := stats[2022]
	assert.Equal(t, 5.0, *ys.AvgMin)
	assert.Equal(t, 17.0, *ys.AvgMax)
}

func TestAggregateSeasons(t *testing.T) {
	readings := []Reading{
		{Date: day(2022, time.March, 1), Element: ElementTMax, Value: 10},
		{Date: day(2022, time.May, 31), Element: ElementTMax, Value: 20},
		{Date: day(2022, time.July, 15), Element: ElementTMax, Value: 30},
		{Date: day(2022, time.October, 1), Element: ElementTMax, Value: 14},
		{Date: day(2022, time.January, 20), Element: ElementTMax, Value: 2},
	}

	stats := Aggregate(readings)
	seasons := stats[2022].Seasons

	assert.Equal(t, 15.0, *seasons[model.Spring].AvgMax)
	assert.Equal(t, 30.0, *seasons[model.Summer].AvgMax)
	assert.Equal(t, 14.0, *seasons[model.Autumn].AvgMax)
	assert.Equal(t, 2.0, *seasons[model.Winter].AvgMax)

	// No TMIN readings at all: minimums stay absent.
	assert.Nil(t, stats[2022].AvgMin)
	assert.Nil(t, seasons[model.Spring].AvgMin)
}

func TestAggregateDecemberBelongsToNextWinter(t *testing.T) {
	readings := []Reading{
		{Date: day(2023, time.December, 25), Element: ElementTMin, Value: -6},
		{Date: day(2024, time.January, 5), Element: ElementTMin, Value: -2},
		{Date: day(2024, time.February, 5), Element: ElementTMin, Value: 2},
	}

	stats := Aggregate(readings)

	// Winter 2024 spans Dec 2023 through Feb 2024.
	assert.Equal(t, -2.0, *stats[2024].Seasons[model.Winter].AvgMin)

	// The December reading still counts toward 2023's annual average.
	assert.Equal(t, -6.0, *stats[2023].AvgMin)
	assert.Equal(t, 0.0, *stats[2024].AvgMin)

	// 2023 has no winter entry of its own here.
	_, ok := stats[2023].Seasons[model.Winter]
	assert.False(t, ok)
}

func TestAggregateIgnoresUnknownElements(t *testing.T) {
	readings := []Reading{
		{Date: day(2022, time.June, 1), Element: "PRCP", Value: 12},
		{Date: day(2022, time.June, 1), Element: ElementTMax, Value: 25},
	}

	stats := Aggregate(readings)
	assert.Equal(t, 25.0, *stats[2022].AvgMax)
	assert.Nil(t, stats[2022].AvgMin)
}

func TestAggregateEmptyInput(t *testing.T) {
	stats := Aggregate(nil)
	assert.Len(t, stats, 0)
}
