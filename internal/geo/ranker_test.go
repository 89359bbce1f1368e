package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/tj/assert"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

func TestValidateQuery(t *testing.T) {
	cases := []struct {
		name       string
		lat        float64
		lon        float64
		radiusKm   float64
		maxResults int
		wantErr    bool
	}{
		{name: "valid", lat: 48.7758, lon: 9.1829, radiusKm: 50, maxResults: 10},
		{name: "zero radius and cap", lat: 0, lon: 0, radiusKm: 0, maxResults: 0},
		{name: "latitude too high", lat: 90.1, lon: 0, radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "latitude too low", lat: -90.1, lon: 0, radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "longitude too high", lat: 0, lon: 180.5, radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -180.5, radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "latitude NaN", lat: math.NaN(), lon: 0, radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "longitude Inf", lat: 0, lon: math.Inf(1), radiusKm: 50, maxResults: 10, wantErr: true},
		{name: "negative radius", lat: 0, lon: 0, radiusKm: -1, maxResults: 10, wantErr: true},
		{name: "negative max results", lat: 0, lon: 0, radiusKm: 50, maxResults: -1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuery(tc.lat, tc.lon, tc.radiusKm, tc.maxResults)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidQuery))
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestRankStationsNearest(t *testing.T) {
	catalog := []*model.Station{
		{ID: "A", Latitude: 48.0, Longitude: 9.0},
		{ID: "B", Latitude: 49.0, Longitude: 9.0},
	}

	got, err := RankStations(48.7758, 9.1829, 100, 1, catalog)
	assert.Nil(t, err)
	assert.Len(t, got, 1)

	// B is roughly 28 km from the query point, A roughly 87 km.
	assert.Equal(t, "B", got[0].ID)
	assert.InDelta(t, 28.29, got[0].DistanceKm, 0.1)
}

func TestRankStationsOrderAndRadius(t *testing.T) {
	catalog := []*model.Station{
		{ID: "far", Latitude: 50.0, Longitude: 9.0},
		{ID: "near", Latitude: 48.8, Longitude: 9.18},
		{ID: "mid", Latitude: 49.0, Longitude: 9.0},
		{ID: "out", Latitude: 60.0, Longitude: 9.0},
	}

	got, err := RankStations(48.7758, 9.1829, 200, 10, catalog)
	assert.Nil(t, err)
	assert.Len(t, got, 3)

	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "far", got[2].ID)

	for i, s := range got {
		assert.True(t, s.DistanceKm <= 200)
		if i > 0 {
			assert.True(t, got[i-1].DistanceKm <= s.DistanceKm)
		}
	}
}

func TestRankStationsZeroMaxResults(t *testing.T) {
	catalog := []*model.Station{
		{ID: "A", Latitude: 48.0, Longitude: 9.0},
		{ID: "B", Latitude: 49.0, Longitude: 9.0},
	}

	got, err := RankStations(48.5, 9.0, 1000, 0, catalog)
	assert.Nil(t, err)
	assert.Len(t, got, 0)
}

func TestRankStationsEmptyCatalog(t *testing.T) {
	got, err := RankStations(48.5, 9.0, 1000, 10, nil)
	assert.Nil(t, err)
	assert.Len(t, got, 0)
}

func TestRankStationsZeroRadius(t *testing.T) {
	catalog := []*model.Station{
		{ID: "coincident", Latitude: 48.5, Longitude: 9.0},
		{ID: "near", Latitude: 48.5001, Longitude: 9.0},
	}

	got, err := RankStations(48.5, 9.0, 0, 10, catalog)
	assert.Nil(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "coincident", got[0].ID)
	assert.Equal(t, 0.0, got[0].DistanceKm)
}

func TestRankStationsStableTieBreak(t *testing.T) {
	// Same coordinates, so identical distances: catalog order must win,
	// and repeated calls must return identical output.
	catalog := []*model.Station{
		{ID: "first", Latitude: 49.0, Longitude: 9.0},
		{ID: "second", Latitude: 49.0, Longitude: 9.0},
		{ID: "third", Latitude: 49.0, Longitude: 9.0},
	}

	first, err := RankStations(48.5, 9.0, 100, 10, catalog)
	assert.Nil(t, err)

	second, err := RankStations(48.5, 9.0, 100, 10, catalog)
	assert.Nil(t, err)

	assert.Len(t, first, 3)
	assert.Equal(t, "first", first[0].ID)
	assert.Equal(t, "second", first[1].ID)
	assert.Equal(t, "third", first[2].ID)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].DistanceKm, second[i].DistanceKm)
	}
}

func TestRankStationsInvalidQuery(t *testing.T) {
	catalog := []*model.Station{{ID: "A", Latitude: 48.0, Longitude: 9.0}}

	_, err := RankStations(91, 9.0, 100, 10, catalog)
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	_, err = RankStations(48.0, 9.0, -5, 10, catalog)
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestRankPrecomputed(t *testing.T) {
	ranked := []*model.StationSummary{
		{Station: model.Station{ID: "far"}, DistanceKm: 80},
		{Station: model.Station{ID: "near"}, DistanceKm: 5},
		{Station: model.Station{ID: "out"}, DistanceKm: 120},
		{Station: model.Station{ID: "mid"}, DistanceKm: 40},
	}

	got, err := RankPrecomputed(48.5, 9.0, 100, 2, ranked)
	assert.Nil(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "near", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
}
