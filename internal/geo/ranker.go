// Package geo implements the station proximity search: great-circle
// distances between a query point and the station catalog, radius
// filtering and deterministic ranking.
package geo

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/umahmood/haversine"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// ErrInvalidQuery is returned for malformed search parameters. All
// validation errors wrap it so callers can map them to a client error.
var ErrInvalidQuery = errors.New("invalid query")

// ValidateQuery checks search parameters before any distance computation.
// Out-of-range coordinates are rejected, never clamped.
func ValidateQuery(lat, lon, radiusKm float64, maxResults int) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidQuery, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidQuery, lon)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return fmt.Errorf("%w: radius %v must be non-negative", ErrInvalidQuery, radiusKm)
	}
	if maxResults < 0 {
		return fmt.Errorf("%w: max results %d must be non-negative", ErrInvalidQuery, maxResults)
	}
	return nil
}

// RankStations computes the distance from the query point to every catalog
// entry, keeps entries within radiusKm (inclusive), sorts them ascending by
// distance with catalog order breaking ties, and truncates to maxResults.
// An empty catalog or an empty match set is a valid empty result.
func RankStations(lat, lon, radiusKm float64, maxResults int, catalog []*model.Station) ([]*model.StationSummary, error) {
	if err := ValidateQuery(lat, lon, radiusKm, maxResults); err != nil {
		return nil, err
	}

	query := haversine.Coord{Lat: lat, Lon: lon}

	summaries := make([]*model.StationSummary, 0, len(catalog))
	for _, st := range catalog {
		stCoords := haversine.Coord{Lat: st.Latitude, Lon: st.Longitude}

		_, km := haversine.Distance(query, stCoords)
		if km > radiusKm {
			continue
		}

		summaries = append(summaries, &model.StationSummary{
			Station:    *st,
			DistanceKm: km,
		})
	}

	return sortAndTruncate(summaries, maxResults), nil
}

// RankPrecomputed applies the same filter/sort/truncate contract to
// summaries whose distance was already computed by the catalog backend.
// Distances are trusted as given and never recomputed.
func RankPrecomputed(lat, lon, radiusKm float64, maxResults int, ranked []*model.StationSummary) ([]*model.StationSummary, error) {
	if err := ValidateQuery(lat, lon, radiusKm, maxResults); err != nil {
		return nil, err
	}

	summaries := make([]*model.StationSummary, 0, len(ranked))
	for _, s := range ranked {
		if s.DistanceKm > radiusKm {
			continue
		}
		summaries = append(summaries, s)
	}

	return sortAndTruncate(summaries, maxResults), nil
}

// sortAndTruncate orders summaries ascending by distance and cuts the list
// at maxResults. The sort must be stable so that equidistant stations keep
// their catalog order and repeated searches return identical results.
func sortAndTruncate(summaries []*model.StationSummary, maxResults int) []*model.StationSummary {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DistanceKm < summaries[j].DistanceKm
	})

	if len(summaries) > maxResults {
		summaries = summaries[:maxResults]
	}
	return summaries
}
