// Package model contains the domain types shared between transport,
// service, repository and the pure computation packages.
package model

// Season is one of the four reference season names used in GHCN-derived
// records. Stored records are always keyed by the Northern-Hemisphere
// reference labels; display relabeling for southern stations happens in
// the climate package and never mutates the record.
type Season string

// Reference season names.
const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
	Winter Season = "Winter"
)

// DisplaySeasons is the canonical display order for season columns and
// chart series.
var DisplaySeasons = [4]Season{Spring, Summer, Autumn, Winter}

// Station is a weather station catalog entry.
type Station struct {
	ID        string  `json:"id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	Latitude  float64 `json:"lat" bson:"latitude"`
	Longitude float64 `json:"lon" bson:"longitude"`
}

// StationSummary is a catalog entry annotated with its distance to a
// search query point. Summaries are produced fresh by every search and
// never persisted.
type StationSummary struct {
	Station
	DistanceKm float64 `json:"distance"`
}

// SeasonStats holds the average minimum/maximum temperature of one season
// of one year, in °C. Nil means no data; absence is never coerced to zero.
type SeasonStats struct {
	AvgMin *float64 `json:"avg_TMIN,omitempty" bson:"avgTmin,omitempty"`
	AvgMax *float64 `json:"avg_TMAX,omitempty" bson:"avgTmax,omitempty"`
}

// YearStats holds the annual average minimum/maximum temperature of one
// year plus its per-season breakdown.
type YearStats struct {
	AvgMin  *float64               `json:"avg_TMIN,omitempty" bson:"avgTmin,omitempty"`
	AvgMax  *float64               `json:"avg_TMAX,omitempty" bson:"avgTmax,omitempty"`
	Seasons map[Season]SeasonStats `json:"seasons,omitempty" bson:"seasons,omitempty"`
}

// StationRecord is the full historical temperature record of one station,
// keyed by year. A year missing from the map is distinct from a year whose
// stats are present but empty; both render as gaps downstream.
type StationRecord struct {
	ID        string            `json:"station"`
	Name      string            `json:"name"`
	Latitude  float64           `json:"lat"`
	Longitude float64           `json:"lon"`
	Years     map[int]YearStats `json:"years"`
}

// ClimateStatistics is the persisted form of one station-year: the
// repository stores one document per station and year.
type ClimateStatistics struct {
	StationID string                 `bson:"stationId"`
	Year      int                    `bson:"year"`
	AvgMin    *float64               `bson:"avgTmin,omitempty"`
	AvgMax    *float64               `bson:"avgTmax,omitempty"`
	Seasons   map[Season]SeasonStats `bson:"seasons,omitempty"`
}

// SearchRequest contains station search parameters.
type SearchRequest struct {
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lon"`
	RadiusKm   float64 `json:"radius"`
	MaxResults int     `json:"max"`
}

// ClimateRequest contains station climate request parameters.
type ClimateRequest struct {
	StationID string `json:"stationId"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}
