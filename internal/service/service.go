package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/climate"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/geo"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/repository"
)

// ErrStationNotFound is returned when the requested station id is not in
// the catalog. An empty record for a known station is not an error.
var ErrStationNotFound = errors.New("station not found, please, check station id")

// Repository provides necessary repo methods.
type Repository interface {
	InsertStationsInfo(ctx context.Context, stationsInfo []*model.Station) error
	GetStation(ctx context.Context, stationID string) (*model.Station, error)
	GetStationsCoordinates(ctx context.Context) ([]*model.Station, error)
	InsertClimateStatistics(ctx context.Context, statistics []*model.ClimateStatistics) error
	GetStationClimateStatistics(ctx context.Context, stationID string, startYear, endYear int) ([]*model.ClimateStatistics, error)
	CheckIfStatisticsExists(ctx context.Context, stationID string) (bool, error)
}

// Source provides the GHCN download methods.
type Source interface {
	FetchStations(ctx context.Context) ([]*model.Station, error)
	FetchDailyReadings(ctx context.Context, stationID string) ([]climate.Reading, error)
}

// StationClimate bundles a station's record with its display projection.
type StationClimate struct {
	Record     *model.StationRecord `json:"record"`
	Projection *climate.Projection  `json:"projection"`
}

// WeatherService provides weather service functionality.
type WeatherService struct {
	repo   Repository
	source Source
}

// New creates new WeatherService.
func New(repo Repository, source Source) *WeatherService {
	return &WeatherService{
		repo:   repo,
		source: source,
	}
}

// SearchStations implements the station proximity search: it ranks the
// catalog around the query point and returns at most MaxResults stations
// within the radius, nearest first. An empty result is a valid outcome.
func (ws *WeatherService) SearchStations(ctx context.Context, req *model.SearchRequest) ([]*model.StationSummary, error) {
	if err := geo.ValidateQuery(req.Latitude, req.Longitude, req.RadiusKm, req.MaxResults); err != nil {
		return nil, err
	}

	stations, err := ws.repo.GetStationsCoordinates(ctx)
	if err == repository.ErrNoStations {
		err := ws.loadStationsInfo(ctx)
		if err != nil {
			return nil, err
		}

		stations, err = ws.repo.GetStationsCoordinates(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get station coordinates: %w", err)
		}
	}
	if err != nil && err != repository.ErrNoStations {
		return nil, fmt.Errorf("failed to get station coordinates: %w", err)
	}

	summaries, err := geo.RankStations(req.Latitude, req.Longitude, req.RadiusKm, req.MaxResults, stations)
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetStationClimate implements retrieving a station's historical record
// together with its chart series and table rows for the requested year
// range. Season labels are corrected for the station's hemisphere.
func (ws *WeatherService) GetStationClimate(ctx context.Context, req *model.ClimateRequest) (*StationClimate, error) {
	station, err := ws.repo.GetStation(ctx, req.StationID)
	if err == repository.ErrNoSuchStation {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	statsExists, err := ws.repo.CheckIfStatisticsExists(ctx, station.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check if statistics exists: %w", err)
	}

	if !statsExists {
		err := ws.loadStationClimateStatistics(ctx, station.ID)
		if err != nil {
			return nil, err
		}
	}

	record := &model.StationRecord{
		ID:        station.ID,
		Name:      station.Name,
		Latitude:  station.Latitude,
		Longitude: station.Longitude,
		Years:     map[int]model.YearStats{},
	}

	stats, err := ws.repo.GetStationClimateStatistics(ctx, station.ID, req.StartYear, req.EndYear)
	if err != nil && err != repository.ErrNoClimateDataForStation {
		return nil, fmt.Errorf("failed to get station climate data: %w", err)
	}

	for _, cs := range stats {
		record.Years[cs.Year] = model.YearStats{
			AvgMin:  cs.AvgMin,
			AvgMax:  cs.AvgMax,
			Seasons: cs.Seasons,
		}
	}

	return &StationClimate{
		Record:     record,
		Projection: climate.Project(record, req.StartYear, req.EndYear, station.Latitude),
	}, nil
}
