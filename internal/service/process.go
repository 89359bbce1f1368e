package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/climate"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/ghcn"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// loadStationsInfo gets stations information from source and saves it in a database.
func (ws *WeatherService) loadStationsInfo(ctx context.Context) error {
	logger.Info("station catalog is empty, loading it from source")

	stationsInfo, err := ws.source.FetchStations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get station info: %w", err)
	}

	err = ws.repo.InsertStationsInfo(ctx, stationsInfo)
	if err != nil {
		return fmt.Errorf("failed to insert stations info: %w", err)
	}

	return nil
}

// loadStationClimateStatistics downloads the station's daily archive,
// aggregates it into annual and seasonal statistics and saves those in a
// database. A station without an archive has no data, which is a valid
// empty state rather than a failure.
func (ws *WeatherService) loadStationClimateStatistics(ctx context.Context, stationID string) error {
	readings, err := ws.source.FetchDailyReadings(ctx, stationID)
	if errors.Is(err, ghcn.ErrArchiveNotFound) {
		logger.Info(fmt.Sprintf("no daily archive for station %s", stationID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get station historical data: %w", err)
	}

	yearStats := climate.Aggregate(readings)
	if len(yearStats) == 0 {
		return nil
	}

	statistics := make([]*model.ClimateStatistics, 0, len(yearStats))
	for year, ys := range yearStats {
		statistics = append(statistics, &model.ClimateStatistics{
			StationID: stationID,
			Year:      year,
			AvgMin:    ys.AvgMin,
			AvgMax:    ys.AvgMax,
			Seasons:   ys.Seasons,
		})
	}

	err = ws.repo.InsertClimateStatistics(ctx, statistics)
	if err != nil {
		return fmt.Errorf("failed to insert climate statistics: %w", err)
	}

	return nil
}
