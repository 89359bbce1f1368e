package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/geo"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	SearchStations(ctx context.Context, req *model.SearchRequest) ([]*model.StationSummary, error)
	GetStationClimate(ctx context.Context, req *model.ClimateRequest) (*service.StationClimate, error)
}

// WeatherServer is a server for weather info processing.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// SearchStationsHandler handles SearchStations request.
func (s *WeatherServer) SearchStationsHandler(w http.ResponseWriter, r *http.Request) {
	searchReq, err := validateSearchParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	summaries, err := s.service.SearchStations(r.Context(), searchReq)
	if errors.Is(err, geo.ErrInvalidQuery) {
		respondErr(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to search stations: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, summaries)
}

// GetStationClimateHandler handles GetStationClimate request.
func (s *WeatherServer) GetStationClimateHandler(w http.ResponseWriter, r *http.Request) {
	climateReq, err := validateClimateParams(mux.Vars(r)["id"], r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	stationClimate, err := s.service.GetStationClimate(r.Context(), climateReq)
	if errors.Is(err, service.ErrStationNotFound) {
		respondErr(w, http.StatusNotFound, service.ErrStationNotFound)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get station climate: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, stationClimate)
}

func validateSearchParams(params url.Values) (*model.SearchRequest, error) {
	latStr := params.Get("lat")
	if latStr == "" {
		return nil, errors.New("lat parameter not provided in query")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lat parameter is not a number: %w", err)
	}

	lonStr := params.Get("lon")
	if lonStr == "" {
		return nil, errors.New("lon parameter not provided in query")
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lon parameter is not a number: %w", err)
	}

	radius := 50.0
	if radiusStr := params.Get("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return nil, fmt.Errorf("radius parameter is not a number: %w", err)
		}
	}

	maxResults := 10
	if maxStr := params.Get("max"); maxStr != "" {
		maxResults, err = strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("max parameter is not a number: %w", err)
		}
	}

	return &model.SearchRequest{
		Latitude:   lat,
		Longitude:  lon,
		RadiusKm:   radius,
		MaxResults: maxResults,
	}, nil
}

func validateClimateParams(stationID string, params url.Values) (*model.ClimateRequest, error) {
	if stationID == "" {
		return nil, errors.New("station id not provided")
	}

	startYear := 2010
	if startStr := params.Get("startYear"); startStr != "" {
		var err error
		startYear, err = strconv.Atoi(startStr)
		if err != nil {
			return nil, fmt.Errorf("startYear parameter is not a number: %w", err)
		}
	}

	endYear := 2020
	if endStr := params.Get("endYear"); endStr != "" {
		var err error
		endYear, err = strconv.Atoi(endStr)
		if err != nil {
			return nil, fmt.Errorf("endYear parameter is not a number: %w", err)
		}
	}

	return &model.ClimateRequest{
		StationID: stationID,
		StartYear: startYear,
		EndYear:   endYear,
	}, nil
}
