package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/config"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/ghcn"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/repository"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/service"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/transport/rest/handler"
)

// RunAPI runs weather station API.
func RunAPI(cfg *config.Config) error {
	repo, err := repository.New(cfg.MongoURI, cfg.DBName)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	source := ghcn.NewClient(cfg.StationsURL, cfg.DailyBaseURL)

	weatherService := service.New(repo, source)
	server := handler.NewWeatherServer(weatherService)

	r := mux.NewRouter()

	r.HandleFunc("/stations/search", server.SearchStationsHandler).Methods("GET")
	r.HandleFunc("/stations/{id}/climate", server.GetStationClimateHandler).Methods("GET")

	logger.Info(fmt.Sprintf("Starting weather station api at port %s", cfg.Port))

	options := setupCorsOptions(cfg.Origin)
	return http.ListenAndServe(":"+cfg.Port, handlers.CORS(options...)(r))
}
