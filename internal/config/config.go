// Package config collects the deployment configuration: flags first,
// WEATHER_* environment variables as fallback.
package config

import (
	"flag"

	"github.com/peterbourgon/ff"
)

// Config holds all deployment settings. Ports, source URLs and store
// coordinates are configuration, not part of any service contract.
type Config struct {
	Port         string
	StationsURL  string
	DailyBaseURL string
	MongoURI     string
	DBName       string
	Origin       string
}

// Load parses configuration from args and the environment.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("weather-station-api", flag.ContinueOnError)
	var (
		port         = fs.String("port", "8080", "HTTP listen port")
		stationsURL  = fs.String("stations-url", "https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/ghcnd-stations.txt", "GHCN station inventory URL")
		dailyBaseURL = fs.String("daily-base-url", "https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/all", "GHCN daily archive base URL")
		mongoURI     = fs.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
		dbName       = fs.String("db-name", "weather", "MongoDB database name")
		origin       = fs.String("origin", "*", "allowed CORS origin")
	)

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("WEATHER"),
	)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         *port,
		StationsURL:  *stationsURL,
		DailyBaseURL: *dailyBaseURL,
		MongoURI:     *mongoURI,
		DBName:       *dbName,
		Origin:       *origin,
	}, nil
}
