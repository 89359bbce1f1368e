package config

import (
	"testing"

	"github.com/tj/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	assert.Nil(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "weather", cfg.DBName)
	assert.Equal(t, "*", cfg.Origin)
	assert.NotEmpty(t, cfg.StationsURL)
	assert.NotEmpty(t, cfg.DailyBaseURL)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"-port", "9090",
		"-db-name", "weather_test",
		"-mongo-uri", "mongodb://db:27017",
	})
	assert.Nil(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "weather_test", cfg.DBName)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
}
