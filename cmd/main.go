package main

import (
	"fmt"
	"os"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/api"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/config"
	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run weather api: %v", err))
	}
}
