package main

import (
	"log"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/app"
	"github.com/GeorgeWhittington/cinema-booking-app/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("cinema booking app failed to start: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("cinema booking app exited: %v", err)
	}
}
