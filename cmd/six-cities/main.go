package main

import (
	"log"

	"github.com/Akergez/2572371-six-cities-4/internal"
)

func main() {
	app, err := internal.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
}
