package main

import (
	"log"

	"tanks/internal/app"
	"tanks/internal/desktop"
)

func main() {
	s, cfg, err := app.NewSession("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := desktop.Run(s, cfg); err != nil {
		log.Fatalf("desktop: %v", err)
	}
}
