package main

import (
	"io"
	"log"
	"os"

	"tanks/internal/app"
	"tanks/internal/tty"
)

const logEnv = "TANKS_LOG"

func main() {
	// The terminal is the display, so log lines go to a file or nowhere.
	log.SetOutput(io.Discard)
	if path := os.Getenv(logEnv); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log %s: %v", path, err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	s, cfg, err := app.NewSession("")
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("config: %v", err)
	}
	if err := tty.Run(s, cfg); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("tty: %v", err)
	}
}
