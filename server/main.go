//go:build !js
// +build !js

// Command server hosts the browser build and a small JSON API for the
// shared high score and the active tuning.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/simukka/sorades-invaders/config"
	"github.com/simukka/sorades-invaders/highscore"
)

//go:embed index.html
var indexHTML []byte

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	scoreFile := flag.String("score-file", "highscore.toml", "High score file")
	configPath := flag.String("config", "", "TOML tuning file served to clients (defaults when empty)")
	flag.Parse()

	tuning := config.Default()
	if *configPath != "" {
		t, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}

	srv := NewServer(highscore.NewFileStore(*scoreFile), tuning, http.Dir(*staticDir))

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Sorades Invaders server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("High score file: %s", *scoreFile)

	if err := http.ListenAndServe(addr, srv.Routes()); err != nil {
		log.Fatal(err)
	}
}
