package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/openroutenav/router/pkg/api"
	"github.com/openroutenav/router/pkg/graph"
	"github.com/openroutenav/router/pkg/osmfetch"
)

func main() {
	overpassEndpoint := flag.String("overpass-endpoint", osmfetch.DefaultEndpoint, "Overpass API endpoint")
	overpassTimeout := flag.Duration("overpass-timeout", osmfetch.DefaultTimeout, "Overpass fetch timeout")
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	snapK := flag.Int("snap-k", graph.DefaultSnapK, "nearest OSM nodes each terminal snaps to")
	flag.Parse()

	fetcher := osmfetch.NewFetcher(*overpassEndpoint, *overpassTimeout)
	handlers := api.NewHandlers(fetcher, nil, *snapK)

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin
	if *overpassTimeout > 0 {
		cfg.RequestBudget = *overpassTimeout + 15*time.Second
	}

	srv := api.NewServer(cfg, handlers)

	log.Printf("overpass endpoint: %s (timeout %s), snap-k: %d", *overpassEndpoint, *overpassTimeout, *snapK)
	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("server stopped: %v", err)
		os.Exit(1)
	}
}
