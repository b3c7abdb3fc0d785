package main

import (
	"log"
	"net/http"
	"time"

	api "github.com/realfood-labs/realfood-score/internal/api/http"
	"github.com/realfood-labs/realfood-score/internal/config"
	"github.com/realfood-labs/realfood-score/internal/openfoodfacts"
	"github.com/realfood-labs/realfood-score/internal/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	weights := scoring.DefaultWeights()
	if cfg.WeightsFile != "" {
		var err error
		weights, err = scoring.LoadWeights(cfg.WeightsFile)
		if err != nil {
			log.Fatalf("weights: %v", err)
		}
	}
	scorer, err := scoring.NewScorer(weights)
	if err != nil {
		log.Fatalf("scorer: %v", err)
	}

	off := openfoodfacts.NewClient(cfg.OFFBaseURL, cfg.OFFUserAgent, cfg.OFFTimeout, cfg.OFFCacheTTL)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	api.MountRoutes(r, scorer, off)

	log.Printf("real food score API listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("server: %v", err)
	}
}
