package main

import (
	"net/http"
	"os"
	"time"

	"microdose-web/internal/platform/logger"
	"microdose-web/internal/router"
)

// @title Microdose Web JSON API
// @version 1.0
// @description Feed JSON que consume el frontend embebido (calendario y widgets).
// @BasePath /api
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	opts := router.Options{
		APIBaseURL: os.Getenv("API_BASE_URL"), // vacío = modo dev sin backend
		Log:        log,
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.APITimeout = d
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.SessionTTL = d
		}
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("startup failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
