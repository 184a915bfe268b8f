package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"audit-engine/internal/config"
	"audit-engine/internal/corridor"
	"audit-engine/internal/engine"
	"audit-engine/internal/handler"
	"audit-engine/internal/projection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	corridors, err := corridor.Load(cfg.CorridorTablePath)
	if err != nil {
		log.Printf("Corridor table: %v; using built-in defaults", err)
	}
	scenarios, err := projection.LoadAssumptions(cfg.ScenarioTablePath)
	if err != nil {
		log.Printf("Scenario table: %v; using built-in defaults", err)
	}

	h := handler.New(engine.New(corridors, scenarios))
	srv := &fasthttp.Server{
		Handler:      h.Route,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Printf("Audit engine starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
