package main

import (
	"context"
	"fmt"
	"inspection-app/config"
	"inspection-app/controllers/idgen"
	"inspection-app/database"
	"inspection-app/logger"
	"inspection-app/migration"
	"inspection-app/routes"
	seed "inspection-app/seeder"
	"inspection-app/services"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.New("main").Function("main")

	idgen.Init(1)

	clock := services.SystemClock{}
	db, err := database.Open(cfg, clock.Now)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close(db)

	if err := migration.Migrate(db); err != nil {
		log.Er("failed to auto migrate", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewMetrics(registry)

	forms := services.NewInspectionFormService(db, clock, services.NewNotifier(cfg), metrics)
	schedules := services.NewScheduleService(db, cfg.MaxCallsPerDay, metrics)

	if cfg.SeedDemo {
		if err := seed.SeedDemo(context.Background(), forms); err != nil {
			log.Er("failed to seed demo data", err)
			os.Exit(1)
		}
	}

	app := fiber.New(fiber.Config{AppName: "inspection-app"})
	config.SetupCORS(app, cfg.AllowedOrigins)
	routes.SetupRoutes(app, cfg, routes.Deps{
		DB:        db,
		Registry:  registry,
		Forms:     forms,
		Export:    services.NewExportService(forms),
		Schedules: schedules,
	})

	log.Info("server starting", "port", cfg.AppPort, "routes", cfg.MainRoutes)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}
