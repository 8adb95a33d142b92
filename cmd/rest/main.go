package main

import (
	"context"
	"log"

	"smart-kitchen-be/internal/bootstrap"
	"smart-kitchen-be/internal/config"
	"smart-kitchen-be/internal/provision"
	"smart-kitchen-be/internal/server"
	"smart-kitchen-be/internal/tracer"
	"smart-kitchen-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Schema + fixed catalog
	if err := provision.Migrate(gormDB); err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	if err := provision.Seed(context.Background(), gormDB); err != nil {
		log.Panicf("Catalog seeding failed: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Audit Consumer...")
		if err := container.AuditService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
