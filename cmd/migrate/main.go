package main

import (
	"context"
	"flag"
	"log"
	"time"

	"talent-triage/internal/app"
	"talent-triage/internal/config"
	"talent-triage/internal/database/migration"
	"talent-triage/internal/database/seeder"
)

func main() {
	var (
		dir  = flag.String("dir", "migrations", "directory holding V<n>__name.sql files")
		seed = flag.Bool("seed", true, "seed the default taxonomy after migrating")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		_ = container.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	runner := migration.Runner{Dir: *dir}
	if err := runner.Run(ctx, container.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")

	if *seed {
		seeds := seeder.Runner{Seeders: seeder.Defaults()}
		if err := seeds.Run(ctx, container.DB); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("seed data applied")
	}
}
