package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/config"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/configparser"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/postgres"
)

var (
	configPath    = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	migrationPath = flag.String("migration", "migrations/001_init.sql", "Path to the migration sql file")
)

// Applies the schema migration. Separate binary so deploys can run it once
// before starting either service mode.
func main() {
	flag.Parse()

	ctx := context.Background()

	cfg := &config.Config{}
	if err := configparser.LoadAndParseYaml(*configPath, cfg); err != nil {
		log.Fatal(err)
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Pool.Close()

	sql, err := os.ReadFile(*migrationPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := client.Pool.Exec(ctx, string(sql)); err != nil {
		log.Fatal(err)
	}

	log.Printf("migration %s applied", *migrationPath)
}
