package main

import (
	"context"
	"flag"
	"log"

	"github.com/hamkar/worklog-backend-go/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	dir := flag.String("dir", "db/migrations", "sql migrations directory")
	command := flag.String("command", "up", "goose command (up, down, status)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v", err)
	}
	defer db.Close()
	goose.SetTableName("schema_migrations")

	if err := goose.RunContext(context.Background(), *command, db, *dir); err != nil {
		log.Fatalf("goose %s: %v", *command, err)
	}
}
