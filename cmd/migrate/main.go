// Command migrate applies, rolls back, or reports the SQL migrations
// embedded in internal/database. Production schemas are managed here;
// development relies on AutoMigrate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"connectly/internal/config"
	"connectly/internal/database"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up              apply all pending migrations
  down <version>  roll back the migration with the given version
  status          list registered migrations and whether each is applied
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch flag.Arg(0) {
	case "up":
		if err := database.RunMigrations(ctx, db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")

	case "down":
		if flag.NArg() < 2 {
			usage()
		}
		var version int
		if _, err := fmt.Sscanf(flag.Arg(1), "%d", &version); err != nil || version <= 0 {
			log.Fatalf("Invalid migration version %q", flag.Arg(1))
		}
		if err := database.RollbackMigration(ctx, db, version); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Printf("Rolled back migration %06d", version)

	case "status":
		store := database.NewMigrationStore(db)
		applied, err := store.GetAppliedMigrations(ctx)
		if err != nil {
			log.Fatalf("Failed to read migration log: %v", err)
		}
		appliedSet := make(map[int]bool, len(applied))
		for _, v := range applied {
			appliedSet[v] = true
		}
		for _, m := range database.GetMigrations() {
			state := "pending"
			if appliedSet[m.Version] {
				state = "applied"
			}
			fmt.Printf("%06d  %-40s %s\n", m.Version, m.Name, state)
		}

	default:
		usage()
	}
}
