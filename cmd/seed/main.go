// Command seed populates the database with demo users, follows, posts,
// comments, and likes for local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"connectly/internal/config"
	"connectly/internal/database"
	"connectly/internal/seed"

	"gopkg.in/yaml.v3"
)

// profile mirrors seed.Options for YAML-driven runs. Flags override
// whatever the profile sets.
type profile struct {
	Users   int   `yaml:"users"`
	Posts   int   `yaml:"posts"`
	Clean   bool  `yaml:"clean"`
	MaxDays int   `yaml:"max_days"`
	Seed    int64 `yaml:"seed"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed profile: %w", err)
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse seed profile %s: %w", path, err)
	}
	return &p, nil
}

func main() {
	profilePath := flag.String("profile", "", "path to a YAML seed profile")
	users := flag.Int("users", 0, "number of users to create (overrides profile)")
	posts := flag.Int("posts", 0, "number of posts to create (overrides profile)")
	clean := flag.Bool("clean", false, "delete existing data before seeding")
	maxDays := flag.Int("max-days", 0, "spread post timestamps over the past N days")
	randSeed := flag.Int64("seed", 0, "random seed for reproducible data")
	flag.Parse()

	opts := seed.Options{}
	if *profilePath != "" {
		p, err := loadProfile(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load seed profile: %v", err)
		}
		opts = seed.Options{
			NumUsers:    p.Users,
			NumPosts:    p.Posts,
			ShouldClean: p.Clean,
			MaxDays:     p.MaxDays,
			RandSeed:    p.Seed,
		}
	}
	if *users > 0 {
		opts.NumUsers = *users
	}
	if *posts > 0 {
		opts.NumPosts = *posts
	}
	if *clean {
		opts.ShouldClean = true
	}
	if *maxDays > 0 {
		opts.MaxDays = *maxDays
	}
	if *randSeed != 0 {
		opts.RandSeed = *randSeed
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
