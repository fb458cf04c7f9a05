package seed

import (
	"fmt"
	"log"

	"connectly/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// MaxDays bounds how far back post timestamps are spread (default 90).
	MaxDays int
	// RandSeed makes runs reproducible when non-zero.
	RandSeed int64
}

// Run populates the database with a demo social mesh: users across all
// roles, a follow graph, posts in every privacy tier, comments and likes.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = opts.NumUsers * 3
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	f := NewFactory(db, opts)

	log.Printf("Seeding %d users...", opts.NumUsers)
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		role := models.RoleUser
		switch {
		case i == 0:
			role = models.RoleAdmin
		case i < 1+opts.NumUsers/10:
			role = models.RoleModerator
		}
		user, err := f.CreateUser(role)
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	log.Println("Seeding follow graph...")
	for _, follower := range users {
		// each user follows a handful of others
		for n := f.rng.Intn(5) + 1; n > 0; n-- {
			if err := f.CreateFollow(follower, users[f.rng.Intn(len(users))]); err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
		}
	}

	log.Printf("Seeding %d posts...", opts.NumPosts)
	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		post, err := f.CreatePost(author, f.pickPrivacy())
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}

	log.Println("Seeding comments and likes...")
	for _, post := range posts {
		for n := f.rng.Intn(4); n > 0; n-- {
			if _, err := f.CreateComment(users[f.rng.Intn(len(users))], post); err != nil {
				return err
			}
		}
		for n := f.rng.Intn(6); n > 0; n-- {
			if err := f.CreateLike(users[f.rng.Intn(len(users))], post); err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
		}
	}

	log.Println("Seeding complete")
	return nil
}

// Clean removes all seeded data. Order matters for foreign keys.
func Clean(db *gorm.DB) error {
	log.Println("Cleaning existing data...")
	for _, model := range []any{
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error; err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}
	return nil
}
