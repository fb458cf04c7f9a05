// Package seed provides helpers to create demo data for development
// databases. Not for production use.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"connectly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	opts Options
}

// NewFactory creates a Factory bound to the provided Gorm DB. A non-zero
// opts.RandSeed makes the generated data reproducible.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seedVal := opts.RandSeed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gofakeit.Seed(seedVal)
	return &Factory{db: db, rng: rand.New(rand.NewSource(seedVal)), opts: opts}
}

// demoPasswordHash is shared by all seeded users so demo logins are cheap to
// generate; "Password123!@" satisfies the signup validator.
var demoPasswordHash []byte

func (f *Factory) passwordHash() (string, error) {
	if demoPasswordHash == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("Password123!@"), bcrypt.MinCost)
		if err != nil {
			return "", err
		}
		demoPasswordHash = hash
	}
	return string(demoPasswordHash), nil
}

// CreateUser persists a user with fake profile data and the given role.
func (f *Factory) CreateUser(role models.Role) (*models.User, error) {
	hash, err := f.passwordHash()
	if err != nil {
		return nil, err
	}

	username := fmt.Sprintf("%s%d", gofakeit.Username(), f.rng.Intn(10000))
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Password: hash,
		Role:     role,
		Bio:      gofakeit.Sentence(8),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}

// CreatePost persists a post for the user with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User, privacy models.Privacy) (*models.Post, error) {
	post := &models.Post{
		Content: gofakeit.Paragraph(1, 3, 8, "\n"),
		Privacy: privacy,
		UserID:  user.ID,
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("seed post: %w", err)
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	createdAt := time.Now().Add(-time.Duration(f.rng.Intn(maxDays*24)) * time.Hour)
	if err := f.db.Model(post).Update("created_at", createdAt).Error; err != nil {
		return nil, err
	}
	post.CreatedAt = createdAt
	return post, nil
}

// CreateComment persists a comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(f.rng.Intn(12) + 3),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("seed comment: %w", err)
	}
	return comment, nil
}

// CreateLike persists a like; duplicate pairs are skipped silently since the
// mesh generator may pick the same (user, post) twice.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	var count int64
	if err := f.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", user.ID, post.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// CreateFollow persists a follow edge; self-follows and duplicates are
// skipped silently.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	if follower.ID == following.ID {
		return nil
	}
	var count int64
	if err := f.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", follower.ID, following.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Follow{FollowerID: follower.ID, FollowingID: following.ID}).Error
}

// pickPrivacy returns a privacy tier with a realistic skew toward public.
func (f *Factory) pickPrivacy() models.Privacy {
	switch n := f.rng.Intn(10); {
	case n < 6:
		return models.PrivacyPublic
	case n < 9:
		return models.PrivacyFollowers
	default:
		return models.PrivacyPrivate
	}
}
