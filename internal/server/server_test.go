package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectly/internal/config"
	"connectly/internal/database"
	"connectly/internal/models"
	"connectly/internal/repository"
	"connectly/internal/secure"
	"connectly/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "SecurePass12!@"

// newTestServer builds a Server over an in-memory SQLite database with all
// routes registered. Redis is absent; rate limits are bypassed in the test
// environment and caching degrades to direct reads.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))

	key, err := secure.GenerateKey()
	require.NoError(t, err)
	codec, err := secure.NewCodecFromBase64(key)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "server-test-secret",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db, codec)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
	}
	s.postService = service.NewPostService(postRepo, followRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo, followRepo)
	s.likeService = service.NewLikeService(likeRepo, postRepo, followRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.userService = service.NewUserService(userRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app
}

// createTestUser inserts a user with a bcrypt-hashed password and returns it
// together with a valid bearer token.
func createTestUser(t *testing.T, s *Server, username string, role models.Role) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

// createTestPost inserts a post directly, bypassing the HTTP layer.
func createTestPost(t *testing.T, s *Server, userID uint, content string, privacy models.Privacy) *models.Post {
	t.Helper()

	post := &models.Post{Content: content, Privacy: privacy, UserID: userID}
	require.NoError(t, s.db.Create(post).Error)
	return post
}

// follow inserts a follow edge directly.
func follow(t *testing.T, s *Server, followerID, followingID uint) {
	t.Helper()
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: followerID, FollowingID: followingID}).Error)
}

// jsonRequest builds a request with an optional JSON body and bearer token.
func jsonRequest(method, target string, body any, token string) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// decodeBody decodes a JSON response body into dest.
func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// --- authentication middleware ---

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/me", nil, ""))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_RejectsGarbageToken(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/me", nil, "not-a-jwt"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_RejectsWrongSecret(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	_, token := createTestUser(t, s, "wrongsecret", models.RoleUser)

	// Re-sign under a different secret
	s.config.JWTSecret = "rotated-secret"
	defer func() { s.config.JWTSecret = "server-test-secret" }()

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/me", nil, token))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_AcceptsValidToken(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	user, token := createTestUser(t, s, "validtoken", models.RoleUser)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/me", nil, token))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.User
	decodeBody(t, resp, &body)
	assert.Equal(t, user.ID, body.ID)
	assert.Equal(t, "validtoken", body.Username)
}

func TestAuthRequired_RejectsDeletedUser(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	user, token := createTestUser(t, s, "ghost", models.RoleUser)

	require.NoError(t, s.db.Delete(&models.User{}, user.ID).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/users/me", nil, token))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestViewerResolver_BadTokenFallsBackToAnonymous(t *testing.T) {
	t.Parallel()
	s, app := newTestServer(t)
	author, _ := createTestUser(t, s, "resolverauthor", models.RoleUser)
	createTestPost(t, s, author.ID, "public post", models.PrivacyPublic)

	// A garbage token on a public route must not reject the request.
	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/posts", nil, "garbage"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	decodeBody(t, resp, &posts)
	assert.Len(t, posts, 1)
}

// --- health checks ---

func TestLivenessCheck(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/health/live", nil, ""))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadinessCheck(t *testing.T) {
	t.Parallel()
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/health/ready", nil, ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Database)
	assert.Equal(t, "unavailable", body.Checks.Redis)
}
