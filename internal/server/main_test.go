package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"simpleadvert/internal/auth"
	"simpleadvert/internal/config"
	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
	"simpleadvert/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app    *fiber.App
	db     *gorm.DB
	tokens *auth.Tokens
}

func testConfig() *config.Config {
	return &config.Config{
		AppTitle:               "SimpleAdvert API",
		JWTSecret:              "test-secret",
		JWTIssuer:              "simpleadvert-api",
		JWTAudience:            "simpleadvert-client",
		RateLimitMax:           30,
		RateLimitWindowSeconds: 60,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, testConfig(), nil)
}

// newTestEnvWith builds the app on a fresh SQLite database with the given config and Redis client.
func newTestEnvWith(t *testing.T, cfg *config.Config, rdb *redis.Client) *testEnv {
	t.Helper()
	db := testutil.NewSQLiteDB(t)

	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)

	return &testEnv{
		app:    srv.NewApp(),
		db:     db,
		tokens: auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
	}
}

// user creates an account and returns it with a bearer token.
func (e *testEnv) user(t *testing.T, email string, superuser bool) (*models.User, string) {
	t.Helper()
	u := &models.User{Email: email, Password: "hash", IsActive: true, IsSuperuser: superuser}
	require.NoError(t, repository.NewUserRepository(e.db).Create(t.Context(), u))
	token, err := e.tokens.Issue(u.ID, time.Hour)
	require.NoError(t, err)
	return u, token
}

// do sends a request; body may be nil, a raw string, or a value to marshal.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func (e *testEnv) createAdvert(t *testing.T, token, description string) models.Advert {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/adverts", token, map[string]any{
		"title":       "Bike",
		"description": description,
		"kind":        "Продажа",
		"price":       100,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	return decode[models.Advert](t, body)
}
