package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"phonerdokan/internal/config"
	"phonerdokan/internal/http/handlers"
	"phonerdokan/internal/repos"
)

// newApp builds the API against an in-memory store, mirroring main's wiring.
func newApp(t *testing.T, cfg config.Config) (*fiber.App, *handlers.Deps, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "test-secret"
	}
	deps := handlers.NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please try again"})
		},
	})
	app.Use(requestid.New())
	handlers.Register(app, deps)
	return app, deps, db
}

func seedUser(t *testing.T, db *sqlx.DB, id, email, role string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO users(id,name,email,password_hash,role) VALUES(?,?,?,?,?)`,
		id, "Test "+id, email, "x", role)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func bearer(t *testing.T, deps *handlers.Deps, email string) string {
	t.Helper()
	tok, err := deps.Tokens.Issue(email)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + tok
}

func jsonReq(method, target, auth, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}

func decode(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
