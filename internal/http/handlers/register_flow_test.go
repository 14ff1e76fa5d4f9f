package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"phonerdokan/internal/config"
	"phonerdokan/internal/domain"
)

func TestLiveness(t *testing.T) {
	app, _, _ := newApp(t, config.Config{})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
}

func TestRegisterDuplicateSoftFails(t *testing.T) {
	app, _, db := newApp(t, config.Config{})

	body := `{"name":"Alice","email":"alice@dokan.test","password":"Passw0rd!","role":"buyer"}`
	resp, err := app.Test(jsonReq("POST", "/users", "", body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: want 201, got %d", resp.StatusCode)
	}

	// Same email again: 200 with acknowledged=false, not an HTTP error.
	resp, err = app.Test(jsonReq("POST", "/users", "", body))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate register: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Acknowledged bool   `json:"acknowledged"`
		Message      string `json:"message"`
	}
	decode(t, resp, &out)
	if out.Acknowledged || out.Message == "" {
		t.Fatalf("duplicate register body: %+v", out)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE email='alice@dokan.test'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want exactly one user, got %d", n)
	}
}

func TestTokenIssuance(t *testing.T) {
	app, _, db := newApp(t, config.Config{})

	// Unknown email -> 403, no token.
	resp, err := app.Test(httptest.NewRequest("GET", "/jwt?email=ghost@dokan.test", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unknown email: want 403, got %d", resp.StatusCode)
	}

	seedUser(t, db, "u1", "alice@dokan.test", domain.RoleBuyer)
	resp, err = app.Test(httptest.NewRequest("GET", "/jwt?email=alice@dokan.test", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("known email: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	decode(t, resp, &out)
	if out.AccessToken == "" {
		t.Fatal("no accessToken in response")
	}

	// The issued token is usable on an authenticated route.
	req := jsonReq("GET", "/users/admin/alice@dokan.test", "Bearer "+out.AccessToken, "")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("authenticated route with issued token: want 200, got %d", resp.StatusCode)
	}
	var check struct {
		IsAdmin bool `json:"isAdmin"`
	}
	decode(t, resp, &check)
	if check.IsAdmin {
		t.Fatal("buyer reported as admin")
	}
}
