package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phonerdokan/internal/config"
	"phonerdokan/internal/domain"
)

func TestWishlistAndBookingDedupeOverHTTP(t *testing.T) {
	app, deps, db := newApp(t, config.Config{})
	seedUser(t, db, "u1", "alice@dokan.test", domain.RoleBuyer)
	if _, err := db.Exec(`
	  INSERT INTO products(id,name,seller_email,category,quantity,price)
	  VALUES('p1','Pixel 6','seller@dokan.test','Phone',1,299)`); err != nil {
		t.Fatal(err)
	}
	tok := bearer(t, deps, "alice@dokan.test")

	// Wishlist: first add 201, second is a soft fail.
	resp, err := app.Test(jsonReq("POST", "/add-to-wishlist", tok, `{"productId":"p1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first wishlist add: want 201, got %d", resp.StatusCode)
	}
	resp, err = app.Test(jsonReq("POST", "/add-to-wishlist", tok, `{"productId":"p1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate wishlist add: want 200, got %d", resp.StatusCode)
	}
	var soft struct {
		Acknowledged bool `json:"acknowledged"`
	}
	decode(t, resp, &soft)
	if soft.Acknowledged {
		t.Fatal("duplicate wishlist add must not be acknowledged")
	}

	// Booking behaves the same way.
	resp, err = app.Test(jsonReq("POST", "/bookItem", tok, `{"productId":"p1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first booking: want 201, got %d", resp.StatusCode)
	}
	resp, err = app.Test(jsonReq("POST", "/bookItem", tok, `{"productId":"p1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("duplicate booking: want 200, got %d", resp.StatusCode)
	}

	// Anonymous callers cannot book at all.
	resp, err = app.Test(jsonReq("POST", "/bookItem", "", `{"productId":"p1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous booking: want 401, got %d", resp.StatusCode)
	}
}

func TestPaymentCompletionOverHTTP(t *testing.T) {
	app, deps, db := newApp(t, config.Config{})
	seedUser(t, db, "u1", "alice@dokan.test", domain.RoleBuyer)
	if _, err := db.Exec(`
	  INSERT INTO products(id,name,seller_email,category,quantity,price)
	  VALUES('P1','Pixel 6','seller@dokan.test','Phone',1,299)`); err != nil {
		t.Fatal(err)
	}
	tok := bearer(t, deps, "alice@dokan.test")

	resp, err := app.Test(jsonReq("POST", "/bookItem", tok, `{"productId":"P1"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("booking: want 201, got %d", resp.StatusCode)
	}
	var booking struct {
		ID string `json:"id"`
	}
	decode(t, resp, &booking)

	resp, err = app.Test(jsonReq("POST", "/payments", "",
		`{"productId":"P1","bookingId":"`+booking.ID+`","transactionId":"tx1","amount":299}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("payment: want 201, got %d", resp.StatusCode)
	}

	var qty, paidCount int
	if err := db.Get(&qty, `SELECT quantity FROM products WHERE id='P1'`); err != nil {
		t.Fatal(err)
	}
	if qty != 0 {
		t.Fatalf("product must be sold out, quantity=%d", qty)
	}
	if err := db.Get(&paidCount, `SELECT COUNT(*) FROM bookings WHERE id=? AND payment_status='PAID' AND transaction_id='tx1'`, booking.ID); err != nil {
		t.Fatal(err)
	}
	if paidCount != 1 {
		t.Fatal("booking was not marked paid with the transaction id")
	}

	// Unknown booking id -> 404.
	resp, err = app.Test(jsonReq("POST", "/payments", "",
		`{"productId":"P1","bookingId":"nope","transactionId":"tx2","amount":299}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown booking: want 404, got %d", resp.StatusCode)
	}
}

func TestCreatePaymentIntentOverHTTP(t *testing.T) {
	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("amount") != "29900" {
			t.Errorf("amount: got %s", r.PostForm.Get("amount"))
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"client_secret": "pi_test_secret"})
	}))
	defer processor.Close()

	app, deps, db := newApp(t, config.Config{PaymentAPIURL: processor.URL, PaymentSecretKey: "sk_test"})
	seedUser(t, db, "u1", "alice@dokan.test", domain.RoleBuyer)
	tok := bearer(t, deps, "alice@dokan.test")

	resp, err := app.Test(jsonReq("POST", "/create-payment-intent", tok, `{"price":299}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create intent: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		ClientSecret string `json:"clientSecret"`
	}
	decode(t, resp, &out)
	if out.ClientSecret != "pi_test_secret" {
		t.Fatalf("clientSecret: got %q", out.ClientSecret)
	}
}

func TestCategoryProductsFilter(t *testing.T) {
	app, _, db := newApp(t, config.Config{})
	if _, err := db.Exec(`INSERT INTO categories(id,name) VALUES('C1','Laptop')`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`
	  INSERT INTO products(id,name,seller_email,category,quantity,price) VALUES
	  ('p-laptop','ThinkPad','s@dokan.test','Laptop',1,900),
	  ('p-phone','Pixel 6','s@dokan.test','Phone',1,299)`); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/categories/C1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var prods []struct {
		ID string `json:"id"`
	}
	decode(t, resp, &prods)
	if len(prods) != 1 || prods[0].ID != "p-laptop" {
		t.Fatalf("category filter: got %+v", prods)
	}

	// Missing category is a 404, not a crash.
	resp, err = app.Test(httptest.NewRequest("GET", "/categories/missing", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing category: want 404, got %d", resp.StatusCode)
	}
}
