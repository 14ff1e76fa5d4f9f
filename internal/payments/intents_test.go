package payments_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phonerdokan/internal/payments"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{120, 12000},
		{19.99, 1999},
		{9.999, 1000}, // rounds, never truncates
		{0.005, 1},
	}
	for _, tc := range cases {
		if got := payments.MinorUnits(tc.price); got != tc.want {
			t.Fatalf("MinorUnits(%v): want %d, got %d", tc.price, tc.want, got)
		}
	}
}

func TestCreateIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_123" {
			t.Errorf("bad auth header %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("amount") != "12000" || r.PostForm.Get("currency") != "usd" {
			t.Errorf("bad form %v", r.PostForm)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"client_secret": "pi_1_secret_abc"})
	}))
	defer srv.Close()

	client := payments.NewClient(srv.URL, "sk_test_123")
	secret, err := client.CreateIntent(context.Background(), 12000, "usd")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if secret != "pi_1_secret_abc" {
		t.Fatalf("client secret: got %s", secret)
	}
}

func TestCreateIntentProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "Your card was declined."},
		})
	}))
	defer srv.Close()

	client := payments.NewClient(srv.URL, "sk_test_123")
	if _, err := client.CreateIntent(context.Background(), 100, "usd"); err == nil {
		t.Fatal("want error from processor failure")
	}
}
