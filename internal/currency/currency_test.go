package currency

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func ratesServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if r.URL.Path != "/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base":"USD","date":"2026-02-09","rates":{"EUR":0.92,"GBP":0.79,"JPY":149.5}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRates(t *testing.T) {
	var calls int
	server := ratesServer(t, &calls)

	clock := time.Now()
	c := New(WithBaseURL(server.URL), WithClock(func() time.Time { return clock }))

	rates, date, err := c.Rates(context.Background())
	if err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if date != "2026-02-09" {
		t.Errorf("date = %q", date)
	}
	if rates["USD"] != 1 {
		t.Errorf("USD rate = %v, want 1", rates["USD"])
	}
	if rates["EUR"] != 0.92 {
		t.Errorf("EUR rate = %v, want 0.92", rates["EUR"])
	}
}

func TestRatesCaching(t *testing.T) {
	var calls int
	server := ratesServer(t, &calls)

	clock := time.Now()
	c := New(WithBaseURL(server.URL), WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	if _, _, err := c.Rates(ctx); err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if _, _, err := c.Rates(ctx); err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (second hit served from cache)", calls)
	}

	// Advance past the TTL; the cache must refresh.
	clock = clock.Add(61 * time.Minute)
	if _, _, err := c.Rates(ctx); err != nil {
		t.Fatalf("Rates failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 after TTL expiry", calls)
	}
}

func TestRatesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	c := New(WithBaseURL(server.URL))
	if _, _, err := c.Rates(context.Background()); err == nil {
		t.Error("expected an error for a failing upstream")
	}
}

func TestConvert(t *testing.T) {
	rates := map[string]float64{"USD": 1, "EUR": 0.92}
	got, ok := Convert(100, rates, "EUR")
	if !ok || math.Abs(got-92) > 1e-9 {
		t.Errorf("Convert = %v, %v, want 92, true", got, ok)
	}
	if _, ok := Convert(100, rates, "XYZ"); ok {
		t.Error("Convert accepted an unknown currency")
	}
}
