package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Locate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/203.0.113.9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status": "success", "lat": 48.85, "lon": 2.35}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	lat, lng, err := client.Locate(context.Background(), "203.0.113.9")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if lat != 48.85 || lng != 2.35 {
		t.Fatalf("unexpected coordinates %f,%f", lat, lng)
	}
}

func TestClient_Locate_RejectsPrivateAddress(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://unused"})

	if _, _, err := client.Locate(context.Background(), "192.168.1.10"); err == nil {
		t.Fatal("expected error for private address")
	}
	if _, _, err := client.Locate(context.Background(), "127.0.0.1"); err == nil {
		t.Fatal("expected error for loopback address")
	}
	if _, _, err := client.Locate(context.Background(), "not-an-ip"); err == nil {
		t.Fatal("expected error for malformed address")
	}
}

func TestClient_Locate_ProviderFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "fail", "message": "reserved range"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})

	if _, _, err := client.Locate(context.Background(), "203.0.113.9"); err == nil {
		t.Fatal("expected error for failed lookup")
	}
}
