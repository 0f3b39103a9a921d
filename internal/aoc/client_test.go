package aoc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gisleudo-cortez/aoc-init/internal/model"
)

func TestClient_FetchInput(t *testing.T) {
	ch := model.Challenge{Year: 2024, Day: 7}

	t.Run("success sends cookie and user agent", func(t *testing.T) {
		var gotPath, gotUA, gotCookie string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUA = r.Header.Get("User-Agent")
			if c, err := r.Cookie("session"); err == nil {
				gotCookie = c.Value
			}
			_, _ = w.Write([]byte("190\n3267\n"))
		}))
		defer ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "secret-cookie"})
		body, err := client.FetchInput(context.Background(), ch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if body != "190\n3267\n" {
			t.Errorf("body = %q", body)
		}
		if gotPath != "/2024/day/7/input" {
			t.Errorf("path = %q, want /2024/day/7/input", gotPath)
		}
		if gotCookie != "secret-cookie" {
			t.Errorf("session cookie = %q, want secret-cookie", gotCookie)
		}
		if gotUA == "" {
			t.Error("User-Agent header not set")
		}
	})

	t.Run("404 -> not released", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "s"})
		_, err := client.FetchInput(context.Background(), ch)
		if !errors.Is(err, ErrNotReleased) {
			t.Fatalf("error = %v, want ErrNotReleased", err)
		}
	})

	t.Run("400 with unlock notice -> not released", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("Please don't repeatedly request this endpoint before it unlocks!"))
		}))
		defer ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "s"})
		_, err := client.FetchInput(context.Background(), ch)
		if !errors.Is(err, ErrNotReleased) {
			t.Fatalf("error = %v, want ErrNotReleased", err)
		}
	})

	t.Run("401 -> bad session", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "expired"})
		_, err := client.FetchInput(context.Background(), ch)
		if !errors.Is(err, ErrBadSession) {
			t.Fatalf("error = %v, want ErrBadSession", err)
		}
	})

	t.Run("500 -> status error with snippet", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("server melted"))
		}))
		defer ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "s"})
		_, err := client.FetchInput(context.Background(), ch)

		var statusErr *StatusError
		if !errors.As(err, &statusErr) {
			t.Fatalf("error = %v, want *StatusError", err)
		}
		if statusErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
		}
		if statusErr.Body != "server melted" {
			t.Errorf("Body = %q, want snippet", statusErr.Body)
		}
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "s"})
		_, err := client.FetchInput(context.Background(), ch)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestClient_LatestDay(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2024" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<a href="/2024/day/1">1</a><a href="/2024/day/8">8</a>`))
	}))
	defer ts.Close()

	client := NewClient(ClientConfig{BaseURL: ts.URL, Session: "s"})
	latest, err := client.LatestDay(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != 8 {
		t.Errorf("LatestDay = %d, want 8", latest)
	}
}
