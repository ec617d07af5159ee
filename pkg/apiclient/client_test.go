package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(h http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := New(Config{BaseURL: srv.URL})
	return c, srv
}

func TestDo_DefaultsJSONContentType(t *testing.T) {
	var gotType string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := c.Do(context.Background(), "POST", "/api/intent", map[string]string{"statement": "x"}, nil, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotType != "application/json" {
		t.Fatalf("content type = %q; want application/json", gotType)
	}
}

func TestDo_RawBodyKeepsCallerContentType(t *testing.T) {
	var gotType string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := c.Do(context.Background(), "POST", "/upload", []byte("blob"), nil, Options{ContentType: "application/octet-stream"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotType != "application/octet-stream" {
		t.Fatalf("content type = %q; want application/octet-stream", gotType)
	}
}

func TestDo_EmptyResponseIsSuccess(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	out := map[string]string{"untouched": "yes"}
	if err := c.Do(context.Background(), "GET", "/x", nil, &out, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["untouched"] != "yes" {
		t.Fatalf("out was modified on empty response: %v", out)
	}
}

func TestDo_TextResponse(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	var out string
	if err := c.Do(context.Background(), "GET", "/ping", nil, &out, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "pong" {
		t.Fatalf("out = %q; want pong", out)
	}
}

func TestDo_ErrorMessageFallbackChain(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{"detail wins", "application/json", `{"detail":"bad thing","message":"other"}`, "bad thing"},
		{"message next", "application/json", `{"message":"second choice"}`, "second choice"},
		{"raw text", "text/plain", "plain failure", "plain failure"},
		{"generic", "text/plain", "", "request failed with status 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := c.Do(context.Background(), "GET", "/x", nil, nil, Options{})
			if err == nil {
				t.Fatalf("expected error")
			}
			ae, ok := err.(*APIError)
			if !ok {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if ae.Message != tc.want {
				t.Fatalf("message = %q; want %q", ae.Message, tc.want)
			}
		})
	}
}

func TestDo_NoTokenStillSends(t *testing.T) {
	var gotAuth string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Auth requested but no token stored: request proceeds unauthenticated.
	if err := c.Do(context.Background(), "GET", "/x", nil, nil, Options{Auth: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("authorization header = %q; want empty", gotAuth)
	}
}

// refreshTestServer simulates an API where the first access token is expired.
type refreshTestServer struct {
	refreshCalls  int
	refreshFails  bool
	protectedHits int
}

func (s *refreshTestServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		s.refreshCalls++
		if s.refreshFails {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired."}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer refresh-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "access-2",
			"refresh_token": "refresh-2",
		})
	})
	mux.HandleFunc("/api/protected", func(w http.ResponseWriter, r *http.Request) {
		s.protectedHits++
		switch r.Header.Get("Authorization") {
		case "Bearer access-2":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"welcome back"}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token is invalid or expired."}`))
		}
	})
	return mux
}

func TestDo_RefreshAndRetrySucceeds(t *testing.T) {
	state := &refreshTestServer{}
	c, srv := newTestClient(state.handler())
	defer srv.Close()
	c.Session().Set("access-1", "refresh-1") // access-1 is expired server-side

	var out struct {
		Message string `json:"message"`
	}
	err := c.Do(context.Background(), "GET", "/api/protected", nil, &out,
		Options{Auth: true, RetryOnUnauthorized: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "welcome back" {
		t.Fatalf("message = %q; want the retried response", out.Message)
	}
	if state.refreshCalls != 1 {
		t.Fatalf("refresh calls = %d; want exactly 1", state.refreshCalls)
	}
	if state.protectedHits != 2 {
		t.Fatalf("protected hits = %d; want 2 (original + retry)", state.protectedHits)
	}
	access, refresh := c.Session().Tokens()
	if access != "access-2" || refresh != "refresh-2" {
		t.Fatalf("session = (%q, %q); want rotated pair", access, refresh)
	}
}

func TestDo_RefreshFailureClearsTokensAndKeepsOriginalError(t *testing.T) {
	state := &refreshTestServer{refreshFails: true}
	c, srv := newTestClient(state.handler())
	defer srv.Close()
	c.Session().Set("access-1", "refresh-1")

	err := c.Do(context.Background(), "GET", "/api/protected", nil, nil,
		Options{Auth: true, RetryOnUnauthorized: true})
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	// The surfaced error is the original request's, not the refresh call's.
	if err.Error() != "Token is invalid or expired." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if state.protectedHits != 1 {
		t.Fatalf("protected hits = %d; want 1 (no retry after failed refresh)", state.protectedHits)
	}
	if c.Session().Authenticated() {
		t.Fatalf("expected session cleared after failed refresh")
	}
	if _, refresh := c.Session().Tokens(); refresh != "" {
		t.Fatalf("expected refresh token cleared")
	}
}

func TestDo_NoRefreshTokenSkipsRefresh(t *testing.T) {
	state := &refreshTestServer{}
	c, srv := newTestClient(state.handler())
	defer srv.Close()
	c.Session().Set("access-1", "") // no refresh token stored

	err := c.Do(context.Background(), "GET", "/api/protected", nil, nil,
		Options{Auth: true, RetryOnUnauthorized: true})
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if state.refreshCalls != 0 {
		t.Fatalf("refresh calls = %d; want 0", state.refreshCalls)
	}
	if c.Session().Authenticated() {
		t.Fatalf("expected session cleared")
	}
}

func TestDo_NoRetryWhenDisabled(t *testing.T) {
	state := &refreshTestServer{}
	c, srv := newTestClient(state.handler())
	defer srv.Close()
	c.Session().Set("access-1", "refresh-1")

	err := c.Do(context.Background(), "GET", "/api/protected", nil, nil, Options{Auth: true})
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if state.refreshCalls != 0 || state.protectedHits != 1 {
		t.Fatalf("refresh=%d hits=%d; want 0/1", state.refreshCalls, state.protectedHits)
	}
}

func TestLoginStoresPairAndLogoutClears(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "admin" || req["password"] != "purpose" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid credentials."}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": "a1", "refresh_token": "r1",
		})
	})
	c, srv := newTestClient(mux)
	defer srv.Close()

	if err := c.Login(context.Background(), "admin", "wrong"); !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if err := c.Login(context.Background(), "admin", "purpose"); err != nil {
		t.Fatalf("login: %v", err)
	}
	access, refresh := c.Session().Tokens()
	if access != "a1" || refresh != "r1" {
		t.Fatalf("session = (%q,%q); want (a1,r1)", access, refresh)
	}
	c.Logout()
	if c.Session().Authenticated() {
		t.Fatalf("expected cleared session after logout")
	}
}
