package http

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	authmw "github.com/purpose-activation/toolkit/internal/auth/middleware"
)

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenHandler issues an access/refresh pair for the configured credential
// pair. POST /api/token {username, password}.
func TokenHandler(tokens *authmw.TokenService, apiUser, apiPassHash string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Username != apiUser ||
			bcrypt.CompareHashAndPassword([]byte(apiPassHash), []byte(req.Password)) != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		pair, err := tokens.IssuePair(req.Username)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "could not issue tokens")
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// RefreshHandler rotates the pair. POST /api/token/refresh with the refresh
// token as the bearer credential; access tokens are rejected here.
func RefreshHandler(tokens *authmw.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tok := authmw.BearerToken(r)
		if tok == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		c, err := tokens.Parse(tok, authmw.TokenTypeRefresh)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, err.Error())
			return
		}
		pair, err := tokens.IssuePair(c.Subject)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "could not issue tokens")
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}
