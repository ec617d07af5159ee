// Package apiclient is the Go client for the Purpose Activation Toolkit API.
// It attaches bearer credentials to authenticated calls and transparently
// refreshes the access token once when a request is rejected as unauthorized.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// Options controls authentication behavior for one request.
type Options struct {
	// Auth attaches the stored access token as a bearer credential. A
	// missing token is not an error; the request goes out unauthenticated
	// and the server decides.
	Auth bool
	// RetryOnUnauthorized allows a single token refresh + retry when the
	// server answers 401. Ignored unless Auth is set.
	RetryOnUnauthorized bool
	// ContentType overrides the default JSON content type for the body.
	ContentType string
}

type Client struct {
	base    string
	http    *http.Client
	session *Session
}

type Config struct {
	BaseURL string
	Session *Session // optional; a fresh one is created when nil
	Timeout time.Duration
}

func New(cfg Config) *Client {
	s := cfg.Session
	if s == nil {
		s = NewSession()
	}
	h := &http.Client{}
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	return &Client{base: strings.TrimSuffix(cfg.BaseURL, "/"), http: h, session: s}
}

// Session exposes the token store, mainly so callers can check login state.
func (c *Client) Session() *Session { return c.session }

// Do issues method path with the given body and decodes the response into
// out. Bodies are JSON-encoded unless already raw ([]byte / io.Reader).
// Responses are JSON-decoded only when the server declares a JSON content
// type; other bodies are returned as text via a *string out. An empty
// response body is a successful empty result and leaves out untouched.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any, opt Options) error {
	payload, contentType, err := encodeBody(body, opt.ContentType)
	if err != nil {
		return err
	}

	status, respBody, respType, err := c.send(ctx, method, path, payload, contentType, opt.Auth)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && opt.Auth && opt.RetryOnUnauthorized {
		original := &APIError{Status: status, Message: errorMessage(status, respBody)}
		if !c.refresh(ctx) {
			c.session.Clear()
			return original
		}
		status, respBody, respType, err = c.send(ctx, method, path, payload, contentType, true)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		return &APIError{Status: status, Message: errorMessage(status, respBody)}
	}
	return decodeResponse(respBody, respType, out)
}

// send performs one HTTP round trip and drains the body.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType string, auth bool) (int, []byte, string, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return 0, nil, "", err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		if access, _ := c.session.Tokens(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}
	res, err := c.http.Do(req)
	if err != nil {
		return 0, nil, "", err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, "", err
	}
	return res.StatusCode, body, res.Header.Get("Content-Type"), nil
}

// refresh rotates the token pair using the stored refresh token. Returns
// false when no refresh token is stored or the refresh call fails; the
// caller then clears the session and surfaces the original error.
func (c *Client) refresh(ctx context.Context) bool {
	_, refreshTok := c.session.Tokens()
	if refreshTok == "" {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/token/refresh", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+refreshTok)
	res, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return false
	}
	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&pair); err != nil || pair.AccessToken == "" {
		return false
	}
	c.session.Set(pair.AccessToken, pair.RefreshToken)
	return true
}

func encodeBody(body any, contentType string) ([]byte, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		// Raw payloads keep whatever content type the caller set.
		return b, contentType, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		return data, contentType, err
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		if contentType == "" {
			contentType = "application/json"
		}
		return data, contentType, nil
	}
}

func decodeResponse(body []byte, contentType string, out any) error {
	if len(body) == 0 || out == nil {
		return nil
	}
	if isJSON(contentType) {
		return json.Unmarshal(body, out)
	}
	if s, ok := out.(*string); ok {
		*s = string(body)
	}
	return nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
