package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stablebook/stablebook/internal/ctxkeys"
)

func TestCSRFGetIssuesToken(t *testing.T) {
	var token string
	h := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = ctxkeys.CSRFToken(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if token == "" {
		t.Fatal("no CSRF token in context on GET")
	}

	var cookieToken string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "csrf_token" {
			cookieToken = c.Value
		}
	}
	if cookieToken != token {
		t.Errorf("cookie token %q != context token %q", cookieToken, token)
	}
}

func TestCSRFPostWithoutTokenRejected(t *testing.T) {
	h := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran without a CSRF token")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/goals/add/", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestCSRFPostWithMatchingTokenAccepted(t *testing.T) {
	// First GET to obtain the cookie token.
	var issued string
	get := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		issued = ctxkeys.CSRFToken(r.Context())
	}))
	get.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	called := false
	post := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	form := url.Values{"csrf_token": {issued}, "title": {"x"}}
	req := httptest.NewRequest("POST", "/goals/add/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: issued})

	rec := httptest.NewRecorder()
	post.ServeHTTP(rec, req)

	if !called {
		t.Errorf("valid CSRF submission rejected: status %d", rec.Code)
	}
}

func TestCSRFHeaderToken(t *testing.T) {
	var issued string
	get := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		issued = ctxkeys.CSRFToken(r.Context())
	}))
	get.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	called := false
	post := CSRFProtection(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("POST", "/entry/e-1/alert/", nil)
	req.Header.Set("X-CSRF-Token", issued)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: issued})

	post.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("header CSRF token rejected")
	}
}
