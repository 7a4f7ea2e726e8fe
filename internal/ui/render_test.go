package ui

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func flashRequest(t *testing.T, target string, flashes []Flash) *http.Request {
	t.Helper()

	payload, err := json.Marshal(flashes)
	if err != nil {
		t.Fatalf("marshal flashes: %v", err)
	}

	r := httptest.NewRequest("GET", target, nil)
	r.AddCookie(&http.Cookie{
		Name:  flashCookieName,
		Value: base64.RawURLEncoding.EncodeToString(payload),
	})
	return r
}

func TestRenderShowsAndClearsFlashes(t *testing.T) {
	r := flashRequest(t, "/dashboard/", []Flash{{Level: FlashSuccess, Message: "Entry saved."}})
	rec := httptest.NewRecorder()

	Render(rec, r, "notfound.html", "Not Found", nil)

	if !strings.Contains(rec.Body.String(), "Entry saved.") {
		t.Error("flash message missing from page")
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie not cleared after render")
	}
}

func TestRenderStatusClearsFlashesBeforeStatus(t *testing.T) {
	r := flashRequest(t, "/entry/nope/", []Flash{{Level: FlashWarning, Message: "stale"}})
	rec := httptest.NewRecorder()

	RenderStatus(rec, r, http.StatusNotFound, "notfound.html", "Not Found", nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	// The clearing Set-Cookie has to land even though the status line is
	// written before the body.
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie not cleared on non-200 render")
	}
}
