package ui

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

const flashCookieName = "flash"

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
)

// Flash is a one-shot message shown on the next rendered page, carried in a
// short-lived cookie across the redirect that follows a form submission.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash queues a flash message for the next page render.
func SetFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	flashes := readFlashes(r)
	flashes = append(flashes, Flash{Level: level, Message: message})

	payload, err := json.Marshal(flashes)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})
}

// PopFlashes returns pending flash messages and clears the cookie.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if len(flashes) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})

	return flashes
}

func readFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	err = json.Unmarshal(payload, &flashes)
	if err != nil {
		return nil
	}

	return flashes
}
