package handler

import (
	"net/http"

	"github.com/stablebook/stablebook/internal/ui"
)

// notFound renders the shared 404 page.
func notFound(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, "notfound.html", "Not Found", nil)
}

// NotFound is the catch-all handler for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

// queryInt parses a query parameter as an int, returning 0 when absent
// or malformed.
func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
		if n > 10000 {
			return 0
		}
	}
	return n
}
