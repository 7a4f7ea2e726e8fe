package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/stablebook/stablebook/internal/ctxkeys"
	"github.com/stablebook/stablebook/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages holds one template set per page, each parsed together with the base
// layout so {{template "content" .}} resolves per page.
var pages = map[string]*template.Template{}

func init() {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		panic(err)
	}

	for _, name := range names {
		base := path.Base(name)
		if base == "base.html" {
			continue
		}
		pages[base] = template.Must(
			template.New("base.html").Funcs(funcs).ParseFS(templatesFS, "templates/base.html", name),
		)
	}
}

var funcs = template.FuncMap{
	"timefmt": func(layout string, t interface{ Format(string) string }) string {
		return t.Format(layout)
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Data is the envelope every page template receives. Content carries the
// page-specific view model.
type Data struct {
	Title     string
	AppName   string
	Rider     *model.Rider
	IsTrainer bool
	IsAdmin   bool
	CSRFToken string
	Flashes   []Flash
	Content   any
}

// Render executes the named page template inside the base layout, filling
// the envelope from the request context (session role, CSRF token, pending
// flash messages).
func Render(w http.ResponseWriter, r *http.Request, page, title string, content any) {
	render(w, r, http.StatusOK, page, title, content)
}

// RenderStatus is Render with a non-200 status code (404 page etc).
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	render(w, r, status, page, title, content)
}

func render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("unknown template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	appName := "Stablebook"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		appName = cfg.AppName
	}

	data := &Data{
		Title:     title,
		AppName:   appName,
		Rider:     ctxkeys.Rider(r.Context()),
		IsTrainer: ctxkeys.IsTrainer(r.Context()),
		IsAdmin:   ctxkeys.IsAdmin(r.Context()),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Flashes:   PopFlashes(w, r),
		Content:   content,
	}

	// PopFlashes must run before the status line: its Set-Cookie header is
	// lost once WriteHeader has been called.
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	err := tmpl.ExecuteTemplate(w, "base.html", data)
	if err != nil {
		slog.Error("render failed", "error", err, "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
