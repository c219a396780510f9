// Package dashboard renders the protected landing page. The session
// guard runs before this handler, so a request reaching it always
// carries a verified session.
package dashboard

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/labelforge/labelpress/internal/http/middleware"
)

// Handler handles the dashboard page.
type Handler struct {
	templates *template.Template
}

// NewHandler creates a new dashboard handler.
func NewHandler(templatesDir string) (*Handler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		templates: tmpl,
	}, nil
}

// PageData holds data for the dashboard template.
type PageData struct {
	Title    string
	TenantID string
}

// Show renders the dashboard.
// GET /dashboard
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		// Guard misconfiguration, not a user error.
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := PageData{Title: "Dashboard", TenantID: sess.TenantID}
	if err := h.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
