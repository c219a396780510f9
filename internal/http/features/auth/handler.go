// Package auth implements registration, login, and logout against the
// remote identity service. No credential is verified locally; the
// handlers relay form input upstream and translate the outcome into a
// redirect, an error page, or a session cookie.
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labelforge/labelpress/internal/httputil"
	"github.com/labelforge/labelpress/pkg/domain"
	"github.com/labelforge/labelpress/pkg/session"
	"github.com/labelforge/labelpress/pkg/supabase"
)

// Handler handles authentication endpoints.
type Handler struct {
	logger       *slog.Logger
	client       *supabase.Client
	sessions     *session.Store
	cookieConfig httputil.CookieConfig
}

// NewHandler creates a new auth handler.
func NewHandler(logger *slog.Logger, client *supabase.Client, sessions *session.Store) *Handler {
	return &Handler{
		logger:       logger,
		client:       client,
		sessions:     sessions,
		cookieConfig: httputil.DefaultCookieConfig(),
	}
}

// registerForm is the typed registration input.
type registerForm struct {
	Email    string
	Password string
	TenantID string
}

func (f *registerForm) validate() error {
	if f.Email == "" {
		return errors.New("email is required")
	}
	if f.Password == "" {
		return errors.New("password is required")
	}
	if f.TenantID == "" {
		return errors.New("tenant_id is required")
	}
	return nil
}

// loginForm is the typed login input.
type loginForm struct {
	Email    string
	Password string
}

func (f *loginForm) validate() error {
	if f.Email == "" {
		return errors.New("email is required")
	}
	if f.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// Register handles account creation.
// POST /register
//
// The upstream service owns all email/password validation. A rejected
// signup is relayed verbatim so the caller sees the upstream reason;
// login deliberately does not get the same treatment.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		TenantID: r.PostFormValue("tenant_id"),
	}
	if err := form.validate(); err != nil {
		httputil.Text(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.client.SignUp(r.Context(), supabase.NewSignUpRequest(form.Email, form.Password, form.TenantID))
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			h.logger.Info("signup rejected", "status", upstream.StatusCode)
			httputil.Text(w, http.StatusBadRequest, "Signup failed: "+upstream.Body)
			return
		}
		h.logger.Error("signup request failed", "error", err)
		httputil.Text(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles password login.
// POST /
//
// On success the upstream access token and the tenant id from the
// account metadata go into the signed session cookie. Any upstream
// rejection collapses to the fixed "Login failed" text.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := form.validate(); err != nil {
		httputil.Text(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.client.SignInWithPassword(r.Context(), form.Email, form.Password)
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			httputil.Text(w, http.StatusUnauthorized, "Login failed")
			return
		}
		h.logger.Error("login request failed", "error", err)
		httputil.Text(w, http.StatusBadGateway, "upstream service unavailable")
		return
	}

	sess := domain.Session{
		AccessToken: resp.AccessToken,
		TenantID:    resp.User.UserMetadata.TenantID,
	}
	if !sess.IsValid() {
		// An account without a tenant id cannot form a usable session.
		h.logger.Error("login response missing tenant_id", "email", form.Email)
		httputil.Text(w, http.StatusUnauthorized, "Login failed")
		return
	}

	value, err := h.sessions.Issue(sess)
	if err != nil {
		h.logger.Error("failed to issue session", "error", err)
		httputil.Text(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	httputil.SetSessionCookie(w, value, h.sessions.TTL(), h.cookieConfig)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session cookie.
// POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearSessionCookie(w, h.cookieConfig)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
