// Package design implements saving a label design to the remote
// tenant-scoped record store.
package design

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/labelforge/labelpress/internal/http/middleware"
	"github.com/labelforge/labelpress/internal/httputil"
	"github.com/labelforge/labelpress/pkg/domain"
	"github.com/labelforge/labelpress/pkg/supabase"
)

// Placeholder record values. The UI captures no per-user customization
// yet; every save stores the same stock design under a fresh id.
const (
	recordName   = "Label Design"
	recordWidth  = 400
	recordHeight = 200
)

// Handler handles design record endpoints.
type Handler struct {
	logger *slog.Logger
	client *supabase.Client

	// strict selects whether a failed upstream insert surfaces to the
	// caller (502 with the upstream body) or is logged and reported as
	// success, matching the historical fire-and-forget behavior.
	strict bool
}

// NewHandler creates a new design handler.
func NewHandler(logger *slog.Logger, client *supabase.Client, strict bool) *Handler {
	return &Handler{
		logger: logger,
		client: client,
		strict: strict,
	}
}

// Save inserts a design record for the session's tenant.
// POST /save_design
//
// Requires the session guard; the record carries the tenant id the
// guard verified, so tenants can never write into each other's store.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSession(r.Context())
	if !ok {
		httputil.Text(w, http.StatusUnauthorized, domain.ErrAuthenticationRequired.Error())
		return
	}

	record := domain.DesignRecord{
		ID:       uuid.NewString(),
		TenantID: sess.TenantID,
		Name:     recordName,
		Width:    recordWidth,
		Height:   recordHeight,
	}

	err := h.client.InsertDesign(r.Context(), sess.AccessToken, record)
	if err != nil {
		var upstream *domain.UpstreamError
		switch {
		case h.strict && errors.As(err, &upstream):
			h.logger.Warn("design insert rejected", "status", upstream.StatusCode, "tenant_id", record.TenantID)
			httputil.Text(w, http.StatusBadGateway, "Save failed: "+upstream.Body)
			return
		case h.strict:
			h.logger.Error("design insert failed", "error", err, "tenant_id", record.TenantID)
			httputil.Text(w, http.StatusBadGateway, "upstream service unavailable")
			return
		default:
			// Lenient mode: acknowledge regardless, but leave a trace.
			h.logger.Warn("design insert failed (ignored)", "error", err, "tenant_id", record.TenantID)
		}
	}

	httputil.Text(w, http.StatusOK, "Saved")
}
