// Package label serves the generated PDF label.
package label

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labelforge/labelpress/pkg/pdf"
)

// Handler handles label download endpoints.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new label handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Print streams the stock label as a PDF attachment.
// GET /print
//
// Each request renders into its own buffer; there is no shared file on
// disk, so concurrent downloads cannot interfere.
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pdf.DefaultLabel().Write(&buf); err != nil {
		h.logger.Error("label render failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="label.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}
