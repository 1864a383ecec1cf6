package handler

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/hng13/deploypage/internal/api/middleware"
	"github.com/hng13/deploypage/internal/domain"
)

// PageRenderer writes the deployment page. Satisfied by *page.Renderer.
type PageRenderer interface {
	Render(w io.Writer) error
	Variant() domain.Variant
}

// PageHandler serves the deployment status page.
type PageHandler struct {
	renderer PageRenderer
	logger   *zap.Logger
	onRender func(domain.Variant)
}

// NewPageHandler constructs the handler. onRender is optional (nil = no-op).
func NewPageHandler(renderer PageRenderer, logger *zap.Logger, onRender func(domain.Variant)) *PageHandler {
	if onRender == nil {
		onRender = func(domain.Variant) {}
	}
	return &PageHandler{renderer: renderer, logger: logger, onRender: onRender}
}

// Home handles GET /
//
// @Summary  Deployment status page with the current server time
// @Tags     page
// @Produce  html
// @Success  200  {string}  string  "HTML page"
// @Router   / [get]
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	// Nothing is written to w until the whole page has rendered.
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf); err != nil {
		h.logger.Error("render page failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.String("variant", string(h.renderer.Variant())),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondHTML(w, http.StatusOK, buf.Bytes())
	h.onRender(h.renderer.Variant())
}
