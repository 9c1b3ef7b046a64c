// Package http provides http transport for admin embeds
package http

import (
	stdhttp "net/http"

	"benchmarks/internal/modkit/httpkit"
	svc "benchmarks/internal/services/api/admin/service"
)

// Register mounts admin endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/embeds", h.list)
	httpkit.Get(r, "/embeds/{slug}", h.get)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /admin/embeds Admin adminEmbeds
// @Summary Spreadsheets shown on the admin pages
// @Tags Admin
// @Produce json
// @Success 200 {array} domain.Embed "ok"
// @Router /admin/embeds [get]
func (h *handlers) list(_ *stdhttp.Request) (any, error) {
	return h.svc.List(), nil
}

// swagger:route GET /admin/embeds/{slug} Admin adminEmbed
// @Summary One admin spreadsheet by slug
// @Tags Admin
// @Produce json
// @Param slug path string true "embed slug"
// @Success 200 {object} domain.Embed "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /admin/embeds/{slug} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(httpkit.URLParam(r, "slug"))
}
