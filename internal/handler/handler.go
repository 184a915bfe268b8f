// Package handler is the fasthttp shell over the engine: decode, validate,
// compute, encode. No business logic lives here.
package handler

import (
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"audit-engine/internal/engine"
	"audit-engine/internal/projection"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	engine   *engine.Engine
	validate *validator.Validate
}

func New(eng *engine.Engine) *Handler {
	return &Handler{
		engine:   eng,
		validate: validator.New(),
	}
}

// Route dispatches by path. The surface is small enough that a router
// dependency would outweigh a switch.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/audit":
		h.handleAudit(ctx)
	case "/v1/projection":
		h.handleProjection(ctx)
	case "/healthz":
		h.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleAudit(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req engine.AuditRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Preview == nil {
		writeError(ctx, fasthttp.StatusBadRequest, "preview document is required")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Audit(&req))
}

func (h *Handler) handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req engine.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid scenario table: "+err.Error())
		return
	}
	if len(req.Scenarios) > 0 {
		if err := projection.ValidateAssumptions(req.Scenarios); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid scenario table: "+err.Error())
			return
		}
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Project(&req))
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	b, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
