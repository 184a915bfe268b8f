package handler

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"audit-engine/internal/corridor"
	"audit-engine/internal/engine"
	"audit-engine/internal/projection"
)

func newTestHandler() *Handler {
	return New(engine.New(corridor.DefaultTable(), projection.DefaultAssumptions()))
}

func post(h *Handler, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBodyString(body)
	h.Route(ctx)
	return ctx
}

func TestAuditEndpoint(t *testing.T) {
	body := `{
		"preview": {
			"source_tax_rates": {"income_tax_pct": 37},
			"source_jurisdiction": "India",
			"destination_jurisdiction": "Dubai"
		},
		"starting_position": {"transaction_value": 1000000, "rental_yield_pct": 5}
	}`

	ctx := post(newTestHandler(), "/v1/audit", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp engine.AuditResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Metadata.Outcome != engine.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if resp.Summary == nil {
		t.Fatal("expected a summary")
	}
}

func TestAuditEndpointInsufficientDataIsStill200(t *testing.T) {
	body := `{"preview": {"source_jurisdiction": "India"}}`

	ctx := post(newTestHandler(), "/v1/audit", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200 for insufficient data, got %d", ctx.Response.StatusCode())
	}

	var resp engine.AuditResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Metadata.Outcome != engine.OutcomeInsufficientData {
		t.Fatalf("expected INSUFFICIENT_DATA, got %s", resp.Metadata.Outcome)
	}
	if resp.Summary != nil {
		t.Fatal("expected null summary")
	}
}

func TestAuditEndpointRejectsMissingPreview(t *testing.T) {
	ctx := post(newTestHandler(), "/v1/audit", `{}`)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestAuditEndpointRejectsMalformedJSON(t *testing.T) {
	ctx := post(newTestHandler(), "/v1/audit", `{"preview": `)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}
}

func TestProjectionEndpointRejectsBadScenarioTable(t *testing.T) {
	body := `{
		"starting_position": {"transaction_value": 1000000, "current_net_worth": 3000000},
		"scenarios": [
			{"name": "base", "probability": 0.9},
			{"name": "stress", "probability": 0.9},
			{"name": "opportunity", "probability": 0.9}
		]
	}`

	ctx := post(newTestHandler(), "/v1/projection", body)

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400 for probabilities not summing to 1, got %d", ctx.Response.StatusCode())
	}
	if !strings.Contains(string(ctx.Response.Body()), "scenario") {
		t.Fatalf("expected scenario error message, got %s", ctx.Response.Body())
	}
}

func TestProjectionEndpoint(t *testing.T) {
	body := `{
		"starting_position": {
			"transaction_value": 2000000,
			"current_net_worth": 5000000,
			"annual_income": 800000,
			"current_tax_rate_pct": 37,
			"target_tax_rate_pct": 9
		}
	}`

	ctx := post(newTestHandler(), "/v1/projection", body)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp engine.ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Projection == nil {
		t.Fatal("expected a projection")
	}
	if len(resp.Projection.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(resp.Projection.Scenarios))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/v1/audit")
	h.Route(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestUnknownPath(t *testing.T) {
	ctx := post(newTestHandler(), "/v1/unknown", `{}`)

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func TestHealthz(t *testing.T) {
	h := newTestHandler()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/healthz")
	h.Route(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
}
