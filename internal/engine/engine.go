// Package engine exposes the two computation entry points behind response
// envelopes carrying per-request metadata. The engine holds only immutable
// configuration (corridor table, scenario assumptions); every call is an
// independent pure computation.
package engine

import (
	"time"

	"github.com/google/uuid"

	"audit-engine/internal/audit"
	"audit-engine/internal/corridor"
	"audit-engine/internal/model"
	"audit-engine/internal/projection"
)

const (
	OutcomeSuccess          = "SUCCESS"
	OutcomeInsufficientData = "INSUFFICIENT_DATA"
)

type Engine struct {
	corridors corridor.Table
	scenarios []projection.ScenarioAssumptions
}

func New(corridors corridor.Table, scenarios []projection.ScenarioAssumptions) *Engine {
	return &Engine{corridors: corridors, scenarios: scenarios}
}

type AuditRequest struct {
	Preview          *model.PreviewDocument  `json:"preview"`
	StartingPosition *model.StartingPosition `json:"starting_position"`
	RealAssetAudit   model.RealAssetAudit    `json:"real_asset_audit,omitempty"`
}

type AuditResponse struct {
	Metadata Metadata                       `json:"audit_metadata"`
	Summary  *model.CrossBorderAuditSummary `json:"summary"`
}

type ProjectionRequest struct {
	StartingPosition *model.StartingPosition          `json:"starting_position"`
	Scenarios        []projection.ScenarioAssumptions `json:"scenarios,omitempty" validate:"omitempty,dive"`
}

type ProjectionResponse struct {
	Metadata   Metadata                `json:"audit_metadata"`
	Projection *model.WealthProjection `json:"projection"`
}

type Metadata struct {
	AuditID     string `json:"audit_id"`
	StartedAt   string `json:"started_at"`
	CompletedAt string `json:"completed_at"`
	DurationMs  int64  `json:"duration_ms"`
	Outcome     string `json:"outcome"`
}

// Audit runs the cross-border audit pipeline. A nil Summary with outcome
// INSUFFICIENT_DATA means the minimum-data gate failed; that is a valid
// result, not a transport error.
func (e *Engine) Audit(req *AuditRequest) *AuditResponse {
	start := time.Now()

	pos := req.StartingPosition
	if pos == nil && req.Preview != nil && req.Preview.WealthProjectionData != nil {
		pos = req.Preview.WealthProjectionData.StartingPosition
	}

	summary := audit.BuildSummary(req.Preview, pos, req.RealAssetAudit, e.corridors)

	outcome := OutcomeSuccess
	if summary == nil {
		outcome = OutcomeInsufficientData
	}
	return &AuditResponse{
		Metadata: metadata(start, outcome),
		Summary:  summary,
	}
}

// Project runs the wealth projection pipeline. Request-supplied scenario
// tables override the engine's configured assumptions; the handler validates
// them before they reach this point.
func (e *Engine) Project(req *ProjectionRequest) *ProjectionResponse {
	start := time.Now()

	pos := req.StartingPosition
	table := req.Scenarios
	if len(table) == 0 {
		table = e.scenarios
	}

	proj := projection.Project(pos, table)

	outcome := OutcomeSuccess
	if proj == nil {
		outcome = OutcomeInsufficientData
	}
	return &ProjectionResponse{
		Metadata:   metadata(start, outcome),
		Projection: proj,
	}
}

func metadata(start time.Time, outcome string) Metadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()
	return Metadata{
		AuditID:     uuid.New().String(),
		StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CompletedAt: now.Format(time.RFC3339),
		DurationMs:  elapsed.Milliseconds(),
		Outcome:     outcome,
	}
}
