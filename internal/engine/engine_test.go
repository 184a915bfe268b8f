package engine

import (
	"math"
	"testing"

	"audit-engine/internal/corridor"
	"audit-engine/internal/model"
	"audit-engine/internal/projection"
)

func newTestEngine() *Engine {
	return New(corridor.DefaultTable(), projection.DefaultAssumptions())
}

func TestAuditEndToEnd(t *testing.T) {
	value := 6_160_000.0
	req := &AuditRequest{
		Preview: &model.PreviewDocument{
			SourceTaxRates: &model.TaxRates{
				IncomeTaxPct:       model.Pct(37),
				CapitalGainsTaxPct: model.Pct(20),
			},
			DestinationTaxRates: &model.TaxRates{
				IncomeTaxPct:       model.Pct(0),
				CapitalGainsTaxPct: model.Pct(0),
			},
			SourceJurisdiction:      "India",
			DestinationJurisdiction: "Singapore",
		},
		StartingPosition: &model.StartingPosition{
			TransactionValue: &value,
			RentalYieldPct:   model.Pct(3),
		},
		RealAssetAudit: model.RealAssetAudit{
			"Singapore": {
				ResidentialRatePct: model.Pct(5),
				ForeignBuyerSurcharge: &model.ForeignBuyerSurcharge{
					RatePct:     model.Pct(20),
					Description: "ABSD for foreign buyers",
				},
			},
		},
	}

	resp := newTestEngine().Audit(req)

	if resp.Metadata.Outcome != OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if resp.Metadata.AuditID == "" {
		t.Fatal("expected an audit id")
	}
	if resp.Summary == nil {
		t.Fatal("expected a summary")
	}

	if resp.Summary.Acquisition.TotalStampDuties != 1_540_000 {
		t.Fatalf("expected total duties 1540000, got %v", resp.Summary.Acquisition.TotalStampDuties)
	}
	if resp.Summary.RentalIncome.NetTaxRatePct != 37 {
		t.Fatalf("expected rental net rate 37, got %v", resp.Summary.RentalIncome.NetTaxRatePct)
	}
	if resp.Summary.RentalIncome.FTCAvailable {
		t.Fatal("expected no FTC against a 0% destination")
	}
}

func TestAuditInsufficientData(t *testing.T) {
	req := &AuditRequest{
		Preview: &model.PreviewDocument{
			SourceJurisdiction:      "India",
			DestinationJurisdiction: "Dubai",
		},
	}

	resp := newTestEngine().Audit(req)

	if resp.Metadata.Outcome != OutcomeInsufficientData {
		t.Fatalf("expected INSUFFICIENT_DATA, got %s", resp.Metadata.Outcome)
	}
	if resp.Summary != nil {
		t.Fatal("expected nil summary, got a partial artifact")
	}
}

func TestAuditFallsBackToPreviewStartingPosition(t *testing.T) {
	value := 1_000_000.0
	req := &AuditRequest{
		Preview: &model.PreviewDocument{
			SourceTaxRates: &model.TaxRates{IncomeTaxPct: model.Pct(37)},
			WealthProjectionData: &model.WealthProjectionData{
				StartingPosition: &model.StartingPosition{
					TransactionValue: &value,
					RentalYieldPct:   model.Pct(4),
				},
			},
		},
	}

	resp := newTestEngine().Audit(req)

	if resp.Metadata.Outcome != OutcomeSuccess {
		t.Fatalf("expected SUCCESS via embedded starting position, got %s", resp.Metadata.Outcome)
	}
	if resp.Summary.Acquisition.PropertyValue != 1_000_000 {
		t.Fatalf("expected property value from preview, got %v", resp.Summary.Acquisition.PropertyValue)
	}
}

func TestProjectEndToEnd(t *testing.T) {
	value := 2_000_000.0
	netWorth := 5_000_000.0
	income := 800_000.0
	req := &ProjectionRequest{
		StartingPosition: &model.StartingPosition{
			TransactionValue:  &value,
			RentalYieldPct:    model.Pct(5),
			CurrentNetWorth:   &netWorth,
			AnnualIncome:      &income,
			CurrentTaxRatePct: model.Pct(37),
			TargetTaxRatePct:  model.Pct(9),
		},
	}

	resp := newTestEngine().Project(req)

	if resp.Metadata.Outcome != OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	if resp.Projection == nil {
		t.Fatal("expected a projection")
	}
	if len(resp.Projection.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(resp.Projection.Scenarios))
	}
	if resp.Projection.Scenarios[0].Trajectory[0].NetWorth != netWorth {
		t.Fatalf("expected year-0 net worth %v, got %v", netWorth, resp.Projection.Scenarios[0].Trajectory[0].NetWorth)
	}
}

func TestProjectInsufficientData(t *testing.T) {
	resp := newTestEngine().Project(&ProjectionRequest{})

	if resp.Metadata.Outcome != OutcomeInsufficientData {
		t.Fatalf("expected INSUFFICIENT_DATA, got %s", resp.Metadata.Outcome)
	}
	if resp.Projection != nil {
		t.Fatal("expected nil projection")
	}
}

func TestProjectCustomScenarioTable(t *testing.T) {
	value := 1_000_000.0
	netWorth := 3_000_000.0
	table := projection.DefaultAssumptions()
	table[0].PropertyGrowthPct = 7

	resp := newTestEngine().Project(&ProjectionRequest{
		StartingPosition: &model.StartingPosition{
			TransactionValue: &value,
			CurrentNetWorth:  &netWorth,
		},
		Scenarios: table,
	})

	if resp.Metadata.Outcome != OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.Metadata.Outcome)
	}
	base := resp.Projection.Scenarios[0]
	year1 := base.Trajectory[1]
	if math.Abs(year1.PropertyValue-1_070_000) > 1e-6 {
		t.Fatalf("expected custom 7%% growth, got year-1 value %v", year1.PropertyValue)
	}
}
