package softarm

import (
	"context"
	"errors"
	"testing"

	"go.viam.com/rdk/logging"

	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

func TestBuildTable_TwoStepSweep(t *testing.T) {
	logger := logging.NewTestLogger(t)
	model := kinematics.NewModel(nil)

	cfg := DefaultSamplerConfig()
	cfg.Steps = 2

	table, err := BuildTable(context.Background(), model, cfg, logger)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	// 2 steps per tendon over 3 tendons: exactly 8 records.
	if table.Len() != 8 {
		t.Fatalf("got %d records, want 8", table.Len())
	}

	seen := make(map[[3]float64]bool)
	for _, rec := range table.Records {
		for i, tension := range rec.Tensions {
			if tension != 0 && tension != 200 {
				t.Errorf("tension %d = %g, want 0 or 200", i, tension)
			}
		}
		seen[rec.Tensions] = true
	}
	if len(seen) != 8 {
		t.Errorf("got %d distinct tension combinations, want 8", len(seen))
	}
}

func TestBuildTable_RecordsMatchForwardModel(t *testing.T) {
	logger := logging.NewTestLogger(t)
	model := kinematics.NewModel(nil)

	cfg := DefaultSamplerConfig()
	cfg.Steps = 3

	table, err := BuildTable(context.Background(), model, cfg, logger)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}
	if table.Len() != 27 {
		t.Fatalf("got %d records, want 27", table.Len())
	}

	base := cfg.Section * kinematics.TendonsPerSection
	for _, rec := range table.Records {
		tensions := make([]float64, kinematics.NumTendons)
		tensions[base] = rec.Tensions[0]
		tensions[base+1] = rec.Tensions[1]
		tensions[base+2] = rec.Tensions[2]

		tip, err := model.Tip(tensions)
		if err != nil {
			t.Fatalf("Tip failed: %v", err)
		}
		if tip != rec.Pos {
			t.Errorf("tensions %v: recorded tip %v, forward model gives %v", rec.Tensions, rec.Pos, tip)
		}
	}
}

func TestBuildTable_SingleStep(t *testing.T) {
	logger := logging.NewTestLogger(t)

	cfg := DefaultSamplerConfig()
	cfg.Steps = 1

	table, err := BuildTable(context.Background(), kinematics.NewModel(nil), cfg, logger)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("got %d records, want 1", table.Len())
	}
	if table.Records[0].Tensions != [3]float64{0, 0, 0} {
		t.Errorf("single-step tensions = %v, want all at the range minimum", table.Records[0].Tensions)
	}
}

func TestBuildTable_BadConfig(t *testing.T) {
	logger := logging.NewTestLogger(t)
	model := kinematics.NewModel(nil)
	ctx := context.Background()

	cases := []SamplerConfig{
		{TensionMin: 0, TensionMax: 200, Steps: 0, Section: 2},
		{TensionMin: 0, TensionMax: 200, Steps: 2, Section: -1},
		{TensionMin: 0, TensionMax: 200, Steps: 2, Section: kinematics.NumSections},
		{TensionMin: 100, TensionMax: 0, Steps: 2, Section: 2},
	}
	for _, cfg := range cases {
		if _, err := BuildTable(ctx, model, cfg, logger); !errors.Is(err, ErrBadSamplerConfig) {
			t.Errorf("config %+v: got %v, want ErrBadSamplerConfig", cfg, err)
		}
	}
}

func TestBuildTable_Cancellation(t *testing.T) {
	logger := logging.NewTestLogger(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := DefaultSamplerConfig()
	cfg.Steps = 2

	if _, err := BuildTable(ctx, kinematics.NewModel(nil), cfg, logger); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
