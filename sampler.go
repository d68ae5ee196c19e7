package softarm

import (
	"context"
	"fmt"

	"go.viam.com/rdk/logging"

	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

// SamplerConfig controls the brute-force workspace sweep. The three tendons
// of one section are swept over an inclusive linear range; the other six
// tendons stay slack at zero tension. Resolution is a trade-off: Steps³
// forward evaluations against achievable inverse-kinematics accuracy.
type SamplerConfig struct {
	TensionMin float64 // lower end of the sweep [N]
	TensionMax float64 // upper end of the sweep, inclusive [N]
	Steps      int     // samples per tendon
	Section    int     // section whose tendon triplet is swept
}

// DefaultSamplerConfig sweeps the distal section's tendons over 0–200 N in
// 25 steps per tendon (15625 forward evaluations).
func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		TensionMin: 0,
		TensionMax: 200,
		Steps:      25,
		Section:    kinematics.NumSections - 1,
	}
}

// BuildTable sweeps the configured tendon triplet through the forward model
// and records the tip position reached by every combination. Generation can
// take seconds to minutes at high step counts; cancellation is honored
// between outer-loop iterations, and coarse progress is logged after each
// outer sweep value.
func BuildTable(ctx context.Context, model *kinematics.Model, cfg SamplerConfig, logger logging.Logger) (*Table, error) {
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("%w: steps = %d", ErrBadSamplerConfig, cfg.Steps)
	}
	if cfg.Section < 0 || cfg.Section >= kinematics.NumSections {
		return nil, fmt.Errorf("%w: section = %d", ErrBadSamplerConfig, cfg.Section)
	}
	if cfg.TensionMax < cfg.TensionMin {
		return nil, fmt.Errorf("%w: tension range [%g, %g]", ErrBadSamplerConfig, cfg.TensionMin, cfg.TensionMax)
	}

	values := tensionSteps(cfg)
	total := cfg.Steps * cfg.Steps * cfg.Steps
	logger.Infof("Simulating %d tension combinations...", total)

	table := &Table{Records: make([]Record, 0, total)}
	tensions := make([]float64, kinematics.NumTendons)
	base := cfg.Section * kinematics.TendonsPerSection

	for i, t1 := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, t2 := range values {
			for _, t3 := range values {
				tensions[base] = t1
				tensions[base+1] = t2
				tensions[base+2] = t3

				tip, err := model.Tip(tensions)
				if err != nil {
					return nil, err
				}
				table.Records = append(table.Records, Record{
					Pos:      tip,
					Tensions: [kinematics.TendonsPerSection]float64{t1, t2, t3},
				})
			}
		}
		logger.Infof("Progress: %d / %d", (i+1)*cfg.Steps*cfg.Steps, total)
	}

	return table, nil
}

// tensionSteps returns Steps values spaced linearly over the inclusive sweep
// range. A single step collapses to the lower end.
func tensionSteps(cfg SamplerConfig) []float64 {
	vals := make([]float64, cfg.Steps)
	if cfg.Steps == 1 {
		vals[0] = cfg.TensionMin
		return vals
	}
	span := cfg.TensionMax - cfg.TensionMin
	for i := range vals {
		vals[i] = cfg.TensionMin + span*float64(i)/float64(cfg.Steps-1)
	}
	return vals
}
