package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"

	softarm "github.com/QuentinBlan/CREATE-throwing-arm-controller"
	"github.com/QuentinBlan/CREATE-throwing-arm-controller/internal/armcfg"
	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

func main() {
	tablePath := flag.String("table", softarm.DefaultTablePath, "path to the workspace lookup table (.npy)")
	paramsPath := flag.String("params", "", "optional JSON file overriding arm parameters")
	regen := flag.Bool("regen", false, "rebuild the lookup table even if one exists")
	steps := flag.Int("steps", 25, "sweep steps per tendon (steps³ samples)")
	tmin := flag.Float64("tmin", 0, "minimum swept tendon tension [N]")
	tmax := flag.Float64("tmax", 200, "maximum swept tendon tension [N]")
	query := flag.String("query", "", "inverse query target as \"x,y,z\" in metres")
	forward := flag.String("forward", "", "forward evaluation as 9 comma-separated tensions [N]")
	pcdPath := flag.String("pcd", "", "optional path to export the workspace as a binary PCD")
	flag.Parse()

	logger := logging.NewLogger("softarm-cli")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var params *kinematics.Params
	if *paramsPath != "" {
		p, err := armcfg.Load(*paramsPath)
		if err != nil {
			logger.Fatal(err)
		}
		params = p
	}

	sampler := softarm.DefaultSamplerConfig()
	sampler.Steps = *steps
	sampler.TensionMin = *tmin
	sampler.TensionMax = *tmax

	engine := softarm.NewEngine(kinematics.NewModel(params), sampler, logger)

	if *forward != "" {
		tensions, err := parseFloats(*forward, kinematics.NumTendons)
		if err != nil {
			logger.Fatalf("bad -forward value: %v", err)
		}
		b, err := engine.Forward(tensions)
		if err != nil {
			logger.Fatal(err)
		}
		for j, c := range b.Curvatures {
			logger.Infof("Section %d: κ=%.4f 1/m, φ=%.4f rad, L=%.4f m", j, c.Kappa, c.Phi, c.Length)
		}
		tip := b.Tip()
		logger.Infof("Tip position: (%.4f, %.4f, %.4f) m", tip.X, tip.Y, tip.Z)
	}

	if *regen {
		if _, err := engine.Regenerate(ctx, *tablePath); err != nil {
			logger.Fatal(err)
		}
	} else if *query != "" || *pcdPath != "" {
		if err := engine.EnsureTable(ctx, *tablePath); err != nil {
			logger.Fatal(err)
		}
	}

	if *pcdPath != "" {
		if err := softarm.ExportPCD(*pcdPath, engine.Table()); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("Workspace cloud written to %s", *pcdPath)
	}

	if *query != "" {
		coords, err := parseFloats(*query, 3)
		if err != nil {
			logger.Fatalf("bad -query value: %v", err)
		}
		target := r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}

		sol, err := engine.Inverse(target)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infof("Target position: (%.4f, %.4f, %.4f)", target.X, target.Y, target.Z)
		logger.Infof("Nearest map position: (%.4f, %.4f, %.4f)", sol.Matched.X, sol.Matched.Y, sol.Matched.Z)
		logger.Infof("Required tensions: T1=%.2f, T2=%.2f, T3=%.2f", sol.Tensions[0], sol.Tensions[1], sol.Tensions[2])
		logger.Infof("Position error: %.4f m", sol.Distance)
	}
}

// parseFloats splits a comma-separated list and requires exactly n values.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("got %d values, want %d", len(parts), n)
	}
	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", part, err)
		}
		out[i] = v
	}
	return out, nil
}
