package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/tessellate/tessera/basis"
	"github.com/tessellate/tessera/config"
	"github.com/tessellate/tessera/effects"
	"github.com/tessellate/tessera/grid"
	"github.com/tessellate/tessera/points"
	"github.com/tessellate/tessera/render"
	"github.com/tessellate/tessera/worms"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outPath := flag.String("out", "tessera.png", "Output image path")
	clutPath := flag.String("clut", "", "Color-lookup image path (overrides config)")
	pointsOut := flag.String("points-out", "", "Point-set CSV output path")
	preview := flag.Bool("preview", false, "Show the result in a window")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	slog.Info("generating texture",
		"seed", rngSeed,
		"height", cfg.Output.Height,
		"width", cfg.Output.Width,
		"channels", cfg.Output.Channels,
	)

	start := time.Now()
	input, err := basis.FBM(cfg.Output.Height, cfg.Output.Width, cfg.Output.Channels, basis.Params{
		Scale:      cfg.Basis.Scale,
		Octaves:    cfg.Basis.Octaves,
		Lacunarity: cfg.Basis.Lacunarity,
		Gain:       cfg.Basis.Gain,
		Contrast:   cfg.Basis.Contrast,
	}, rngSeed)
	if err != nil {
		slog.Error("failed to generate basis noise", "error", err)
		os.Exit(1)
	}
	slog.Info("basis noise ready", "elapsed", time.Since(start).String())

	opts, err := pipelineOptions(cfg, *clutPath)
	if err != nil {
		slog.Error("invalid pipeline options", "error", err)
		os.Exit(1)
	}

	start = time.Now()
	out, err := effects.PostProcess(input, opts, rng)
	if err != nil {
		slog.Error("post-processing failed", "error", err)
		os.Exit(1)
	}
	slog.Info("post-processing done", "elapsed", time.Since(start).String())

	if err := render.Export(out, *outPath); err != nil {
		slog.Error("failed to export image", "error", err)
		os.Exit(1)
	}
	slog.Info("wrote image", "path", *outPath)

	if cfg.Points.Freq > 0 {
		if err := generatePoints(cfg, *pointsOut, rng); err != nil {
			slog.Error("point generation failed", "error", err)
			os.Exit(1)
		}
	}

	if *preview {
		render.Preview(out, "tessera")
	}
}

// pipelineOptions translates the loaded config (plus CLI overrides) into
// effect options, decoding the color-lookup image if one is configured.
func pipelineOptions(cfg *config.Config, clutOverride string) (effects.Options, error) {
	behavior, err := worms.ParseBehavior(cfg.Worms.Behavior)
	if err != nil {
		return effects.Options{}, err
	}

	var clut *grid.Grid
	clutPath := cfg.Pipeline.CLUT
	if clutOverride != "" {
		clutPath = clutOverride
	}
	if clutPath != "" {
		if clut, err = render.LoadCLUT(clutPath); err != nil {
			return effects.Options{}, err
		}
	}

	return effects.Options{
		RefractRange:   float32(cfg.Pipeline.RefractRange),
		ReindexRange:   float32(cfg.Pipeline.ReindexRange),
		CLUT:           clut,
		CLUTHorizontal: cfg.Pipeline.CLUTHorizontal,
		CLUTRange:      float32(cfg.Pipeline.CLUTRange),
		WithWorms:      cfg.Pipeline.WithWorms,
		Worms: worms.Options{
			Behavior:        behavior,
			Density:         float32(cfg.Worms.Density),
			Duration:        float32(cfg.Worms.Duration),
			Stride:          float32(cfg.Worms.Stride),
			StrideDeviation: float32(cfg.Worms.StrideDeviation),
			Background:      float32(cfg.Worms.Background),
		},
		WithSobel:     cfg.Pipeline.WithSobel,
		WithNormalMap: cfg.Pipeline.WithNormalMap,
		Deriv:         cfg.Pipeline.Deriv,
	}, nil
}

// generatePoints runs the point-cloud generator and logs its spread; the set
// is written as CSV when a path is given.
func generatePoints(cfg *config.Config, path string, rng *rand.Rand) error {
	distrib, err := points.ParseDistribution(cfg.Points.Distribution)
	if err != nil {
		return err
	}

	set, err := points.Cloud(points.Options{
		Freq:         cfg.Points.Freq,
		Distribution: distrib,
		Height:       cfg.Output.Height,
		Width:        cfg.Output.Width,
		Center:       cfg.Points.Center,
		Generations:  cfg.Points.Generations,
	}, rng)
	if err != nil {
		return err
	}

	mean, stddev := set.Spread()
	slog.Info("generated point cloud",
		"distribution", cfg.Points.Distribution,
		"count", set.Len(),
		"spread_mean", mean,
		"spread_stddev", stddev,
	)

	if path != "" {
		if err := points.ExportCSV(set, path); err != nil {
			return err
		}
		slog.Info("wrote point set", "path", path)
	}
	return nil
}
