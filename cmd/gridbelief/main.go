// SPDX-License-Identifier: MIT

// Command gridbelief replays localization scenarios through the grid belief
// filter, logging every step and printing the belief as a heat map.
//
// Usage:
//
//	gridbelief [-file runs.yaml] [-scenario name] [-edge omit|stay]
//	           [-log-level info] [-log-format text|json] [-color] [-precision 4]
//	gridbelief -dump > builtin.yaml
//
// Settings default to GRIDBELIEF_* environment variables (and a .env file
// in the working directory); flags take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridbelief/belief"
	"github.com/katalvlaran/gridbelief/config"
	"github.com/katalvlaran/gridbelief/render"
	"github.com/katalvlaran/gridbelief/scenario"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	dump, err := parseFlags(args, &cfg, stderr)
	if err != nil {
		return 2
	}

	scenarios := scenario.Builtin()
	if cfg.ScenarioFile != "" {
		if scenarios, err = scenario.LoadFile(cfg.ScenarioFile); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	if cfg.Scenario != "" {
		s, err := scenario.Find(scenarios, cfg.Scenario)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		scenarios = []scenario.Scenario{s}
	}
	if cfg.Edge != nil {
		for i := range scenarios {
			scenarios[i].Edge = *cfg.Edge
		}
	}

	if dump {
		if err := scenario.Encode(stdout, scenarios); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	logger := newLogger(cfg, stderr).With(slog.String("run", uuid.NewString()))
	failed := 0
	for _, s := range scenarios {
		if err := replay(ctx, s, cfg, logger, stdout); err != nil {
			logger.Error("scenario failed", slog.String("scenario", s.Name), slog.Any("err", err))
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// parseFlags overrides cfg with command-line flags and reports -dump.
func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (dump bool, err error) {
	fs := flag.NewFlagSet("gridbelief", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		level  = cfg.LogLevel.String()
		format = cfg.LogFormat
		edge   string
	)
	fs.StringVar(&cfg.ScenarioFile, "file", cfg.ScenarioFile, "YAML/JSON scenario document (default: built-in scenarios)")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "run only the scenario with this name")
	fs.StringVar(&level, "log-level", level, "log level: debug, info, warn, error")
	fs.StringVar(&format, "log-format", format, "log format: text or json")
	fs.StringVar(&edge, "edge", "", "override edge policy for every scenario: omit or stay")
	fs.BoolVar(&cfg.Color, "color", cfg.Color, "colored heat maps")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals per rendered cell")
	fs.BoolVar(&dump, "dump", false, "write the selected scenarios as YAML and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintf(stderr, "Invalid log level: %s\n", level)
		return false, err
	}
	if err := config.CheckPrecision(cfg.Precision); err != nil {
		fmt.Fprintln(stderr, err)
		return false, err
	}
	if cfg.LogFormat, err = config.ParseFormat(format); err != nil {
		fmt.Fprintln(stderr, err)
		return false, err
	}
	if edge != "" {
		p, err := belief.ParseEdgePolicy(edge)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return false, err
		}
		cfg.Edge = &p
	}
	return dump, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// replay runs one scenario, tracing the grid after construction and after
// every step.
func replay(ctx context.Context, s scenario.Scenario, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	log := logger.With(slog.String("scenario", s.Name))
	show := func(title string, g *belief.Grid) {
		view := render.Grid(g, render.Options{Title: title, Precision: cfg.Precision, Color: cfg.Color})
		if !cfg.Color {
			view = render.Plain(view)
		}
		fmt.Fprintln(out, view)
	}

	_, err := scenario.Run(s,
		scenario.WithContext(ctx),
		scenario.WithOnStart(func(name string, g *belief.Grid) {
			log.Info("scenario start",
				slog.Int("height", g.Height()),
				slog.Int("width", g.Width()),
				slog.String("edge", s.Edge.String()),
				slog.Int("steps", len(s.Steps)),
			)
			show(name+" initial", g)
		}),
		scenario.WithOnStep(func(ev scenario.StepEvent) error {
			at, p := ev.Grid.MostLikely()
			log.Info("step",
				slog.Int("index", ev.Index),
				slog.String("action", ev.Step.String()),
				slog.String("ref", ev.Step.Reference.String()),
				slog.Float64("mass", ev.Grid.TotalMass()),
				slog.String("most_likely", at.String()),
				slog.Float64("p", p),
				slog.Float64("entropy", ev.Grid.Entropy()),
			)
			if log.Enabled(ctx, slog.LevelDebug) {
				for i, r := range ev.Grid.Regions() {
					log.Debug("region", slog.Int("index", i), slog.Int("cells", len(r.Cells)), slog.Float64("mass", r.Mass))
				}
			}
			show(fmt.Sprintf("%s step %d %s", ev.Scenario, ev.Index, ev.Step), ev.Grid)
			return nil
		}),
	)
	return err
}
