package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/graphio"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the streams and resolved state shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	flags      Config // raw flag values, applied only when set
	cfg        Config // resolved configuration
	log        *slog.Logger
}

// newRootCmd builds the command tree.
func newRootCmd(a *app) *cobra.Command {
	a.flags = defaultConfig()

	root := &cobra.Command{
		Use:           "bellman",
		Short:         "Shortest paths with negative weights and negative-cycle classification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolveConfig(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.Log.Level, "log-level", a.flags.Log.Level, "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.Log.Format, "log-format", a.flags.Log.Format, "log format: auto, text or json (auto: text on a terminal)")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newVersionCmd(a))

	return root
}

// resolveConfig layers defaults, the config file and set flags, validates
// the result and installs the logger.
func (a *app) resolveConfig(cmd *cobra.Command) error {
	cfg := defaultConfig()
	if a.configPath != "" {
		if err := loadConfig(a.configPath, &cfg); err != nil {
			return usageError(err)
		}
	}
	applyFlags(cmd.Flags(), &a.flags, &cfg)
	if err := validateConfig(&cfg); err != nil {
		return usageError(err)
	}

	a.cfg = cfg
	a.log = newLogger(a.stderr, cfg.Log)
	a.log.Debug("configuration resolved", slog.String("command", cmd.Name()), slog.String("config_file", a.configPath))

	return nil
}

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [FILE|-]",
		Short: "Solve a problem read from FILE or stdin",
		Long: `Reads "N M", the 1-based source H, then M lines "u v w", and prints one
line per vertex: its shortest-path cost, the unbounded marker for vertices on
or after a reachable negative cycle, or the unreachable marker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return a.solve(path)
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.flags.Solve.Format, "format", a.flags.Solve.Format, "output format: text, yaml or json")
	f.StringVar(&a.flags.Solve.UnboundedMarker, "unbounded-marker", a.flags.Solve.UnboundedMarker, "text marker for unbounded vertices")
	f.StringVar(&a.flags.Solve.UnreachableMarker, "unreachable-marker", a.flags.Solve.UnreachableMarker, "text marker for unreachable vertices")
	f.BoolVar(&a.flags.Solve.FullScan, "full-scan", a.flags.Solve.FullScan, "relax every vertex each round (diagnostic)")
	f.BoolVar(&a.flags.Solve.Lenient, "lenient", a.flags.Solve.Lenient, "ignore tokens after the last edge")
	f.IntVar(&a.flags.Solve.MaxVertices, "max-vertices", a.flags.Solve.MaxVertices, "reject inputs declaring more vertices than this")
	f.StringVar(&a.flags.Solve.MetricsTextfile, "metrics-textfile", a.flags.Solve.MetricsTextfile, "write Prometheus metrics to this file")

	return cmd
}

// solve runs the parse → engine → write pipeline.
func (a *app) solve(path string) error {
	sc := a.cfg.Solve

	in := a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return runtimeError("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	popts := []graphio.Option{graphio.WithMaxVertices(sc.MaxVertices)}
	if sc.Lenient {
		popts = append(popts, graphio.WithLenientTrailing())
	}
	p, err := graphio.Parse(in, popts...)
	if err != nil {
		if graphio.IsParseError(err) {
			return usageError(err)
		}
		return runtimeError("%v", err)
	}
	g, err := p.Graph()
	if err != nil {
		return usageError(err)
	}
	stats := g.Stats()
	a.log.Info("problem loaded",
		slog.String("input", path),
		slog.Int("vertices", stats.VertexCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("negative_edges", stats.NegativeEdgeCount),
		slog.Int("self_loops", stats.SelfLoopCount),
		slog.Int("source", p.Source+1),
	)
	if !g.HasNegativeEdges() {
		a.log.Debug("no negative weights; costs match a non-negative search")
	}

	opts := []bellmanford.Option{bellmanford.WithLogger(a.log)}
	if sc.FullScan {
		opts = append(opts, bellmanford.WithFullScan())
	}
	var reg *prometheus.Registry
	if sc.MetricsTextfile != "" {
		reg = prometheus.NewRegistry()
		m, err := bellmanford.NewMetrics(reg)
		if err != nil {
			return runtimeError("%v", err)
		}
		opts = append(opts, bellmanford.WithMetrics(m))
	}

	res, err := bellmanford.ShortestPaths(g, p.Source, opts...)
	if err != nil {
		if bellmanford.IsConfigError(err) {
			return usageError(err)
		}
		return runtimeError("%v", err)
	}

	format, _ := graphio.ParseFormat(sc.Format) // checked by validateConfig
	markers := graphio.Markers{Unbounded: sc.UnboundedMarker, Unreachable: sc.UnreachableMarker}
	if err = graphio.WriteResult(a.stdout, format, res, markers); err != nil {
		return runtimeError("write result: %v", err)
	}

	if reg != nil {
		if err = prometheus.WriteToTextfile(sc.MetricsTextfile, reg); err != nil {
			return runtimeError("write metrics: %v", err)
		}
		a.log.Debug("metrics written", slog.String("path", sc.MetricsTextfile))
	}

	return nil
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random problem in the solve input format",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.generate()
		},
	}

	f := cmd.Flags()
	f.IntVar(&a.flags.Generate.Vertices, "vertices", a.flags.Generate.Vertices, "number of vertices")
	f.Float64Var(&a.flags.Generate.Density, "density", a.flags.Generate.Density, "probability of each ordered edge, in [0,1]")
	f.Int64Var(&a.flags.Generate.MinWeight, "min-weight", a.flags.Generate.MinWeight, "smallest edge weight")
	f.Int64Var(&a.flags.Generate.MaxWeight, "max-weight", a.flags.Generate.MaxWeight, "largest edge weight")
	f.Int64Var(&a.flags.Generate.Seed, "seed", a.flags.Generate.Seed, "random seed")
	f.IntVar(&a.flags.Generate.Source, "source", a.flags.Generate.Source, "1-based source vertex")

	return cmd
}

// generate builds a seeded random graph and writes it as a problem.
func (a *app) generate() error {
	gc := a.cfg.Generate
	g, err := builder.BuildGraph(gc.Vertices,
		[]builder.BuilderOption{
			builder.WithSeed(gc.Seed),
			builder.WithUniformWeight(gc.MinWeight, gc.MaxWeight),
		},
		builder.RandomSparse(gc.Density),
	)
	if err != nil {
		return usageError(err)
	}
	a.log.Info("problem generated",
		slog.Int("vertices", g.Order()),
		slog.Int("edges", g.Size()),
		slog.Int64("seed", gc.Seed),
	)

	if err = graphio.WriteProblem(a.stdout, graphio.ProblemFromGraph(g, gc.Source-1)); err != nil {
		return runtimeError("write problem: %v", err)
	}

	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			v := version
			if info, ok := debug.ReadBuildInfo(); ok && v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
				v = info.Main.Version
			}
			fmt.Fprintf(a.stdout, "bellman %s\n", v)
			return nil
		},
	}
}
