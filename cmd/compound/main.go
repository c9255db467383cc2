package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/compound/internal/automation"
	"github.com/san-kum/compound/internal/config"
	"github.com/san-kum/compound/internal/export"
	"github.com/san-kum/compound/internal/growth"
	"github.com/san-kum/compound/internal/metrics"
	"github.com/san-kum/compound/internal/viz"
)

var (
	logLevel string
	theme    string
	// Growth inputs
	principal  float64
	rate       float64
	frequency  string
	years      int
	configFile string
	preset     string
	clamp      bool
	// Trace output
	emittedOnly bool
	// Reveal pacing
	pace    time.Duration
	intro   time.Duration
	hold    time.Duration
	showAll bool
	// Export
	format  string
	outPath string
	// Sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

// main registers the compound commands and flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "compound",
		Short:         "compound interest growth calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "compute final amount and interest earned",
		RunE:  runCalc,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the year by year growth trace",
		RunE:  runTrace,
	}
	traceCmd.Flags().BoolVar(&emittedOnly, "emitted", false, "only years selected for display")

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "reveal the growth trace year by year",
		RunE:  runAnimate,
	}
	animateCmd.Flags().DurationVar(&pace, "pace", 0, "delay between years (0 picks from the horizon)")
	animateCmd.Flags().DurationVar(&intro, "intro", 2*time.Second, "calculating spinner duration")
	animateCmd.Flags().DurationVar(&hold, "hold", time.Second, "closing banner duration")
	animateCmd.Flags().BoolVar(&showAll, "all", false, "reveal every year")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the growth trace",
		RunE:  runPlot,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare every compounding frequency",
		RunE:  runCompare,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export result and trace as csv, json or svg",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (csv, json, svg)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "vary the rate or the term and tabulate the outcome",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", automation.SweepRate, "parameter to vary (rate, years)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 10, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of points")

	for _, c := range []*cobra.Command{calcCmd, traceCmd, animateCmd, plotCmd, compareCmd, exportCmd, sweepCmd} {
		addInputFlags(c)
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml batch of calculations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPRINCIPAL\tRATE\tFREQUENCY\tYEARS")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", name, viz.FormatMoney(p.Principal), viz.FormatRate(p.AnnualRate), p.Frequency, p.Years)
			}
			return w.Flush()
		},
	}

	frequenciesCmd := &cobra.Command{
		Use:   "frequencies",
		Short: "list compounding frequency choices",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPER YEAR\tLABEL")
			for _, f := range config.Frequencies {
				fmt.Fprintf(w, "%s\t%d\t%s\n", f.Name, f.PerYear, f.Label)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(calcCmd, traceCmd, animateCmd, plotCmd, compareCmd, exportCmd, sweepCmd, scenarioCmd, presetsCmd, frequenciesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&principal, "principal", config.DefaultPrincipal, "initial amount (Rp)")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "annual interest rate (%)")
	cmd.Flags().StringVar(&frequency, "frequency", config.DefaultFrequency, "compounding frequency ("+strings.Join(config.FrequencyNames(), ", ")+" or periods per year)")
	cmd.Flags().IntVar(&years, "years", config.DefaultYears, "term in years")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&clamp, "clamp", true, "pull inputs into the supported ranges instead of rejecting them")
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		slog.Debug("applied preset", "preset", preset)
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Debug("loaded config file", "path", configFile)
	}

	// Flag defaults only win when nothing else supplied the inputs.
	flags := cmd.Flags()
	fromFlags := preset == "" && configFile == ""
	if fromFlags || flags.Changed("principal") {
		cfg.Principal = principal
	}
	if fromFlags || flags.Changed("rate") {
		cfg.AnnualRate = rate
	}
	if fromFlags || flags.Changed("frequency") {
		cfg.Frequency = frequency
	}
	if fromFlags || flags.Changed("years") {
		cfg.Years = years
	}
	if flags.Lookup("pace") != nil && flags.Changed("pace") {
		cfg.Display.Pace = pace
	}
	if flags.Lookup("all") != nil && flags.Changed("all") {
		cfg.Display.ShowAll = showAll
	}
	if flags.Changed("theme") || cfg.Display.Theme == "" {
		cfg.Display.Theme = theme
	}

	if clamp {
		for _, field := range cfg.Clamp() {
			slog.Warn("input outside supported range, clamped", "field", field)
		}
	}

	if err := viz.SetTheme(cfg.Display.Theme); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveParams(cmd *cobra.Command) (growth.Params, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return growth.Params{}, nil, err
	}
	p, err := cfg.Params()
	if err != nil {
		return growth.Params{}, nil, err
	}
	slog.Debug("resolved inputs", "principal", p.Principal, "rate", p.AnnualRatePercent, "frequency", p.Frequency, "years", p.Years)
	return p, cfg, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := growth.Compute(p)
	if err != nil {
		return err
	}

	styles := viz.NewStyles(viz.CurrentTheme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title(styles))
	fmt.Fprintln(out, viz.Summary(p, res, styles))
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := growth.Compute(p)
	if err != nil {
		return err
	}
	seq, err := growth.Trace(p)
	if err != nil {
		return err
	}

	rows := seq
	if emittedOnly {
		rows = growth.Emitted(seq)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tAMOUNT\tSHOWN")
	for s := range rows {
		shown := ""
		if s.Emit {
			shown = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Period, viz.FormatMoney(s.Amount), shown)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	vals := metrics.Collect(seq, metrics.Default(p, res)...)
	fmt.Fprintf(cmd.OutOrStdout(), "\nclosed-form final amount: %s\n", viz.FormatMoney(res.FinalAmount))
	fmt.Fprintf(cmd.OutOrStdout(), "trace divergence: %.4f%% (the trace spreads each year's growth linearly)\n", vals["divergence"]*100)
	fmt.Fprintf(cmd.OutOrStdout(), "peak yearly growth: %s\n", viz.FormatMoney(vals["peak_growth"]))
	return nil
}

func runAnimate(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := growth.Compute(p)
	if err != nil {
		return err
	}
	seq, err := growth.Trace(p)
	if err != nil {
		return err
	}

	opts := viz.DefaultRevealOptions(p.Years)
	if cfg.Display.Pace > 0 {
		opts.Pace = cfg.Display.Pace
	}
	opts.Intro = intro
	opts.Hold = hold
	opts.ShowAll = cfg.Display.ShowAll

	return viz.Reveal(p, res, seq, opts)
}

func runPlot(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	seq, err := growth.Trace(p)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("amount by year, %s at %s, %s", viz.FormatMoney(p.Principal), viz.FormatRate(p.AnnualRatePercent), config.FrequencyLabel(p.Frequency))
	fmt.Fprintln(cmd.OutOrStdout(), viz.Chart(seq, caption))
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FREQUENCY\tFINAL AMOUNT\tINTEREST\tTRACE FINAL\tDIVERGENCE")

	for _, f := range config.Frequencies {
		fp := p
		fp.Frequency = f.PerYear

		res, err := growth.Compute(fp)
		if err != nil {
			return err
		}
		seq, err := growth.Trace(fp)
		if err != nil {
			return err
		}

		var last growth.Snapshot
		for s := range seq {
			last = s
		}
		div := metrics.Collect(seq, metrics.NewDivergence(res.FinalAmount))["divergence"]

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f%%\n",
			f.Label,
			viz.FormatMoney(res.FinalAmount),
			viz.FormatMoney(res.InterestEarned),
			viz.FormatMoney(last.Amount),
			div*100,
		)
	}

	return w.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	res, err := growth.Compute(p)
	if err != nil {
		return err
	}
	seq, err := growth.Trace(p)
	if err != nil {
		return err
	}

	run := export.Run{
		Params:  p,
		Result:  res,
		Trace:   seq,
		Metrics: metrics.Collect(seq, metrics.Default(p, res)...),
	}

	slog.Debug("exporting", "format", f, "out", outPath)
	if outPath != "" {
		return export.WriteFile(outPath, f, run)
	}
	return export.Write(cmd.OutOrStdout(), f, run)
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(context.Background(), &automation.ParameterSweep{
		Base:  p,
		Param: sweepParam,
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
	})
	if err != nil {
		return err
	}

	return printResults(cmd.OutOrStdout(), results)
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	results, err := automation.RunScenario(context.Background(), scenario)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", scenario.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return printResults(cmd.OutOrStdout(), results)
}

func printResults(out io.Writer, results []automation.StepResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPRINCIPAL\tRATE\tFREQ\tYEARS\tFINAL AMOUNT\tINTEREST")

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.Name,
			viz.FormatMoney(r.Params.Principal),
			viz.FormatRate(r.Params.AnnualRatePercent),
			r.Params.Frequency,
			r.Params.Years,
			viz.FormatMoney(r.Result.FinalAmount),
			viz.FormatMoney(r.Result.InterestEarned),
		)
	}

	return w.Flush()
}
