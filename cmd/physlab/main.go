package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avelar/physlab/internal/calc"
	"github.com/avelar/physlab/internal/config"
	"github.com/avelar/physlab/internal/export"
	"github.com/avelar/physlab/internal/plot"
	"github.com/avelar/physlab/internal/tui"
)

var (
	configFile string
	preset     string
	format     string
	outFile    string
	chartWidth int

	registry = calc.NewRegistry()

	// One flag per input field, shared by run and export.
	fieldFlags = map[string]*float64{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "interactive physics and engineering calculators",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to interactive mode when no command given
			return tui.Run()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [calculator]",
		Short: "evaluate a calculator and chart its sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalculator,
	}
	addFieldFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	runCmd.Flags().IntVar(&chartWidth, "width", plot.DefaultWidth, "chart width")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list calculators",
		RunE:  listCalculators,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields [calculator]",
		Short: "show input fields and their bounds",
		Args:  cobra.ExactArgs(1),
		RunE:  listFields,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [calculator]",
		Short: "list available presets for a calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for calculator: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [calculator]",
		Short: "export the sweep series as csv or json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCalculator,
	}
	addFieldFlags(exportCmd)
	exportCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	exportCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format (csv|json)")
	exportCmd.Flags().StringVarP(&outFile, "output", "o", "", "write to file instead of stdout")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, fieldsCmd, presetsCmd, exportCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addFieldFlags registers one float flag per input field of every
// calculator. Field names are unique across calculators.
func addFieldFlags(cmd *cobra.Command) {
	for _, name := range registry.Names() {
		c, err := registry.Get(name)
		if err != nil {
			continue
		}
		for _, f := range c.Fields() {
			flagName := flagFor(f.Name)
			v, ok := fieldFlags[f.Name]
			if !ok {
				v = new(float64)
				*v = f.Default
				fieldFlags[f.Name] = v
			}
			cmd.Flags().Float64Var(v, flagName, f.Default,
				fmt.Sprintf("%s (%s)", strings.ToLower(f.Label), f.Unit))
		}
	}
}

func flagFor(fieldName string) string {
	return strings.ReplaceAll(fieldName, "_", "-")
}

// resolveParams merges inputs with the teacher-of-record precedence:
// defaults, then preset, then config file, then explicitly-set flags.
func resolveParams(cmd *cobra.Command, c calc.Calculator) (calc.Params, error) {
	params := calc.Defaults(c.Fields())

	if preset != "" {
		p := config.GetPreset(c.Name(), preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(c.Name()))
		}
		for k, v := range p {
			params[k] = v
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		p, err := cfg.Params(c.Name())
		if err != nil {
			return nil, err
		}
		for k, v := range p {
			params[k] = v
		}
	}

	for _, f := range c.Fields() {
		if cmd.Flags().Changed(flagFor(f.Name)) {
			params[f.Name] = *fieldFlags[f.Name]
		}
	}

	calc.Clamp(c.Fields(), params)
	return params, nil
}

func runCalculator(cmd *cobra.Command, args []string) error {
	c, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	params, err := resolveParams(cmd, c)
	if err != nil {
		return err
	}

	result := c.Compute(params)

	fmt.Printf("%s\n\n", c.Title())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range c.Fields() {
		fmt.Fprintf(w, "  %s\t%.2f %s\n", f.Label, params[f.Name], f.Unit)
	}
	fmt.Fprintln(w, "\t")
	for _, m := range result.Metrics {
		display := m.Display
		if display == "" {
			display = fmt.Sprintf("%.2f", m.Value)
		}
		if m.Delta != "" {
			fmt.Fprintf(w, "  %s\t%s %s  (%s)\n", m.Label, display, m.Unit, m.Delta)
		} else {
			fmt.Fprintf(w, "  %s\t%s %s\n", m.Label, display, m.Unit)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if result.Warning != "" {
		fmt.Printf("\n  warning: %s\n", result.Warning)
	}
	if result.Note != "" {
		fmt.Printf("\n  %s\n", result.Note)
	}

	if result.Series != nil {
		fmt.Println()
		fmt.Println(plot.Render(result.Series, chartWidth, plot.DefaultHeight))
	}

	return nil
}

func listCalculators(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDESCRIPTION")
	for _, name := range registry.Names() {
		c, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name(), c.Title(), c.Description())
	}
	return w.Flush()
}

func listFields(cmd *cobra.Command, args []string) error {
	c, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tUNIT\tMIN\tMAX\tDEFAULT\tSTEP")
	for _, f := range c.Fields() {
		max := "-"
		if f.Max > 0 {
			max = fmt.Sprintf("%g", f.Max)
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%g\t%g\n",
			flagFor(f.Name), f.Unit, f.Min, max, f.Default, f.Step)
	}
	return w.Flush()
}

func exportCalculator(cmd *cobra.Command, args []string) error {
	c, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	params, err := resolveParams(cmd, c)
	if err != nil {
		return err
	}

	result := c.Compute(params)

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		return export.CSV(out, result)
	case "json":
		return export.JSON(out, c.Name(), params, result)
	}
	return fmt.Errorf("unknown format: %s (want csv or json)", format)
}
