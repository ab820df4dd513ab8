package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

var gasCmd = &cobra.Command{
	Use:   "gas <compound>",
	Short: "Back-calculate equilibrium gas ratios",
	Long:  "Computes the gas ratios (or oxygen partial pressure) that would hold a compound at equilibrium at the given temperature, across every supported nomographic scale.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		rec, err := env.Registry.Get(args[0])
		if err != nil {
			return err
		}

		tempK, _ := cmd.Flags().GetFloat64("temp")
		systems, _ := cmd.Flags().GetStringSlice("system")

		fieldMV, radiusUm := fieldRadiusFlags(cmd)
		off, err := env.Eval.OffEquilibrium(rec, tempK, fieldMV*1e6, radiusUm*1e-6)
		if err != nil {
			return err
		}

		selected := model.GasSystems
		if len(systems) > 0 {
			selected = make([]model.GasSystem, 0, len(systems))
			for _, s := range systems {
				sys, err := model.ParseGasSystem(s)
				if err != nil {
					return err
				}
				selected = append(selected, sys)
			}
		}

		ratios, err := env.Eval.GasRatios(off.Effective, selected, tempK)
		if err != nil {
			return err
		}

		formatGasRatios(os.Stdout, rec.Name, tempK, off.Effective, ratios)
		return nil
	},
}

func formatGasRatios(out io.Writer, name string, tempK, dgEff float64, ratios []thermo.GasRatio) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Compound:\t%s\n", name)
	_, _ = fmt.Fprintf(w, "Temperature:\t%.1f K\n", tempK)
	_, _ = fmt.Fprintf(w, "dG_eff:\t%.2f kJ/mol\n", dgEff)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "SYSTEM\tREACTION\tLOG10\tRATIO\tCLAMPED")
	for _, r := range ratios {
		clamped := ""
		if r.Clamped {
			clamped = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3e\t%s\n",
			r.System, r.Reaction, r.Log10, r.Ratio, clamped)
	}
	_ = w.Flush()
}

func init() {
	gasCmd.Flags().Float64("temp", 1273.15, "temperature in kelvin")
	gasCmd.Flags().Float64("field", 0, "electric field in MV/m (default from config)")
	gasCmd.Flags().Float64("radius", 0, "particle radius in um (default from config)")
	gasCmd.Flags().StringSlice("system", nil, "gas systems to report (default all)")
	rootCmd.AddCommand(gasCmd)
}
