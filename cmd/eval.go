package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

var evalCmd = &cobra.Command{
	Use:   "eval <compound>",
	Short: "Evaluate free energies at a single temperature",
	Long:  "Computes the equilibrium free energy, the field-adjusted effective free energy and its feasibility band for one compound at one temperature, with the equilibrium gas ratios implied by the effective value.",
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
		gasMix, _ := cmd.Flags().GetString("gas-mix")
		systems, _ := cmd.Flags().GetStringSlice("system")

		fieldMV, radiusUm := fieldRadiusFlags(cmd)
		fieldVm := fieldMV * 1e6
		radiusM := radiusUm * 1e-6

		off, err := env.Eval.OffEquilibrium(rec, tempK, fieldVm, radiusM)
		if err != nil {
			return err
		}

		var ratios []thermo.GasRatio
		if len(systems) > 0 {
			parsed := make([]model.GasSystem, 0, len(systems))
			for _, s := range systems {
				sys, err := model.ParseGasSystem(s)
				if err != nil {
					return err
				}
				parsed = append(parsed, sys)
			}
			ratios, err = env.Eval.GasRatios(off.Effective, parsed, tempK)
			if err != nil {
				return err
			}
		}

		crossT, crossFound, err := env.Eval.Crossover(rec, fieldVm, radiusM, rec.TempRange)
		if err != nil {
			return eris.Wrap(err, "eval: crossover scan")
		}

		mix := model.ProcessParameters{GasMix: gasMix}.Mix()
		formatEval(os.Stdout, rec, tempK, fieldMV, radiusUm, mix, off,
			env.Eval.Feasibility(off.Effective), ratios, crossT, crossFound)
		return nil
	},
}

func formatEval(out io.Writer, rec *model.CompoundRecord, tempK, fieldMV, radiusUm float64,
	mix model.GasMix, off thermo.OffEquilibrium, band thermo.Feasibility,
	ratios []thermo.GasRatio, crossT float64, crossFound bool,
) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Compound:\t%s (%s)\n", rec.Name, rec.Formula)
	_, _ = fmt.Fprintf(w, "Temperature:\t%.1f K (%.1f C)\n", tempK, tempK-273.15)
	_, _ = fmt.Fprintf(w, "Field:\t%.2f MV/m\n", fieldMV)
	_, _ = fmt.Fprintf(w, "Radius:\t%.2f um\n", radiusUm)
	_, _ = fmt.Fprintf(w, "Gas mix:\t%s\n", mix.Label)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "dG_eq:\t%.2f kJ/mol\n", off.Equilibrium)
	_, _ = fmt.Fprintf(w, "Electrostatic:\t%.2f kJ/mol\n", off.Electrostatic)
	_, _ = fmt.Fprintf(w, "Phonon work:\t%.2f kJ/mol\n", off.PhononWork)
	_, _ = fmt.Fprintf(w, "dG_eff:\t%.2f kJ/mol\n", off.Effective)
	_, _ = fmt.Fprintf(w, "Feasibility:\t%s\n", band)
	if off.Extrapolated {
		_, _ = fmt.Fprintf(w, "Note:\textrapolated outside [%.0f, %.0f] K\n",
			rec.TempRange.Min, rec.TempRange.Max)
	}
	if crossFound {
		_, _ = fmt.Fprintf(w, "Crossover:\t%.1f K\n", crossT)
	}
	if len(ratios) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "SYSTEM\tLOG10\tRATIO\tCLAMPED")
		for _, r := range ratios {
			clamped := ""
			if r.Clamped {
				clamped = "yes"
			}
			_, _ = fmt.Fprintf(w, "%s\t%.3f\t%.3e\t%s\n", r.System, r.Log10, r.Ratio, clamped)
		}
	}
	_ = w.Flush()
}

func init() {
	evalCmd.Flags().Float64("temp", 1273.15, "temperature in kelvin")
	evalCmd.Flags().Float64("field", 0, "electric field in MV/m (default from config)")
	evalCmd.Flags().Float64("radius", 0, "particle radius in um (default from config)")
	evalCmd.Flags().String("gas-mix", "", "gas composition preset (N2_H2_25, Ar_H2_5)")
	evalCmd.Flags().StringSlice("system", []string{"H2/H2O", "pO2"}, "gas-ratio systems to report")
	rootCmd.AddCommand(evalCmd)
}
