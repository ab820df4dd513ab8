package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plasma-forge/ellingham-cli/internal/export"
	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

var curveCmd = &cobra.Command{
	Use:   "curve <compound>...",
	Short: "Sample Ellingham curves over a temperature range",
	Long:  "Evaluates equilibrium and effective free-energy curves for one or more compounds and writes the samples to stdout as CSV.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		records := make([]*model.CompoundRecord, 0, len(args))
		for _, name := range args {
			rec, err := env.Registry.Get(name)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}

		req, err := curveRequest(cmd, records)
		if err != nil {
			return err
		}

		series, err := export.BuildSeries(ctx, env.Eval, req)
		if err != nil {
			return err
		}
		return export.WriteCSV(os.Stdout, series)
	},
}

// curveRequest assembles an export request from the shared curve flags,
// falling back to configured defaults.
func curveRequest(cmd *cobra.Command, records []*model.CompoundRecord) (export.Request, error) {
	minK, _ := cmd.Flags().GetFloat64("min")
	maxK, _ := cmd.Flags().GetFloat64("max")
	stepK, _ := cmd.Flags().GetFloat64("step")
	gasMix, _ := cmd.Flags().GetString("gas-mix")
	normalize, _ := cmd.Flags().GetString("normalize")
	fieldMV, radiusUm := fieldRadiusFlags(cmd)

	if minK == 0 {
		minK = cfg.Eval.TempMinK
	}
	if maxK == 0 {
		maxK = cfg.Eval.TempMaxK
	}
	if stepK == 0 {
		stepK = cfg.Eval.StepK
	}

	var mode thermo.NormalizationMode
	if normalize != "" {
		m, err := thermo.ParseNormalizationMode(normalize)
		if err != nil {
			return export.Request{}, err
		}
		mode = m
	}

	return export.Request{
		Records: records,
		Range:   model.TempRange{Min: minK, Max: maxK},
		StepK:   stepK,
		Process: model.ProcessParameters{
			Field:  fieldMV * 1e6,
			Radius: radiusUm * 1e-6,
			GasMix: gasMix,
		},
		Normalize: mode,
	}, nil
}

// addCurveFlags registers the flags shared by curve and export.
func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min", 0, "range start in kelvin (default from config)")
	cmd.Flags().Float64("max", 0, "range end in kelvin (default from config)")
	cmd.Flags().Float64("step", 0, "sample step in kelvin (default from config)")
	cmd.Flags().Float64("field", 0, "electric field in MV/m (default from config)")
	cmd.Flags().Float64("radius", 0, "particle radius in um (default from config)")
	cmd.Flags().String("gas-mix", "", "gas composition preset (N2_H2_25, Ar_H2_5)")
	cmd.Flags().String("normalize", "", "rescale curves onto a common basis (automatic, perMetal, perReducingAgent)")
}

func init() {
	addCurveFlags(curveCmd)
	rootCmd.AddCommand(curveCmd)
}
