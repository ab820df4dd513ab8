package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Manage custom compounds",
	Long:  "Commands for registering, removing and bulk-importing user-defined compounds.",
}

// -- compound add --

var compoundAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a custom compound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		formula, _ := cmd.Flags().GetString("formula")
		element, _ := cmd.Flags().GetString("element")
		category, _ := cmd.Flags().GetString("category")
		coeffs, _ := cmd.Flags().GetFloat64Slice("coefficients")
		tempMin, _ := cmd.Flags().GetFloat64("temp-min")
		tempMax, _ := cmd.Flags().GetFloat64("temp-max")
		electrons, _ := cmd.Flags().GetInt("electrons")
		wph, _ := cmd.Flags().GetFloat64("phonon-work")
		molarMass, _ := cmd.Flags().GetFloat64("molar-mass")
		density, _ := cmd.Flags().GetFloat64("density")
		source, _ := cmd.Flags().GetString("source")
		notes, _ := cmd.Flags().GetString("notes")

		if len(coeffs) != 4 {
			return eris.Errorf("expected 4 coefficients (A,B,C,D), got %d", len(coeffs))
		}

		rec := model.CompoundRecord{
			Name:         args[0],
			Formula:      formula,
			Element:      element,
			Category:     model.Category(category),
			Coefficients: model.Coefficients{coeffs[0], coeffs[1], coeffs[2], coeffs[3]},
			TempRange:    model.TempRange{Min: tempMin, Max: tempMax},
			Electrons:    electrons,
			PhononWork:   wph,
			MolarMass:    molarMass,
			Density:      density,
			Source:       source,
			Notes:        notes,
		}

		if err := env.Registry.Register(ctx, rec); err != nil {
			return err
		}
		fmt.Printf("Registered %s\n", rec.Name)
		return nil
	},
}

// -- compound rm --

var compoundRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a custom compound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Registry.Remove(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

// -- compound import --

var compoundImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-import custom compounds from a YAML file",
	Long:  "Reads a YAML document with a top-level compounds list, validates every record, and upserts the batch into the configured store. Re-importing a file refreshes existing records.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		if env.Store == nil {
			return eris.New("compound import requires a configured store")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrapf(err, "read %s", args[0])
		}

		var doc struct {
			Compounds []model.CompoundRecord `yaml:"compounds"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return eris.Wrapf(err, "parse %s", args[0])
		}
		if len(doc.Compounds) == 0 {
			return eris.Errorf("%s contains no compounds", args[0])
		}

		for i := range doc.Compounds {
			if err := doc.Compounds[i].Validate(); err != nil {
				return err
			}
			doc.Compounds[i].Custom = true
		}

		if err := env.Store.SaveAll(ctx, doc.Compounds); err != nil {
			return err
		}

		zap.L().Info("compound import complete",
			zap.String("file", args[0]),
			zap.Int("compounds", len(doc.Compounds)),
		)
		fmt.Printf("Imported %d compounds\n", len(doc.Compounds))
		return nil
	},
}

func init() {
	compoundAddCmd.Flags().String("formula", "", "chemical formula, e.g. TiO2")
	compoundAddCmd.Flags().String("element", "", "primary metal element symbol")
	compoundAddCmd.Flags().String("category", "oxide", "compound category")
	compoundAddCmd.Flags().Float64Slice("coefficients", nil, "polynomial fit A,B,C,D in kJ/mol reference gas")
	compoundAddCmd.Flags().Float64("temp-min", 298.15, "validated range start in kelvin")
	compoundAddCmd.Flags().Float64("temp-max", 2000, "validated range end in kelvin")
	compoundAddCmd.Flags().Int("electrons", 4, "electrons transferred per mole of reference gas")
	compoundAddCmd.Flags().Float64("phonon-work", 0, "phonon work W_ph in kJ/mol reference gas")
	compoundAddCmd.Flags().Float64("molar-mass", 0, "molar mass in g/mol")
	compoundAddCmd.Flags().Float64("density", 0, "density in g/cm3")
	compoundAddCmd.Flags().String("source", "custom", "data provenance label")
	compoundAddCmd.Flags().String("notes", "", "free-form notes")

	compoundCmd.AddCommand(compoundAddCmd)
	compoundCmd.AddCommand(compoundRmCmd)
	compoundCmd.AddCommand(compoundImportCmd)
	rootCmd.AddCommand(compoundCmd)
}
