package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plasma-forge/ellingham-cli/internal/export"
	"github.com/plasma-forge/ellingham-cli/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export <compound>...",
	Short: "Export sampled curves to a CSV or XLSX file",
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

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		if format == "" {
			format = cfg.Export.Format
		}
		if out == "" {
			out = filepath.Join(cfg.Export.Dir, "ellingham."+format)
		}

		switch format {
		case "csv":
			f, err := os.Create(out)
			if err != nil {
				return eris.Wrapf(err, "export: create %s", out)
			}
			defer f.Close()
			if err := export.WriteCSV(f, series); err != nil {
				return err
			}
		case "xlsx":
			if err := export.WriteXLSX(out, series); err != nil {
				return err
			}
		default:
			return eris.Errorf("export: unknown format %q (want csv or xlsx)", format)
		}

		zap.L().Info("export complete",
			zap.String("file", out),
			zap.Int("compounds", len(series)),
		)
		return nil
	},
}

func init() {
	addCurveFlags(exportCmd)
	exportCmd.Flags().String("format", "", "output format: csv or xlsx (default from config)")
	exportCmd.Flags().String("out", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
