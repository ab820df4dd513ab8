package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
)

// csvHeader mirrors the column layout downstream spreadsheets already
// consume. Field is reported in MV/m and radius in um.
var csvHeader = []string{
	"Compound",
	"Temperature_C",
	"Temperature_K",
	"DG_eq_kJ_per_mol_gas",
	"DG_eff_kJ_per_mol_gas",
	"Electric_Field_MV_m",
	"Particle_Radius_um",
	"Extrapolated",
}

// WriteCSV writes every series as long-format rows, one row per sample.
func WriteCSV(w io.Writer, series []Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "csv: write header")
	}

	for _, s := range series {
		fieldMV := s.FieldVm / 1e6
		radiusUm := s.RadiusM * 1e6
		for _, p := range s.Points {
			row := []string{
				s.Name,
				fmt.Sprintf("%.1f", p.TempK-273.15),
				fmt.Sprintf("%.1f", p.TempK),
				fmt.Sprintf("%.2f", p.DGEq),
				fmt.Sprintf("%.2f", p.DGEff),
				fmt.Sprintf("%.2f", fieldMV),
				fmt.Sprintf("%.2f", radiusUm),
				strconv.FormatBool(p.Extrapolated),
			}
			if err := cw.Write(row); err != nil {
				return eris.Wrapf(err, "csv: write row for %s", s.Name)
			}
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "csv: flush")
}
