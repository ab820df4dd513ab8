package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// WriteXLSX writes one worksheet per series plus a summary sheet of the
// process parameters used.
func WriteXLSX(path string, series []Series) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "xlsx: add summary sheet")
	}
	header := summary.AddRow()
	for _, h := range []string{"Compound", "Formula", "Electric_Field_MV_m", "Particle_Radius_um", "Samples"} {
		header.AddCell().SetString(h)
	}
	for _, s := range series {
		row := summary.AddRow()
		row.AddCell().SetString(s.Name)
		row.AddCell().SetString(s.Formula)
		row.AddCell().SetFloat(s.FieldVm / 1e6)
		row.AddCell().SetFloat(s.RadiusM * 1e6)
		row.AddCell().SetInt(len(s.Points))
	}

	for _, s := range series {
		sheet, err := f.AddSheet(sheetName(s.Name))
		if err != nil {
			return eris.Wrapf(err, "xlsx: add sheet for %s", s.Name)
		}

		head := sheet.AddRow()
		for _, h := range []string{"Temperature_K", "Temperature_C", "DG_eq_kJ_per_mol_gas", "DG_eff_kJ_per_mol_gas", "Extrapolated"} {
			head.AddCell().SetString(h)
		}
		for _, p := range s.Points {
			row := sheet.AddRow()
			row.AddCell().SetFloat(p.TempK)
			row.AddCell().SetFloat(p.TempK - 273.15)
			row.AddCell().SetFloat(p.DGEq)
			row.AddCell().SetFloat(p.DGEff)
			row.AddCell().SetBool(p.Extrapolated)
		}
	}

	return eris.Wrapf(f.Save(path), "xlsx: save %s", path)
}

// sheetName fits a compound name into the 31-character worksheet limit.
func sheetName(name string) string {
	if len(name) <= 31 {
		return name
	}
	return fmt.Sprintf("%.28s...", name)
}
