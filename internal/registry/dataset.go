package registry

import "github.com/plasma-forge/ellingham-cli/internal/model"

// builtin is the reference compound dataset: Ellingham fits against JANAF
// tables, normalized per mole of reference gas, with phonon/plasma work
// constants and display properties. Coefficients are (A, B, C, D) for
// dG(T) = A + B*T + C*T*ln(T) + D*T*T in kJ/mol.
//
// n is the electron count per mole of reference gas: 4 for O2, 6 for N2,
// 4 for C.
var builtin = []model.CompoundRecord{
	{
		Name: "TiO2", Formula: "TiO2", Element: "Ti", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-944.7, 0.1815, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 20.0,
		MolarMass: 79.9, Density: 4250,
		Source: "JANAF Tables 4th Ed.", Notes: "rutile",
	},
	{
		Name: "TiO", Formula: "TiO", Element: "Ti", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-1039.4, 0.1830, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1900},
		Electrons:    4, PhononWork: 20.0,
		MolarMass: 63.9, Density: 4950,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "ZrO2", Formula: "ZrO2", Element: "Zr", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-1100.6, 0.1938, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 22.0,
		MolarMass: 123.2, Density: 5680,
		Source: "NIST Chemistry WebBook", Notes: "monoclinic",
	},
	{
		Name: "Al2O3", Formula: "Al2O3", Element: "Al", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-1117.3, 0.2093, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 20.2,
		MolarMass: 101.96, Density: 3950,
		Source: "JANAF Tables 4th Ed.", Notes: "alpha-alumina",
	},
	{
		Name: "MgO", Formula: "MgO", Element: "Mg", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-1203.2, 0.2168, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 22.6,
		MolarMass: 40.3, Density: 3580,
		Source: "NIST Chemistry WebBook", Notes: "periclase",
	},
	{
		Name: "Fe2O3", Formula: "Fe2O3", Element: "Fe", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-549.5, 0.1833, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1800},
		Electrons:    4, PhononWork: 18.5,
		MolarMass: 159.7, Density: 5240,
		Source: "JANAF Tables 4th Ed.", Notes: "hematite",
	},
	{
		Name: "Cr2O3", Formula: "Cr2O3", Element: "Cr", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-759.8, 0.1828, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 19.8,
		MolarMass: 152.0, Density: 5220,
		Source: "NIST Chemistry WebBook", Notes: "eskolaite",
	},
	{
		Name: "MoO3", Formula: "MoO3", Element: "Mo", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-496.7, 0.1725, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 21.0,
		MolarMass: 143.9, Density: 4700,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "MoO2", Formula: "MoO2", Element: "Mo", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-588.9, 0.1876, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 20.0,
		MolarMass: 127.9, Density: 6470,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "WO3", Formula: "WO3", Element: "W", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-561.9, 0.1763, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 23.0,
		MolarMass: 231.8, Density: 7160,
		Source: "NIST Chemistry WebBook",
	},
	{
		Name: "WO2", Formula: "WO2", Element: "W", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-589.7, 0.1873, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 22.0,
		MolarMass: 215.8, Density: 10800,
		Source: "NIST Chemistry WebBook",
	},
	{
		Name: "V2O5", Formula: "V2O5", Element: "V", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-620.2, 0.1759, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1200},
		Electrons:    4, PhononWork: 21.0,
		MolarMass: 181.9, Density: 3360,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "V2O3", Formula: "V2O3", Element: "V", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-812.5, 0.1782, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 19.0,
		MolarMass: 149.9, Density: 4870,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "Nb2O5", Formula: "Nb2O5", Element: "Nb", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-759.8, 0.1794, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 24.0,
		MolarMass: 265.8, Density: 4600,
		Source: "NIST Chemistry WebBook",
	},
	{
		Name: "NbO", Formula: "NbO", Element: "Nb", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-811.6, 0.1818, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 20.0,
		MolarMass: 108.9, Density: 7300,
		Source: "NIST Chemistry WebBook",
	},
	{
		Name: "Ta2O5", Formula: "Ta2O5", Element: "Ta", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-818.4, 0.1812, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 26.0,
		MolarMass: 441.9, Density: 8200,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "CeO2", Formula: "CeO2", Element: "Ce", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-1088.7, 0.2149, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 27.3,
		MolarMass: 172.1, Density: 7220,
		Source: "JANAF Tables 4th Ed.", Notes: "fluorite",
	},
	{
		Name: "Cu2O", Formula: "Cu2O", Element: "Cu", Category: model.CategoryOxide,
		Coefficients: model.Coefficients{-337.2, 0.1518, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 1500},
		Electrons:    4, PhononWork: 18.3,
		MolarMass: 143.1, Density: 6000,
		Source: "NIST Chemistry WebBook",
	},
	{
		Name: "TiN", Formula: "TiN", Element: "Ti", Category: model.CategoryNitride,
		Coefficients: model.Coefficients{-675.4, 0.1924, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    6, PhononWork: 18.0,
		MolarMass: 61.9, Density: 5400,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "AlN", Formula: "AlN", Element: "Al", Category: model.CategoryNitride,
		Coefficients: model.Coefficients{-636.0, 0.2078, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    6, PhononWork: 19.0,
		MolarMass: 41.0, Density: 3260,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "TiC", Formula: "TiC", Element: "Ti", Category: model.CategoryCarbide,
		Coefficients: model.Coefficients{-184.5, 0.0122, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 15.0,
		MolarMass: 59.9, Density: 4930,
		Source: "JANAF Tables 4th Ed.",
	},
	{
		Name: "SiC", Formula: "SiC", Element: "Si", Category: model.CategoryCarbide,
		Coefficients: model.Coefficients{-65.3, 0.0079, 0, 0},
		TempRange:    model.TempRange{Min: 298, Max: 2000},
		Electrons:    4, PhononWork: 14.0,
		MolarMass: 40.1, Density: 3210,
		Source: "JANAF Tables 4th Ed.",
	},
}

// Builtin returns a copy of the reference dataset.
func Builtin() []model.CompoundRecord {
	out := make([]model.CompoundRecord, len(builtin))
	copy(out, builtin)
	return out
}
