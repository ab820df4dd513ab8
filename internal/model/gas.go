package model

import "github.com/rotisserie/eris"

// GasSystem identifies one of the closed set of gas-ratio nomographic scales.
type GasSystem string

const (
	GasH2H2O  GasSystem = "H2/H2O"
	GasCOCO2  GasSystem = "CO/CO2"
	GasH2H2S  GasSystem = "H2/H2S"
	GasCl2HCl GasSystem = "Cl2/HCl"
	GasH2HCl  GasSystem = "H2/HCl"
	GasCOHCl  GasSystem = "CO/HCl"
	GasPO2    GasSystem = "pO2"
	GasH2O2   GasSystem = "H2/O2"
	GasCOO2   GasSystem = "CO/O2"
	GasCH4H2  GasSystem = "CH4/H2"
)

// GasSystems lists every supported gas-ratio scale.
var GasSystems = []GasSystem{
	GasH2H2O, GasCOCO2, GasH2H2S, GasCl2HCl, GasH2HCl,
	GasCOHCl, GasPO2, GasH2O2, GasCOO2, GasCH4H2,
}

// ParseGasSystem maps a request string onto the closed enum. Unknown kinds
// fail with ErrUnsupportedGasSystem.
func ParseGasSystem(s string) (GasSystem, error) {
	for _, g := range GasSystems {
		if string(g) == s {
			return g, nil
		}
	}
	return "", eris.Wrapf(ErrUnsupportedGasSystem, "%q", s)
}

// GasMix is an enumerated gas composition preset with fixed mole fractions.
type GasMix struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	H2Fraction      float64 `json:"h2_fraction"`
	CarrierGas      string  `json:"carrier_gas"`
	CarrierFraction float64 `json:"carrier_fraction"`
}

// GasMixes holds the supported composition presets, keyed as in the reactor
// configuration the dataset was fit against.
var GasMixes = map[string]GasMix{
	"N2_H2_25": {
		Key:             "N2_H2_25",
		Label:           "N2 75% / H2 25%",
		H2Fraction:      0.25,
		CarrierGas:      "N2",
		CarrierFraction: 0.75,
	},
	"Ar_H2_5": {
		Key:             "Ar_H2_5",
		Label:           "Ar 95% / H2 5%",
		H2Fraction:      0.05,
		CarrierGas:      "Ar",
		CarrierFraction: 0.95,
	},
}

// DefaultGasMix is the preset assumed when a request names none.
const DefaultGasMix = "N2_H2_25"

// ProcessParameters are the transient per-request reactor conditions. They
// are never persisted; every query recomputes from scratch.
type ProcessParameters struct {
	Field  float64 `json:"field"`  // electric field, V/m
	Radius float64 `json:"radius"` // particle radius, m
	GasMix string  `json:"gas_mix,omitempty"`
}

// Mix resolves the gas composition preset, falling back to the default.
func (p ProcessParameters) Mix() GasMix {
	if m, ok := GasMixes[p.GasMix]; ok {
		return m
	}
	return GasMixes[DefaultGasMix]
}
