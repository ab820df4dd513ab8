package thermo

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// refLine is the standard free energy of a gas reference reaction, linearized
// as dG_ref(T) = a + b*T in kJ per mole of reference gas, with nu moles of
// the ratio pair exchanged per mole of reference gas. Intercepts and slopes
// are derived from JANAF 298 K formation enthalpies and entropies.
//
// The base orientation is reductant over product: the combined reduction
// reaction has dG_rxn = dG_ref(T) - dG, and holding the compound at
// equilibrium requires
//
//	log10(ratio) = (dG_ref(T) - dG) / (nu * ln10 * R * T / 1000)
//
// so a compound far below its reference line demands a large reducing ratio.
// invert flips the sign for scales quoted in the reciprocal orientation: the
// H2/O2 scale is the exact negative of H2/H2O at the same oxygen reference
// level, CO/O2 mirrors CO/CO2, Cl2/HCl mirrors H2/HCl, and the pO2 and
// CH4/H2 scales carry the sign of the free energy itself.
type refLine struct {
	reaction string
	a, b     float64
	nu       float64
	invert   bool
}

var refLines = map[model.GasSystem]refLine{
	// 2 H2 + O2 = 2 H2O: dH = -483.6 kJ, dS = -89.0 J/K per mol O2.
	model.GasH2H2O: {reaction: "2 H2 + O2 = 2 H2O", a: -483.6, b: 0.0890, nu: 2},
	model.GasH2O2:  {reaction: "2 H2 + O2 = 2 H2O", a: -483.6, b: 0.0890, nu: 2, invert: true},

	// 2 CO + O2 = 2 CO2: dH = -566.0 kJ, dS = -173.0 J/K per mol O2.
	model.GasCOCO2: {reaction: "2 CO + O2 = 2 CO2", a: -566.0, b: 0.1730, nu: 2},
	model.GasCOO2:  {reaction: "2 CO + O2 = 2 CO2", a: -566.0, b: 0.1730, nu: 2, invert: true},

	// 2 H2 + S2 = 2 H2S: dH = -169.8 kJ, dS = -78.0 J/K per mol S2.
	model.GasH2H2S: {reaction: "2 H2 + S2 = 2 H2S", a: -169.8, b: 0.0780, nu: 2},

	// H2 + Cl2 = 2 HCl: dH = -184.6 kJ, dS = +20.0 J/K per mol Cl2.
	model.GasH2HCl:  {reaction: "H2 + Cl2 = 2 HCl", a: -184.6, b: -0.0200, nu: 2},
	model.GasCl2HCl: {reaction: "H2 + Cl2 = 2 HCl", a: -184.6, b: -0.0200, nu: 2, invert: true},

	// Carbochlorination scale: the HCl line offset by half the CO oxidation
	// line, per mol Cl2: dH = -295.3 kJ, dS = -66.5 J/K.
	model.GasCOHCl: {reaction: "CO + H2 + Cl2 = 2 HCl + CO (carbochlorination)", a: -295.3, b: 0.0665, nu: 2},

	// Oxygen partial pressure: dG = RT ln(pO2) at equilibrium. The reference
	// line is zero, one mole of gas is exchanged, and log10(pO2) carries the
	// sign of dG, hence inverted.
	model.GasPO2: {reaction: "M + O2 = MO2 (pO2 potential)", a: 0, b: 0, nu: 1, invert: true},

	// C + 2 H2 = CH4: dH = -74.9 kJ, dS = -80.8 J/K per mol C. Stable
	// carbides hold equilibrium under lean methane, so the scale is inverted.
	model.GasCH4H2: {reaction: "C + 2 H2 = CH4", a: -74.9, b: 0.0808, nu: 2, invert: true},
}

// GasRatio is a back-calculated equilibrium gas quantity for display on a
// nomographic scale.
type GasRatio struct {
	System   model.GasSystem `json:"system"`
	Reaction string          `json:"reaction"`
	Log10    float64         `json:"log10"`
	Ratio    float64         `json:"ratio"`
	Clamped  bool            `json:"clamped,omitempty"`
}

// GasRatio converts a free energy (kJ per mole of reference gas) at tempK
// into the log10 gas ratio (or partial pressure, for pO2) required to hold
// equilibrium, via dG_reaction = -R*T*ln(K). The log output is clamped to the
// configured bound; Ratio is 10^Log10 of the clamped value.
func (e *Evaluator) GasRatio(dgKJ float64, system model.GasSystem, tempK float64) (GasRatio, error) {
	if tempK <= 0 {
		return GasRatio{}, eris.Wrapf(model.ErrInvalidTemperature, "T=%g K", tempK)
	}
	line, ok := refLines[system]
	if !ok {
		return GasRatio{}, eris.Wrapf(model.ErrUnsupportedGasSystem, "%q", system)
	}

	dgRef := line.a + line.b*tempK
	// R*T in kJ/mol; ln10 converts natural log to decades.
	denom := line.nu * math.Ln10 * GasConstant * tempK / 1000
	logRatio := (dgRef - dgKJ) / denom
	if line.invert {
		logRatio = -logRatio
	}

	clamped := false
	if bound := e.opts.LogRatioBound; math.Abs(logRatio) > bound {
		logRatio = math.Copysign(bound, logRatio)
		clamped = true
	}

	return GasRatio{
		System:   system,
		Reaction: line.reaction,
		Log10:    logRatio,
		Ratio:    math.Pow(10, logRatio),
		Clamped:  clamped,
	}, nil
}

// GasRatios evaluates every requested scale at the same point. A single
// unsupported kind fails the whole call.
func (e *Evaluator) GasRatios(dgKJ float64, systems []model.GasSystem, tempK float64) ([]GasRatio, error) {
	out := make([]GasRatio, 0, len(systems))
	for _, sys := range systems {
		r, err := e.GasRatio(dgKJ, sys, tempK)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
