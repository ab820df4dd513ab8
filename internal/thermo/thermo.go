// Package thermo implements the thermodynamic evaluator: equilibrium and
// off-equilibrium Gibbs free energies from JANAF polynomial fits, gas-ratio
// back-calculation, multi-compound normalization and feasibility bands.
//
// Every operation is a pure function of its inputs. The only shared state is
// the read-only compound registry owned by the caller.
package thermo

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// Physical constants.
const (
	// Faraday is the Faraday constant in C/mol.
	Faraday = 96485.0
	// GasConstant is R in J/(mol*K).
	GasConstant = 8.314
)

// DefaultLogRatioBound clamps gas-ratio outputs to +-50 decades so extremely
// stable or unstable compounds do not display physically meaningless values.
const DefaultLogRatioBound = 50.0

// Options tunes the evaluator's configured bounds.
type Options struct {
	// LogRatioBound clamps |log10(ratio)| outputs. Zero means the default.
	LogRatioBound float64

	// Feasibility band thresholds in kJ/mol reference gas. Zero values mean
	// the defaults (-50, 0, 50).
	HighlyFavorableBelow float64
	FavorableBelow       float64
	MarginalBelow        float64
}

// Evaluator exposes the thermodynamic operations. Zero-cost to copy; safe for
// concurrent use.
type Evaluator struct {
	opts Options
}

// New creates an evaluator, filling unset options with defaults.
func New(opts Options) *Evaluator {
	if opts.LogRatioBound == 0 {
		opts.LogRatioBound = DefaultLogRatioBound
	}
	if opts.HighlyFavorableBelow == 0 {
		opts.HighlyFavorableBelow = -50
	}
	// FavorableBelow default is 0, which is also its zero value.
	if opts.MarginalBelow == 0 {
		opts.MarginalBelow = 50
	}
	return &Evaluator{opts: opts}
}

// Equilibrium is the result of a standard free-energy evaluation.
type Equilibrium struct {
	// Value is dG at T in kJ per mole of reference gas.
	Value float64 `json:"value"`
	// Extrapolated flags evaluation outside the record's validated range.
	// The number is numerically valid but not scientifically validated.
	Extrapolated bool `json:"extrapolated,omitempty"`
}

// Equilibrium evaluates dG(T) = A + B*T + C*T*ln(T) + D*T*T for the record.
// T must be above 0 K; the record must carry a polynomial fit.
func (e *Evaluator) Equilibrium(rec *model.CompoundRecord, tempK float64) (Equilibrium, error) {
	if tempK <= 0 {
		return Equilibrium{}, eris.Wrapf(model.ErrInvalidTemperature, "T=%g K", tempK)
	}
	if !rec.HasCoefficients() {
		return Equilibrium{}, eris.Wrapf(model.ErrMissingCoefficients, "compound %q", rec.Name)
	}

	a, b, c, d := rec.Coefficients[0], rec.Coefficients[1], rec.Coefficients[2], rec.Coefficients[3]
	dg := a + b*tempK + c*tempK*math.Log(tempK) + d*tempK*tempK

	return Equilibrium{
		Value:        dg,
		Extrapolated: !rec.TempRange.Contains(tempK),
	}, nil
}

// OffEquilibrium breaks the field-adjusted free energy into its components.
// All energies are kJ per mole of reference gas.
type OffEquilibrium struct {
	Equilibrium   float64 `json:"equilibrium"`
	Electrostatic float64 `json:"electrostatic"`
	PhononWork    float64 `json:"phonon_work"`
	Effective     float64 `json:"effective"`
	Extrapolated  bool    `json:"extrapolated,omitempty"`
}

// OffEquilibrium evaluates dG_eff = dG(T) - n*F*E*r - W_ph with E in V/m and
// r in m. The electrostatic term n*F*E*r comes out in J/mol and is divided by
// 1000 before combining with dG and W_ph, which are both kJ/mol.
func (e *Evaluator) OffEquilibrium(rec *model.CompoundRecord, tempK, fieldVm, radiusM float64) (OffEquilibrium, error) {
	eq, err := e.Equilibrium(rec, tempK)
	if err != nil {
		return OffEquilibrium{}, err
	}

	electrostatic := -(float64(rec.Electrons) * Faraday * fieldVm * radiusM) / 1000

	return OffEquilibrium{
		Equilibrium:   eq.Value,
		Electrostatic: electrostatic,
		PhononWork:    rec.PhononWork,
		Effective:     eq.Value + electrostatic - rec.PhononWork,
		Extrapolated:  eq.Extrapolated,
	}, nil
}
