package thermo

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// CurvePoint is one sample of an Ellingham curve pair.
type CurvePoint struct {
	TempK        float64 `json:"temp_k"`
	DGEq         float64 `json:"dg_eq"`
	DGEff        float64 `json:"dg_eff"`
	Extrapolated bool    `json:"extrapolated,omitempty"`
}

// Curve samples the equilibrium and off-equilibrium free energies over the
// closed range [tr.Min, tr.Max] at the given step. The sequence is ordered by
// temperature, finite, and retains no evaluator state between calls.
func (e *Evaluator) Curve(rec *model.CompoundRecord, tr model.TempRange, stepK float64, p model.ProcessParameters) ([]CurvePoint, error) {
	if stepK <= 0 {
		return nil, eris.Errorf("curve: step must be positive, got %g", stepK)
	}
	if tr.Min >= tr.Max {
		return nil, eris.Errorf("curve: range requires min < max, got [%g, %g]", tr.Min, tr.Max)
	}

	// Indexed grid; accumulating t += stepK drifts for fractional steps and
	// can drop the tr.Max sample.
	n := int(math.Floor((tr.Max-tr.Min)/stepK+1e-9)) + 1
	points := make([]CurvePoint, 0, n)
	for i := 0; i < n; i++ {
		t := tr.Min + float64(i)*stepK
		off, err := e.OffEquilibrium(rec, t, p.Field, p.Radius)
		if err != nil {
			return nil, eris.Wrapf(err, "curve: compound %q at T=%g K", rec.Name, t)
		}
		points = append(points, CurvePoint{
			TempK:        t,
			DGEq:         off.Equilibrium,
			DGEff:        off.Effective,
			Extrapolated: off.Extrapolated,
		})
	}
	return points, nil
}

// Crossover locates the temperature where the off-equilibrium free energy
// changes sign inside the scan range, refining the bracketing pair by linear
// interpolation. found is false when the curve never crosses zero.
func (e *Evaluator) Crossover(rec *model.CompoundRecord, fieldVm, radiusM float64, tr model.TempRange) (tempK float64, found bool, err error) {
	const samples = 1000

	step := (tr.Max - tr.Min) / samples
	if step <= 0 {
		return 0, false, eris.Errorf("crossover: range requires min < max, got [%g, %g]", tr.Min, tr.Max)
	}

	prevT := tr.Min
	prev, err := e.OffEquilibrium(rec, prevT, fieldVm, radiusM)
	if err != nil {
		return 0, false, err
	}

	for i := 1; i <= samples; i++ {
		t := tr.Min + float64(i)*step
		cur, err := e.OffEquilibrium(rec, t, fieldVm, radiusM)
		if err != nil {
			return 0, false, err
		}
		if prev.Effective == 0 {
			return prevT, true, nil
		}
		if (prev.Effective < 0) != (cur.Effective < 0) {
			frac := -prev.Effective / (cur.Effective - prev.Effective)
			return prevT + frac*(t-prevT), true, nil
		}
		prevT, prev = t, cur
	}
	return 0, false, nil
}
