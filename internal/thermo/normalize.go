package thermo

import (
	"github.com/rotisserie/eris"

	"github.com/plasma-forge/ellingham-cli/internal/model"
)

// NormalizationMode selects the common basis used when compounds of mixed
// categories share one plot.
type NormalizationMode string

const (
	// NormalizeAutomatic keeps native per-reference-gas units when every
	// selected compound shares a category, and falls back to the per-metal
	// basis for mixed selections.
	NormalizeAutomatic NormalizationMode = "automatic"
	// NormalizePerMetal rescales each curve to kJ per mole of metal atom.
	NormalizePerMetal NormalizationMode = "perMetal"
	// NormalizePerReducingAgent rescales to kJ per mole of reducing species
	// consumed.
	NormalizePerReducingAgent NormalizationMode = "perReducingAgent"
)

// ParseNormalizationMode maps a request string onto the closed mode set.
func ParseNormalizationMode(s string) (NormalizationMode, error) {
	switch NormalizationMode(s) {
	case NormalizeAutomatic, NormalizePerMetal, NormalizePerReducingAgent:
		return NormalizationMode(s), nil
	}
	return "", eris.Errorf("unknown normalization mode %q", s)
}

// Scaling is the per-compound factor applied to a per-reference-gas curve,
// with the unit label of the rescaled axis.
type Scaling struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
	Unit   string  `json:"unit"`
}

// Normalize derives a scaling factor for each record so curves of mixed
// categories share a comparable y-axis basis. Factors come from each
// compound's stoichiometry; a formula outside the recognized grammar fails
// with UnparsableFormula and a category without a reference gas is rejected.
func (e *Evaluator) Normalize(records []*model.CompoundRecord, mode NormalizationMode) ([]Scaling, error) {
	if mode == NormalizeAutomatic {
		mode = NormalizePerMetal
		if len(records) > 0 && sameCategory(records) {
			// Native units already share a basis, provided the common
			// category has a reference gas at all; otherwise fall through to
			// the per-metal rejection below.
			if gas, ok := records[0].Category.Reference(); ok {
				out := make([]Scaling, len(records))
				for i, rec := range records {
					out[i] = Scaling{Name: rec.Name, Factor: 1, Unit: "kJ/mol " + gas.Symbol}
				}
				return out, nil
			}
		}
	}

	out := make([]Scaling, len(records))
	for i, rec := range records {
		gas, ok := rec.Category.Reference()
		if !ok {
			return nil, eris.Errorf("normalize: category %q of %q has no reference gas", rec.Category, rec.Name)
		}
		st, err := model.ParseFormula(rec.Formula)
		if err != nil {
			return nil, eris.Wrapf(err, "normalize: compound %q", rec.Name)
		}

		switch mode {
		case NormalizePerMetal:
			metals := st.MetalAtoms()
			refAtoms := st.CountOf(gas.Element)
			if metals == 0 || refAtoms == 0 {
				return nil, eris.Wrapf(model.ErrUnparsableFormula,
					"formula %q lacks a metal/%s pair", rec.Formula, gas.Element)
			}
			// Per mole of reference gas the formation reaction consumes
			// atomicity*metals/refAtoms moles of metal; dividing by that
			// count moves the axis to kJ/mol metal.
			out[i] = Scaling{
				Name:   rec.Name,
				Factor: float64(refAtoms) / (float64(gas.Atomicity) * float64(metals)),
				Unit:   "kJ/mol " + st.Metal(),
			}
		case NormalizePerReducingAgent:
			// Diatomic reference gases consume two moles of reducing species
			// (H2, CO) per mole of gas; monatomic carbon consumes one.
			out[i] = Scaling{
				Name:   rec.Name,
				Factor: 1 / float64(gas.Atomicity),
				Unit:   "kJ/mol reductant",
			}
		default:
			return nil, eris.Errorf("unknown normalization mode %q", mode)
		}
	}
	return out, nil
}

func sameCategory(records []*model.CompoundRecord) bool {
	for i := 1; i < len(records); i++ {
		if records[i].Category != records[0].Category {
			return false
		}
	}
	return true
}
