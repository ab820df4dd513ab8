package thermo

// Feasibility is the qualitative reduction-feasibility band for an effective
// free energy.
type Feasibility string

const (
	HighlyFavorable Feasibility = "highly_favorable"
	Favorable       Feasibility = "favorable"
	Marginal        Feasibility = "marginal"
	Unfavorable     Feasibility = "unfavorable"
)

// Feasibility classifies an effective free energy (kJ per mole of reference
// gas) against the configured band thresholds.
func (e *Evaluator) Feasibility(dgEff float64) Feasibility {
	switch {
	case dgEff < e.opts.HighlyFavorableBelow:
		return HighlyFavorable
	case dgEff < e.opts.FavorableBelow:
		return Favorable
	case dgEff < e.opts.MarginalBelow:
		return Marginal
	default:
		return Unfavorable
	}
}
