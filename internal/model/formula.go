package model

import (
	"github.com/rotisserie/eris"
)

// nonMetals are the compound-forming elements that never count as the metal
// basis when normalizing curves.
var nonMetals = map[string]bool{
	"O": true, "N": true, "C": true, "H": true, "S": true, "P": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

// Stoichiometry is the element composition recovered from a chemical formula.
type Stoichiometry struct {
	// Counts maps element symbol to its subscript (1 when omitted), in
	// formula order via Order.
	Counts map[string]int
	Order  []string
}

// MetalAtoms returns the total count of metal atoms in the formula.
func (s Stoichiometry) MetalAtoms() int {
	n := 0
	for sym, c := range s.Counts {
		if !nonMetals[sym] {
			n += c
		}
	}
	return n
}

// Metal returns the first metal element symbol in formula order, or "".
func (s Stoichiometry) Metal() string {
	for _, sym := range s.Order {
		if !nonMetals[sym] {
			return sym
		}
	}
	return ""
}

// CountOf returns the subscript of the given element symbol, 0 if absent.
func (s Stoichiometry) CountOf(symbol string) int {
	return s.Counts[symbol]
}

// ParseFormula extracts element counts from standard chemical notation:
// element symbols (one capital letter, optional lowercase letter) each
// followed by an optional integer subscript, e.g. "TiO2", "Al2O3", "NbO".
// Anything outside that grammar fails with ErrUnparsableFormula.
func ParseFormula(formula string) (Stoichiometry, error) {
	st := Stoichiometry{Counts: make(map[string]int)}
	if formula == "" {
		return st, eris.Wrapf(ErrUnparsableFormula, "empty formula")
	}

	i := 0
	for i < len(formula) {
		c := formula[i]
		if c < 'A' || c > 'Z' {
			return st, eris.Wrapf(ErrUnparsableFormula, "unexpected %q at position %d in %q", c, i, formula)
		}
		sym := string(c)
		i++
		if i < len(formula) && formula[i] >= 'a' && formula[i] <= 'z' {
			sym += string(formula[i])
			i++
		}

		count := 0
		for i < len(formula) && formula[i] >= '0' && formula[i] <= '9' {
			count = count*10 + int(formula[i]-'0')
			i++
		}
		if count == 0 {
			count = 1
		}

		if _, seen := st.Counts[sym]; !seen {
			st.Order = append(st.Order, sym)
		}
		st.Counts[sym] += count
	}

	return st, nil
}
