// Package model defines the compound data model shared by the registry,
// evaluator, stores and surfaces.
package model

import "time"

// Category classifies a compound by the compound-forming species.
type Category string

const (
	CategoryOxide     Category = "oxide"
	CategoryNitride   Category = "nitride"
	CategoryCarbide   Category = "carbide"
	CategoryHalide    Category = "halide"
	CategoryHydride   Category = "hydride"
	CategorySulfide   Category = "sulfide"
	CategoryPhosphide Category = "phosphide"
	CategoryElement   Category = "element"
	CategoryOther     Category = "other"
)

// Categories lists every valid category tag.
var Categories = []Category{
	CategoryOxide, CategoryNitride, CategoryCarbide, CategoryHalide,
	CategoryHydride, CategorySulfide, CategoryPhosphide, CategoryElement,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ReferenceGas is the species per mole of which a compound's free energy is
// normalized.
type ReferenceGas struct {
	Symbol    string // display symbol, e.g. "O2"
	Element   string // the compound-forming element, e.g. "O"
	Atomicity int    // atoms per molecule of the reference species
}

var referenceGases = map[Category]ReferenceGas{
	CategoryOxide:     {Symbol: "O2", Element: "O", Atomicity: 2},
	CategoryNitride:   {Symbol: "N2", Element: "N", Atomicity: 2},
	CategoryCarbide:   {Symbol: "C", Element: "C", Atomicity: 1},
	CategoryHalide:    {Symbol: "Cl2", Element: "Cl", Atomicity: 2},
	CategoryHydride:   {Symbol: "H2", Element: "H", Atomicity: 2},
	CategorySulfide:   {Symbol: "S2", Element: "S", Atomicity: 2},
	CategoryPhosphide: {Symbol: "P2", Element: "P", Atomicity: 2},
}

// Reference returns the reference gas for the category. Pure elements and the
// catch-all category have no reference gas; ok is false for those.
func (c Category) Reference() (ReferenceGas, bool) {
	g, ok := referenceGases[c]
	return g, ok
}

// TempRange is a closed temperature interval in kelvin. Evaluation outside
// the range extrapolates the polynomial and is flagged, not rejected.
type TempRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether t lies inside the closed interval.
func (r TempRange) Contains(t float64) bool {
	return t >= r.Min && t <= r.Max
}

// Coefficients holds the JANAF-fit polynomial (A, B, C, D) defining
//
//	dG(T) = A + B*T + C*T*ln(T) + D*T*T
//
// in kJ per mole of reference gas.
type Coefficients [4]float64

// Zero reports whether no fit is present. Records with a zero fit are
// excluded from temperature-dependent evaluation, never defaulted.
func (c Coefficients) Zero() bool {
	return c == Coefficients{}
}

// CompoundRecord is one entry of the compound registry. Records are immutable
// after validation.
type CompoundRecord struct {
	Name         string       `json:"name" yaml:"name"`
	Formula      string       `json:"formula" yaml:"formula"`
	Element      string       `json:"element" yaml:"element"`
	Category     Category     `json:"category" yaml:"category"`
	Coefficients Coefficients `json:"coefficients" yaml:"coefficients"`
	TempRange    TempRange    `json:"temp_range" yaml:"temp_range"`

	// Electrons is the stoichiometric electron count n per mole of reference
	// gas; PhononWork is the material constant W_ph in kJ per mole of
	// reference gas.
	Electrons  int     `json:"electrons" yaml:"electrons"`
	PhononWork float64 `json:"phonon_work" yaml:"phonon_work"`

	// Carried for display and export only.
	MolarMass float64 `json:"molar_mass,omitempty" yaml:"molar_mass,omitempty"`
	Density   float64 `json:"density,omitempty" yaml:"density,omitempty"`
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
	Notes     string  `json:"notes,omitempty" yaml:"notes,omitempty"`

	Custom    bool      `json:"custom,omitempty" yaml:"custom,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// HasCoefficients reports whether the record carries a polynomial fit and may
// participate in temperature-dependent plotting.
func (r *CompoundRecord) HasCoefficients() bool {
	return !r.Coefficients.Zero()
}

// Validate checks every registration invariant and returns a ValidationError
// listing all violations, or nil.
func (r *CompoundRecord) Validate() error {
	verr := &ValidationError{Name: r.Name}

	if r.Name == "" {
		verr.Add("name", "required")
	}
	if r.Formula == "" {
		verr.Add("formula", "required")
	} else if _, err := ParseFormula(r.Formula); err != nil {
		verr.Add("formula", "does not match chemical-formula grammar: %s", r.Formula)
	}
	if !r.Category.Valid() {
		verr.Add("category", "unknown category %q", r.Category)
	}
	if !r.HasCoefficients() {
		verr.Add("coefficients", "polynomial fit is required")
	}
	if r.TempRange.Min >= r.TempRange.Max {
		verr.Add("temp_range", "requires min < max, got [%g, %g]", r.TempRange.Min, r.TempRange.Max)
	}
	if r.TempRange.Min <= 0 {
		verr.Add("temp_range", "min must be above 0 K, got %g", r.TempRange.Min)
	}
	if r.Electrons <= 0 {
		verr.Add("electrons", "must be positive, got %d", r.Electrons)
	}
	if r.MolarMass < 0 {
		verr.Add("molar_mass", "must not be negative, got %g", r.MolarMass)
	}
	if r.Density < 0 {
		verr.Add("density", "must not be negative, got %g", r.Density)
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

// Summary is the read-only listing shape consumed by selection controls.
type Summary struct {
	Name     string   `json:"name"`
	Formula  string   `json:"formula"`
	Element  string   `json:"element"`
	Category Category `json:"category"`
	Source   string   `json:"source,omitempty"`
	Custom   bool     `json:"custom,omitempty"`
}

// Summary returns the listing shape for the record.
func (r *CompoundRecord) Summary() Summary {
	return Summary{
		Name:     r.Name,
		Formula:  r.Formula,
		Element:  r.Element,
		Category: r.Category,
		Source:   r.Source,
		Custom:   r.Custom,
	}
}
