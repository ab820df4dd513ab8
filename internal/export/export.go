// Package export renders evaluated Ellingham curves to CSV and XLSX files.
package export

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/plasma-forge/ellingham-cli/internal/model"
	"github.com/plasma-forge/ellingham-cli/internal/thermo"
)

// Series is one compound's sampled curve plus the process parameters the
// samples were computed under.
type Series struct {
	Name    string
	Formula string
	Points  []thermo.CurvePoint
	FieldVm float64
	RadiusM float64
	Factor  float64
	Unit    string
}

// Request selects what to evaluate for an export. A non-empty Normalize mode
// rescales every series onto the requested common basis.
type Request struct {
	Records   []*model.CompoundRecord
	Range     model.TempRange
	StepK     float64
	Process   model.ProcessParameters
	Normalize thermo.NormalizationMode
}

// BuildSeries evaluates one curve per record, in parallel. Order of the
// result matches the order of the request.
func BuildSeries(ctx context.Context, ev *thermo.Evaluator, req Request) ([]Series, error) {
	series := make([]Series, len(req.Records))

	scalings := make([]thermo.Scaling, len(req.Records))
	for i, rec := range req.Records {
		scalings[i] = thermo.Scaling{Name: rec.Name, Factor: 1}
	}
	if req.Normalize != "" {
		var err error
		scalings, err = ev.Normalize(req.Records, req.Normalize)
		if err != nil {
			return nil, err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, rec := range req.Records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points, err := ev.Curve(rec, req.Range, req.StepK, req.Process)
			if err != nil {
				return err
			}
			if f := scalings[i].Factor; f != 1 {
				for j := range points {
					points[j].DGEq *= f
					points[j].DGEff *= f
				}
			}
			series[i] = Series{
				Name:    rec.Name,
				Formula: rec.Formula,
				Points:  points,
				FieldVm: req.Process.Field,
				RadiusM: req.Process.Radius,
				Factor:  scalings[i].Factor,
				Unit:    scalings[i].Unit,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}
