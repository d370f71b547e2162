// Package scoring combines stem and hidden-stem contributions into
// element, polarity and ten-god tallies for a whole chart.
package scoring

import (
	"github.com/haesol/sajukit/internal/ganji"
	"github.com/haesol/sajukit/internal/model"
)

// Options are the per-source weights of the aggregator.
type Options struct {
	StemWeight   float64
	BranchWeight float64
	// IncludeBranchYinYang also tallies each branch's own polarity.
	IncludeBranchYinYang bool
	Scheme               ganji.WeightScheme
}

// Scores are the accumulated tallies for a chart. They are additive
// weights, not probabilities.
type Scores struct {
	Elements   model.ElementScore
	Polarities model.PolarityScore
	TenGods    model.TenGodScore
}

// Aggregator tallies a chart's element, polarity and ten-god weights.
type Aggregator struct {
	table *ganji.HiddenStemTable
}

// NewAggregator creates an aggregator over a hidden-stem table.
func NewAggregator(table *ganji.HiddenStemTable) *Aggregator {
	return &Aggregator{table: table}
}

// Aggregate computes the chart tallies. Each visible stem contributes the
// stem weight to its element, polarity, and ten god of the day master; each
// branch expands to its hidden stems, which contribute branch weight ×
// hidden weight to the same three tallies. The result is a deterministic
// function of the chart and options; summation order does not matter within
// floating-point tolerance.
func (a *Aggregator) Aggregate(ps model.PillarSet, opts Options) Scores {
	ps = ps.Normalize()
	dayMaster := ps.DayMaster()

	scores := Scores{
		Elements:   model.NewElementScore(),
		Polarities: model.NewPolarityScore(),
		TenGods:    model.NewTenGodScore(),
	}

	for _, stem := range ps.Stems() {
		scores.Elements.Add(stem.Element(), opts.StemWeight)
		scores.Polarities.Add(stem.Polarity(), opts.StemWeight)
		scores.TenGods.Add(model.TenGodOf(dayMaster, stem), opts.StemWeight)
	}

	for _, branch := range ps.Branches() {
		for _, hidden := range a.table.Weighted(branch, opts.Scheme) {
			w := opts.BranchWeight * hidden.Weight
			scores.Elements.Add(hidden.Stem.Element(), w)
			scores.Polarities.Add(hidden.Stem.Polarity(), w)
			scores.TenGods.Add(model.TenGodOf(dayMaster, hidden.Stem), w)
		}
		if opts.IncludeBranchYinYang {
			scores.Polarities.Add(branch.Polarity(), opts.BranchWeight)
		}
	}

	return scores
}
