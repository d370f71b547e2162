package model

import "math"

// ElementScore accumulates weight per element. Totals are additive tallies,
// never normalized to 1.
type ElementScore map[Element]float64

// NewElementScore returns a tally with every element present at zero.
func NewElementScore() ElementScore {
	s := make(ElementScore, len(AllElements))
	for _, e := range AllElements {
		s[e] = 0
	}
	return s
}

// Add accumulates weight for an element.
func (s ElementScore) Add(e Element, weight float64) {
	s[e] += weight
}

// Total returns the sum of all tallies.
func (s ElementScore) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Share returns an element's fraction of the total, or 0 when the tally is
// empty so that a zero total can never produce NaN.
func (s ElementScore) Share(e Element) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return s[e] / total
}

// Dominant returns the highest-scoring element. Ties break toward the
// earlier element in canonical order so the result is deterministic.
func (s ElementScore) Dominant() Element {
	best := Wood
	bestScore := math.Inf(-1)
	for _, e := range AllElements {
		if s[e] > bestScore {
			best = e
			bestScore = s[e]
		}
	}
	return best
}

// SecondDominant returns the second-highest-scoring element.
func (s ElementScore) SecondDominant() Element {
	first := s.Dominant()
	best := Wood
	bestScore := math.Inf(-1)
	for _, e := range AllElements {
		if e == first {
			continue
		}
		if s[e] > bestScore {
			best = e
			bestScore = s[e]
		}
	}
	return best
}

// Weakest returns the lowest-scoring element, ties breaking toward the
// earlier element in canonical order.
func (s ElementScore) Weakest() Element {
	best := Wood
	bestScore := math.Inf(1)
	for _, e := range AllElements {
		if s[e] < bestScore {
			best = e
			bestScore = s[e]
		}
	}
	return best
}

// PolarityScore accumulates weight per polarity.
type PolarityScore map[Polarity]float64

// NewPolarityScore returns a tally with both polarities at zero.
func NewPolarityScore() PolarityScore {
	return PolarityScore{Yang: 0, Yin: 0}
}

// Add accumulates weight for a polarity.
func (s PolarityScore) Add(p Polarity, weight float64) {
	s[p] += weight
}

// TenGodScore accumulates weight per ten god.
type TenGodScore map[TenGod]float64

// NewTenGodScore returns a tally with every ten god at zero.
func NewTenGodScore() TenGodScore {
	s := make(TenGodScore, len(AllTenGods))
	for _, t := range AllTenGods {
		s[t] = 0
	}
	return s
}

// Add accumulates weight for a ten god.
func (s TenGodScore) Add(t TenGod, weight float64) {
	s[t] += weight
}

// ClassTotals folds the tally into the five ten-god classes.
func (s TenGodScore) ClassTotals() map[TenGodClass]float64 {
	totals := make(map[TenGodClass]float64, 5)
	for t, v := range s {
		totals[t.Class()] += v
	}
	return totals
}

// Dominant returns the highest-scoring ten god, ties breaking toward the
// earlier god in canonical order.
func (s TenGodScore) Dominant() TenGod {
	best := BiGyeon
	bestScore := math.Inf(-1)
	for _, t := range AllTenGods {
		if s[t] > bestScore {
			best = t
			bestScore = s[t]
		}
	}
	return best
}
