package calculator

import (
	"fmt"
	"math"
	"sort"

	"github.com/eugenenazirov/homestead-calculator/internal/catalog"
)

const (
	daysPerYear = 365

	// Share of the full feed ration bought under each strategy.
	grazingFeedShare    = 0.1
	fiftyFiftyFeedShare = 0.5
)

type linearCalculator struct {
	catalog catalog.Catalog
}

// New creates a Calculator that scales catalog coefficients linearly by head count.
func New(c catalog.Catalog) Calculator {
	return &linearCalculator{catalog: c}
}

// Compute scales every known animal in counts and accumulates totals.
// Unknown identifiers are skipped. Animals are visited in identifier order so
// repeated calls produce identical floating point sums.
func (c *linearCalculator) Compute(counts map[string]float64) (Result, error) {
	res := Result{
		Animals:     make(map[string]AnimalResult, len(counts)),
		TotalYields: newYieldTotals(),
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var costs costAccumulator
	for _, id := range ids {
		profile, ok := c.catalog.Lookup(id)
		if !ok {
			continue
		}
		count := counts[id]
		if count < 0 || math.IsNaN(count) || math.IsInf(count, 0) {
			return Result{}, fmt.Errorf("%s: %w", id, ErrInvalidCount)
		}

		animal := scale(profile, count)
		if !animal.finite() {
			return Result{}, fmt.Errorf("%s x %g: %w", id, count, ErrOverflow)
		}
		res.Animals[id] = animal
		costs.add(animal)

		res.MinAcreage += profile.FeedAcres * count
		res.MaxAcreage += profile.GrazingAcres * count
		res.TotalWaterDaily += animal.WaterGallons

		if category, ok := Categorize(profile.YieldUnit); ok {
			res.TotalYields[category] += animal.YieldNumeric
		}
	}

	res.TotalWaterAnnual = res.TotalWaterDaily * daysPerYear
	res.TotalCosts = costs.totals()
	if !res.finite() {
		return Result{}, fmt.Errorf("totals: %w", ErrOverflow)
	}

	return res, nil
}

func (a AnimalResult) finite() bool {
	return allFinite(
		a.FullGrazing, a.FiftyFifty, a.FullFeeding,
		a.CostGrazing, a.CostFiftyFifty, a.CostFeeding,
		a.AnnualCostGrazing, a.AnnualCostFiftyFifty, a.AnnualCostFeeding,
		a.YieldNumeric, a.WaterGallons,
	)
}

func (r Result) finite() bool {
	c := r.TotalCosts
	if !allFinite(
		r.MinAcreage, r.MaxAcreage, r.TotalWaterDaily, r.TotalWaterAnnual,
		c.Grazing.Daily, c.Grazing.Annual,
		c.FiftyFifty.Daily, c.FiftyFifty.Annual,
		c.Feeding.Daily, c.Feeding.Annual,
	) {
		return false
	}
	for _, v := range r.TotalYields {
		if !allFinite(v) {
			return false
		}
	}
	return true
}

func allFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func scale(p catalog.Profile, count float64) AnimalResult {
	dailyCost := p.FeedCost * count
	grazingCost := dailyCost * grazingFeedShare
	fiftyFiftyCost := dailyCost * fiftyFiftyFeedShare

	return AnimalResult{
		FullGrazing: p.GrazingAcres * count,
		FiftyFifty:  (p.GrazingAcres + p.FeedAcres) / 2 * count,
		FullFeeding: p.FeedAcres * count,

		CostGrazing:    grazingCost,
		CostFiftyFifty: fiftyFiftyCost,
		CostFeeding:    dailyCost,

		AnnualCostGrazing:    grazingCost * daysPerYear,
		AnnualCostFiftyFifty: fiftyFiftyCost * daysPerYear,
		AnnualCostFeeding:    dailyCost * daysPerYear,

		Yield:        p.Yield,
		YieldNumeric: p.YieldNumeric * count,
		YieldUnit:    p.YieldUnit,
		WaterGallons: p.WaterGallons * count,
	}
}
