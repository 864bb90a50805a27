package calculator

import "github.com/shopspring/decimal"

type strategyTotal struct {
	daily  decimal.Decimal
	annual decimal.Decimal
}

func (s *strategyTotal) add(daily, annual float64) {
	s.daily = s.daily.Add(decimal.NewFromFloat(daily))
	s.annual = s.annual.Add(decimal.NewFromFloat(annual))
}

func (s strategyTotal) cost() StrategyCost {
	return StrategyCost{
		Daily:  s.daily.InexactFloat64(),
		Annual: s.annual.InexactFloat64(),
	}
}

// costAccumulator sums per-animal spend in decimal.
type costAccumulator struct {
	grazing    strategyTotal
	fiftyFifty strategyTotal
	feeding    strategyTotal
}

func (a *costAccumulator) add(r AnimalResult) {
	a.grazing.add(r.CostGrazing, r.AnnualCostGrazing)
	a.fiftyFifty.add(r.CostFiftyFifty, r.AnnualCostFiftyFifty)
	a.feeding.add(r.CostFeeding, r.AnnualCostFeeding)
}

func (a *costAccumulator) totals() CostTotals {
	return CostTotals{
		Grazing:    a.grazing.cost(),
		FiftyFifty: a.fiftyFifty.cost(),
		Feeding:    a.feeding.cost(),
	}
}
