package calculator

// Category groups annual yields by product.
type Category string

const (
	CategoryEggs  Category = "eggs"
	CategoryMilk  Category = "milk"
	CategoryMeat  Category = "meat"
	CategoryWool  Category = "wool"
	CategoryFiber Category = "fiber"
)

// AnimalResult holds land, cost, yield and water figures for one animal
// scaled by the requested head count.
type AnimalResult struct {
	FullGrazing float64 `json:"full_grazing"`
	FiftyFifty  float64 `json:"fifty_fifty"`
	FullFeeding float64 `json:"full_feeding"`

	CostGrazing    float64 `json:"cost_grazing"`
	CostFiftyFifty float64 `json:"cost_fifty_fifty"`
	CostFeeding    float64 `json:"cost_feeding"`

	AnnualCostGrazing    float64 `json:"annual_cost_grazing"`
	AnnualCostFiftyFifty float64 `json:"annual_cost_fifty_fifty"`
	AnnualCostFeeding    float64 `json:"annual_cost_feeding"`

	Yield        string  `json:"yield"`
	YieldNumeric float64 `json:"yield_numeric"`
	YieldUnit    string  `json:"yield_unit"`
	WaterGallons float64 `json:"water_gallons"`
}

// StrategyCost is the feed spend for one feeding strategy.
type StrategyCost struct {
	Daily  float64 `json:"daily"`
	Annual float64 `json:"annual"`
}

// CostTotals sums feed spend across all animals for each strategy.
type CostTotals struct {
	Grazing    StrategyCost `json:"grazing"`
	FiftyFifty StrategyCost `json:"fifty_fifty"`
	Feeding    StrategyCost `json:"feeding"`
}

// Result is the outcome of a single calculation. MinAcreage assumes every
// animal is fully fed, MaxAcreage assumes every animal fully grazes.
type Result struct {
	Animals          map[string]AnimalResult
	MinAcreage       float64
	MaxAcreage       float64
	TotalWaterDaily  float64
	TotalWaterAnnual float64
	TotalYields      map[Category]float64
	TotalCosts       CostTotals
}

// Calculator describes the behaviour required from a resource calculator.
type Calculator interface {
	Compute(counts map[string]float64) (Result, error)
}
