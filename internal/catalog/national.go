package catalog

// nationalAverages lists per-head figures for the United States. Daily milk
// yields are converted to gallons per year.
var nationalAverages = map[string]Profile{
	"chicken": {
		GrazingAcres: 0.0002,
		FeedAcres:    0.0001,
		FeedCost:     0.25,
		Yield:        "275 eggs/year",
		YieldNumeric: 275,
		YieldUnit:    "eggs/year",
		WaterGallons: 0.05,
	},
	"duck": {
		GrazingAcres: 0.0005,
		FeedAcres:    0.0003,
		FeedCost:     0.35,
		Yield:        "200 eggs/year",
		YieldNumeric: 200,
		YieldUnit:    "eggs/year",
		WaterGallons: 0.2,
	},
	"goat_meat": {
		GrazingAcres: 0.5,
		FeedAcres:    0.2,
		FeedCost:     3.5,
		Yield:        "60 lbs meat/year",
		YieldNumeric: 60,
		YieldUnit:    "lbs meat/year",
		WaterGallons: 3,
	},
	"goat_dairy": {
		GrazingAcres: 0.4,
		FeedAcres:    0.25,
		FeedCost:     4.0,
		Yield:        "0.75 gal milk/day",
		YieldNumeric: 274, // 0.75 gal/day
		YieldUnit:    "gallons milk/year",
		WaterGallons: 3,
	},
	"sheep": {
		GrazingAcres: 0.2,
		FeedAcres:    0.1,
		FeedCost:     3.0,
		Yield:        "6 lbs wool/year",
		YieldNumeric: 6,
		YieldUnit:    "lbs wool/year",
		WaterGallons: 2,
	},
	"cow_beef": {
		GrazingAcres: 2,
		FeedAcres:    0.8,
		FeedCost:     30,
		Yield:        "550 lbs meat",
		YieldNumeric: 550,
		YieldUnit:    "lbs meat",
		WaterGallons: 12,
	},
	"cow_dairy": {
		GrazingAcres: 2,
		FeedAcres:    0.9,
		FeedCost:     35,
		Yield:        "6 gal milk/day",
		YieldNumeric: 2190, // 6 gal/day
		YieldUnit:    "gallons milk/year",
		WaterGallons: 15,
	},
	"cow_mini": {
		GrazingAcres: 0.8,
		FeedAcres:    0.4,
		FeedCost:     15,
		Yield:        "2.5 gal milk/day",
		YieldNumeric: 912, // 2.5 gal/day
		YieldUnit:    "gallons milk/year",
		WaterGallons: 8,
	},
	"pig": {
		GrazingAcres: 0.3,
		FeedAcres:    0.15,
		FeedCost:     7,
		Yield:        "200 lbs meat",
		YieldNumeric: 200,
		YieldUnit:    "lbs meat",
		WaterGallons: 5,
	},
	"rabbit": {
		GrazingAcres: 0.001,
		FeedAcres:    0.0005,
		FeedCost:     0.5,
		Yield:        "20 lbs meat/year",
		YieldNumeric: 20,
		YieldUnit:    "lbs meat/year",
		WaterGallons: 0.1,
	},
	"alpaca": {
		GrazingAcres: 0.5,
		FeedAcres:    0.2,
		FeedCost:     3.0,
		Yield:        "5 lbs fiber/year",
		YieldNumeric: 5,
		YieldUnit:    "lbs fiber/year",
		WaterGallons: 2,
	},
}
