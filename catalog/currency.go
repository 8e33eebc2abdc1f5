package catalog

import "math"

// Conversion rates to INR. Unknown source currencies are treated as USD;
// unknown targets as INR.
var ratesToINR = map[string]float64{
	"usd": 83.5, "eur": 91.0, "gbp": 106.0, "jpy": 0.56,
	"thb": 2.4, "sgd": 62.0, "aed": 22.7, "aud": 54.0,
	"cad": 61.0, "myr": 18.5, "idr": 0.0054, "krw": 0.063,
	"lkr": 0.26, "npr": 0.52, "inr": 1.0,
}

// ConvertCurrency converts an amount between two currency codes using the
// fixed rate table, rounded to two decimals.
func (c *Catalog) ConvertCurrency(amount float64, from, to string) float64 {
	fromRate, ok := ratesToINR[cityKey(from)]
	if !ok {
		fromRate = 83.5
	}
	toRate, ok := ratesToINR[cityKey(to)]
	if !ok {
		toRate = 1.0
	}
	return math.Round(amount*fromRate/toRate*100) / 100
}
