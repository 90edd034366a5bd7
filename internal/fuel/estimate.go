// Package fuel turns tracked distance into fuel consumption and cost, and
// provides the petrol price source with an explicit TTL cache.
package fuel

// Usage is the fuel consumption derived from a trip distance.
type Usage struct {
	Liters float64 `json:"fuel_used_liters"`
	Cost   float64 `json:"fuel_cost"`
}

// Estimate returns the liters burned and their cost for distanceKm driven
// at consumptionPer100 (L/100km) with pricePerLiter.
// Pure and total; non-negative inputs yield non-negative outputs.
// Input range checks (e.g. the 3–20 L/100km UI slider) belong to the caller.
func Estimate(distanceKm, consumptionPer100, pricePerLiter float64) Usage {
	liters := distanceKm / 100 * consumptionPer100
	return Usage{
		Liters: liters,
		Cost:   liters * pricePerLiter,
	}
}
