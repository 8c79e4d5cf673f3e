package greenops

import "math"

// EstimateOffset prices the neutralization of tonnes tCO2e at pricePerTonne.
// The reforestation quote is ReforestationShare of the total cost. A
// non-positive total yields a zero estimate.
func EstimateOffset(tonnes, pricePerTonne float64, currency string) (OffsetEstimate, error) {
	if pricePerTonne < 0 || math.IsNaN(pricePerTonne) || math.IsInf(pricePerTonne, 0) {
		return OffsetEstimate{}, ErrInvalidPrice
	}
	if math.IsNaN(tonnes) || math.IsInf(tonnes, 0) {
		return OffsetEstimate{}, ErrCalculationOverflow
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	est := OffsetEstimate{
		Tonnes:        math.Max(0, tonnes),
		PricePerTonne: pricePerTonne,
		Currency:      currency,
	}
	est.TotalCost = est.Tonnes * pricePerTonne
	est.Reforestation = est.TotalCost * ReforestationShare
	est.FormattedTotal = FormatCurrency(est.TotalCost, currency)
	return est, nil
}
