package greenops

// Equivalency factors. Car distance is a multiplier on tonnes; the others
// are divisors on kilograms:
//
//	km = t_CO2e * CarKmPerTonne
//	equivalency = kg_CO2e / factor
const (
	// CarKmPerTonne is kilometers driven by an average car per tonne CO2e.
	CarKmPerTonne = 2174.0

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling over 10 years.
	EPATreeSeedlingFactor = 60.0
)

// Unit Conversion Constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" format.
	BillionThreshold = 1_000_000_000
)

// Offsetting defaults.
const (
	// DefaultPricePerTonne is the average carbon credit price in DefaultCurrency.
	DefaultPricePerTonne = 50.0

	// DefaultCurrency is the ISO 4217 code of DefaultPricePerTonne.
	DefaultCurrency = "BRL"

	// ReforestationShare is the reforestation project quote as a share of the
	// full offset cost.
	ReforestationShare = 0.8
)
