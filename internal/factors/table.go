// Package factors holds the emission factor tables used by the calculator.
//
// Every coefficient is expressed in tonnes of CO2 equivalent (tCO2e) per unit
// of activity. Negative coefficients are credits: recycling and composting
// reduce net emissions.
//
// Tables are frozen after construction. The built-in individual table is
// returned by Default and the organizational fixture by Organization; Load
// derives a new frozen table from an override file.
package factors

import (
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is the version of the built-in factor tables.
const DefaultVersion = "1.0.0"

// Flat coefficients of the built-in individual table.
const (
	// ElectricityGridIntensity is the Brazilian grid intensity in tCO2e/kWh.
	ElectricityGridIntensity = 0.000075

	// WaterFactor is tCO2e per m³ of treated water.
	WaterFactor = 0.000344

	// PublicTransportFactor is tCO2e per passenger-km on public transport.
	PublicTransportFactor = 0.000089
)

// Table is the individual-profile emission factor table.
type Table struct {
	version         *semver.Version
	fuel            Lookup
	electricity     float64
	gas             Lookup
	water           float64
	publicTransport float64
	aviation        Nested
	waste           Lookup
	diet            Lookup
	meatFrequency   Lookup
	goods           Lookup
}

// Entry is a single coefficient, flattened for display.
// Group is empty for one-level categories and Key is empty for flat ones.
type Entry struct {
	Category string  `json:"category" yaml:"category"`
	Group    string  `json:"group,omitempty" yaml:"group,omitempty"`
	Key      string  `json:"key,omitempty" yaml:"key,omitempty"`
	Value    float64 `json:"value" yaml:"value"`
}

//nolint:gochecknoglobals // Built once, read-only afterwards.
var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in individual factor table. The table is built
// on first use and shared by every caller; it has no mutating methods.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = buildDefault()
	})
	return defaultTable
}

func buildDefault() *Table {
	return &Table{
		version: semver.MustParse(DefaultVersion),
		fuel: newLookup(map[string]float64{
			FuelGasoline:        0.002256,
			FuelPremiumGasoline: 0.002256,
			FuelEthanol:         0.001521,
			FuelDiesel:          0.002671,
			FuelNaturalGas:      0.001947,
			FuelElectric:        0,
			FuelHybrid:          0.001128,
		}),
		electricity: ElectricityGridIntensity,
		gas: newLookup(map[string]float64{
			GasNatural:  0.002016,
			GasCylinder: 0.039,
			GasPiped:    0.003,
		}),
		water:           WaterFactor,
		publicTransport: PublicTransportFactor,
		aviation: newNested(map[string]Lookup{
			AviationDomestic: newLookupWithFallbackKey(map[string]float64{
				ClassEconomy:  0.000133,
				ClassBusiness: 0.0002,
				ClassFirst:    0.000266,
			}, ClassEconomy),
			AviationInternational: newLookupWithFallbackKey(map[string]float64{
				ClassEconomy:  0.000151,
				ClassBusiness: 0.000227,
				ClassFirst:    0.000302,
			}, ClassEconomy),
		}, AviationDomestic),
		waste: newLookup(map[string]float64{
			WasteLandfill:     0.001,
			WasteIncineration: 0.0005,
			WasteOpenDump:     0.0015,
			WasteRecycling:    -0.0002,
			WasteComposting:   -0.0001,
		}),
		diet: newLookupWithFallbackKey(map[string]float64{
			DietVegan:       1.5,
			DietVegetarian:  1.7,
			DietPescatarian: 2.3,
			DietFlexitarian: 3.2,
			DietOmnivore:    3.8,
		}, DietOmnivore),
		meatFrequency: Lookup{
			values: map[string]float64{
				FrequencyRarely:      0.2,
				FrequencyMonthly:     0.5,
				FrequencyOnceTwice:   1.0,
				FrequencyThreeToFive: 1.5,
				FrequencyDaily:       2.0,
			},
			fallback: 1,
		},
		goods: newLookup(map[string]float64{
			GoodsElectronics: 0.5,
			GoodsClothing:    0.8,
			GoodsTravel:      0.3,
			GoodsFurniture:   0.4,
			GoodsAppliances:  0.6,
			GoodsFinancial:   0.1,
			GoodsOther:       0.3,
		}),
	}
}

// Version returns the table version as a string.
func (t *Table) Version() string {
	return t.version.String()
}

// Fuel returns the factor for a vehicle fuel. Unknown fuels yield 0.
func (t *Table) Fuel(fuel string) float64 { return t.fuel.Get(fuel) }

// Electricity returns the baseline grid intensity per kWh.
func (t *Table) Electricity() float64 { return t.electricity }

// Gas returns the factor for a gas type. Unknown types yield 0.
func (t *Table) Gas(kind string) float64 { return t.gas.Get(kind) }

// Water returns the factor per m³ of water.
func (t *Table) Water() float64 { return t.water }

// PublicTransport returns the flat per-km public transport factor.
func (t *Table) PublicTransport() float64 { return t.publicTransport }

// Aviation returns the per-km factor for a flight scope and travel class.
// Unknown classes fall back to economy within the scope; unknown scopes
// fall back to domestic.
func (t *Table) Aviation(scope, class string) float64 { return t.aviation.Get(scope, class) }

// Waste returns the factor for a disposal method or credit. Unknown methods yield 0.
func (t *Table) Waste(method string) float64 { return t.waste.Get(method) }

// Diet returns the annual factor for a diet type. Unknown diets fall back to omnivore.
func (t *Table) Diet(diet string) float64 { return t.diet.Get(diet) }

// MeatMultiplier returns the red-meat frequency multiplier. Unknown
// frequencies yield 1.
func (t *Table) MeatMultiplier(frequency string) float64 { return t.meatFrequency.Get(frequency) }

// Goods returns the factor per R$ 1000 for a goods category. Unknown categories yield 0.
func (t *Table) Goods(category string) float64 { return t.goods.Get(category) }

// Known reports whether key exists in the given one-level category.
// It lets callers note when a fallback was applied without changing the result.
func (t *Table) Known(category, key string) bool {
	switch category {
	case CategoryFuel:
		return t.fuel.Has(key)
	case CategoryGas:
		return t.gas.Has(key)
	case CategoryWaste:
		return t.waste.Has(key)
	case CategoryDiet:
		return t.diet.Has(key)
	case CategoryMeatFrequency:
		return t.meatFrequency.Has(key)
	case CategoryGoods:
		return t.goods.Has(key)
	default:
		return false
	}
}

// KnownAviation reports whether the scope and class both exist.
func (t *Table) KnownAviation(scope, class string) bool {
	g, ok := t.aviation.groups[scope]
	return ok && g.Has(class)
}

// Entries returns every coefficient sorted by category, group, and key.
func (t *Table) Entries() []Entry {
	var entries []Entry
	entries = appendLookup(entries, CategoryFuel, "", t.fuel)
	entries = append(entries, Entry{Category: CategoryElectricity, Value: t.electricity})
	entries = appendLookup(entries, CategoryGas, "", t.gas)
	entries = append(entries, Entry{Category: CategoryWater, Value: t.water})
	entries = append(entries, Entry{Category: CategoryPublicTransport, Value: t.publicTransport})
	entries = appendNested(entries, CategoryAviation, t.aviation)
	entries = appendLookup(entries, CategoryWaste, "", t.waste)
	entries = appendLookup(entries, CategoryDiet, "", t.diet)
	entries = appendLookup(entries, CategoryMeatFrequency, "", t.meatFrequency)
	entries = appendLookup(entries, CategoryGoods, "", t.goods)
	sortEntries(entries)
	return entries
}

func appendLookup(entries []Entry, category, group string, l Lookup) []Entry {
	for _, k := range l.Keys() {
		entries = append(entries, Entry{Category: category, Group: group, Key: k, Value: l.values[k]})
	}
	return entries
}

func appendNested(entries []Entry, category string, n Nested) []Entry {
	for _, g := range n.Groups() {
		entries = appendLookup(entries, category, g, n.groups[g])
	}
	return entries
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Key < b.Key
	})
}
