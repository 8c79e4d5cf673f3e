package factors

import (
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Organizational category names.
const (
	OrgStationaryCombustion = "stationary_combustion"
	OrgMobileCombustion     = "mobile_combustion"
	OrgRefrigerants         = "refrigerants"
	OrgMethane              = "methane"
	OrgElectricity          = "electricity"
	OrgThirdPartyEnergy     = "third_party_energy"
	OrgBusinessTravelAir    = "business_travel_air"
	OrgBusinessTravelGround = "business_travel_ground"
	OrgAccommodation        = "accommodation"
	OrgCommuting            = "commuting"
	OrgWaste                = "waste"
)

// OrgTable is the organizational emission factor fixture. No calculation
// consumes it yet; it is carried so an organizational calculator can be
// added without re-sourcing the coefficients.
type OrgTable struct {
	version              *semver.Version
	stationaryCombustion Lookup
	mobileCombustion     Lookup
	refrigerants         Lookup
	methane              float64
	electricity          float64
	thirdPartyEnergy     Lookup
	businessTravelAir    Lookup
	businessTravelGround Lookup
	accommodation        float64
	commuting            Lookup
	waste                Nested
}

//nolint:gochecknoglobals // Built once, read-only afterwards.
var (
	orgOnce  sync.Once
	orgTable *OrgTable
)

// Organization returns the built-in organizational factor table.
func Organization() *OrgTable {
	orgOnce.Do(func() {
		orgTable = buildOrganization()
	})
	return orgTable
}

//nolint:funlen // Data fixture.
func buildOrganization() *OrgTable {
	return &OrgTable{
		version: semver.MustParse(DefaultVersion),
		// Per m³ of natural gas, kg of LPG, litre of diesel and fuel oil,
		// tonne of coal. Biomass is treated as carbon neutral.
		stationaryCombustion: newLookup(map[string]float64{
			"gas-natural":      0.002016,
			"glp":              0.003,
			"diesel":           0.002671,
			"oleo-combustivel": 0.003179,
			"carvao-mineral":   2.42,
			"biomassa":         0,
			"outro":            0.002,
		}),
		mobileCombustion: newLookup(map[string]float64{
			"gasolina": 0.002256,
			"etanol":   0.001521,
			"diesel":   0.002671,
			"gnv":      0.001947,
			"eletrico": 0,
			"hibrido":  0.001128,
			"flex":     0.001888,
		}),
		// Per kg leaked.
		refrigerants: newLookup(map[string]float64{
			"r134a":  1.43,
			"r410a":  2.09,
			"r22":    1.81,
			"r404a":  3.92,
			"r407c":  1.77,
			"outros": 2.0,
		}),
		methane:     0.025,
		electricity: ElectricityGridIntensity,
		// Per GJ.
		thirdPartyEnergy: newLookup(map[string]float64{
			"vapor":         0.0002,
			"agua-quente":   0.0001,
			"agua-gelada":   0.00015,
			"ar-comprimido": 0.00005,
		}),
		businessTravelAir: newLookup(map[string]float64{
			ClassEconomy:  0.000133,
			ClassBusiness: 0.0002,
			ClassFirst:    0.000266,
		}),
		businessTravelGround: newLookup(map[string]float64{
			"rodoviario":    0.000089,
			"ferroviario":   0.000041,
			"carro-aluguel": 0.000184,
			"taxi-app":      0.000184,
		}),
		accommodation: 0.0296,
		commuting: newLookup(map[string]float64{
			"carro-particular":   0.000184,
			"transporte-publico": 0.000089,
			"carona":             0.000092,
			"bicicleta":          0,
			"caminhada":          0,
			"motocicleta":        0.000103,
			"outro":              0.0001,
		}),
		waste: newNested(map[string]Lookup{
			"organico": newLookup(map[string]float64{
				WasteLandfill:     0.001,
				WasteComposting:   -0.0001,
				WasteIncineration: 0.0005,
			}),
			"papel": newLookup(map[string]float64{
				WasteLandfill:     0.0015,
				WasteRecycling:    -0.0005,
				WasteIncineration: 0.0008,
			}),
			"plastico": newLookup(map[string]float64{
				WasteLandfill:     0.0005,
				WasteRecycling:    -0.0003,
				WasteIncineration: 0.002,
			}),
			"metal": newLookup(map[string]float64{
				WasteLandfill:     0.0001,
				WasteRecycling:    -0.001,
				WasteIncineration: 0.0002,
			}),
			"vidro": newLookup(map[string]float64{
				WasteLandfill:     0.0001,
				WasteRecycling:    -0.0002,
				WasteIncineration: 0.0001,
			}),
			"madeira": newLookup(map[string]float64{
				WasteLandfill:     0.0008,
				WasteRecycling:    -0.0001,
				WasteIncineration: 0.0006,
			}),
			"perigoso": newLookup(map[string]float64{
				WasteLandfill:     0.005,
				WasteIncineration: 0.003,
				WasteCoProcessing: 0.002,
			}),
			"eletronico": newLookup(map[string]float64{
				WasteLandfill:     0.002,
				WasteRecycling:    -0.0005,
				WasteIncineration: 0.001,
			}),
			"outro": newLookup(map[string]float64{
				WasteLandfill:     0.001,
				WasteRecycling:    -0.0002,
				WasteIncineration: 0.0005,
			}),
		}, ""),
	}
}

// Version returns the table version as a string.
func (o *OrgTable) Version() string { return o.version.String() }

// StationaryCombustion returns the factor for a stationary fuel.
func (o *OrgTable) StationaryCombustion(fuel string) float64 {
	return o.stationaryCombustion.Get(fuel)
}

// MobileCombustion returns the per-litre factor for a fleet fuel.
func (o *OrgTable) MobileCombustion(fuel string) float64 { return o.mobileCombustion.Get(fuel) }

// Refrigerant returns the per-kg leakage factor for a refrigerant gas.
func (o *OrgTable) Refrigerant(gas string) float64 { return o.refrigerants.Get(gas) }

// Methane returns the per-m³ methane factor.
func (o *OrgTable) Methane() float64 { return o.methane }

// Electricity returns the grid intensity per kWh.
func (o *OrgTable) Electricity() float64 { return o.electricity }

// ThirdPartyEnergy returns the per-GJ factor for purchased steam, hot or
// chilled water, or compressed air.
func (o *OrgTable) ThirdPartyEnergy(kind string) float64 { return o.thirdPartyEnergy.Get(kind) }

// BusinessAir returns the per-km factor for a business flight class.
func (o *OrgTable) BusinessAir(class string) float64 { return o.businessTravelAir.Get(class) }

// BusinessGround returns the per-km factor for a ground travel mode.
func (o *OrgTable) BusinessGround(mode string) float64 { return o.businessTravelGround.Get(mode) }

// Accommodation returns the per-night hotel factor.
func (o *OrgTable) Accommodation() float64 { return o.accommodation }

// Commuting returns the per-km factor for an employee commuting mode.
func (o *OrgTable) Commuting(mode string) float64 { return o.commuting.Get(mode) }

// Waste returns the per-kg factor for a material and disposal method.
// Unknown materials or methods yield 0.
func (o *OrgTable) Waste(material, method string) float64 { return o.waste.Get(material, method) }

// Entries returns every coefficient sorted by category, group, and key.
func (o *OrgTable) Entries() []Entry {
	var entries []Entry
	entries = appendLookup(entries, OrgStationaryCombustion, "", o.stationaryCombustion)
	entries = appendLookup(entries, OrgMobileCombustion, "", o.mobileCombustion)
	entries = appendLookup(entries, OrgRefrigerants, "", o.refrigerants)
	entries = append(entries,
		Entry{Category: OrgMethane, Value: o.methane},
		Entry{Category: OrgElectricity, Value: o.electricity},
		Entry{Category: OrgAccommodation, Value: o.accommodation},
	)
	entries = appendLookup(entries, OrgThirdPartyEnergy, "", o.thirdPartyEnergy)
	entries = appendLookup(entries, OrgBusinessTravelAir, "", o.businessTravelAir)
	entries = appendLookup(entries, OrgBusinessTravelGround, "", o.businessTravelGround)
	entries = appendLookup(entries, OrgCommuting, "", o.commuting)
	entries = appendNested(entries, OrgWaste, o.waste)
	sortEntries(entries)
	return entries
}
