package calculator

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/factors"
)

const delta = 1e-9

func TestCalculateEmptyRecordIsDietOnly(t *testing.T) {
	r := Calculate(activity.Record{}, nil)

	assert.InDelta(t, 3.8, r.Diet, delta, "unset diet falls back to omnivore")
	assert.Equal(t, r.Diet, r.Total)
	assert.Zero(t, r.Transport)
	assert.Zero(t, r.Residential)
	assert.Zero(t, r.Waste)
	assert.Zero(t, r.GoodsServices)
	assert.Equal(t, map[string]float64{ItemDiet: r.Diet}, r.Breakdown)
	assert.Equal(t, factors.DefaultVersion, r.FactorVersion)
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name     string
		record   activity.Record
		item     string
		want     float64
		category Category
	}{
		{
			name: "diesel vehicle",
			record: activity.Record{
				Residents: 1,
				Vehicle:   activity.Vehicle{Owns: true, Fuel: factors.FuelDiesel, MonthlyVolume: 40},
			},
			item:     ItemVehicle,
			want:     40 * 0.002671 / 6,
			category: CategoryTransport,
		},
		{
			name:     "grid electricity",
			record:   activity.Record{Electricity: activity.Electricity{MonthlyConsumption: 300, Source: "rede"}},
			item:     ItemElectricity,
			want:     0.216,
			category: CategoryResidential,
		},
		{
			name: "solar electricity",
			record: activity.Record{Electricity: activity.Electricity{
				MonthlyConsumption: 300, Source: factors.SourceSolarPanels,
			}},
			item:     ItemElectricity,
			want:     0.0648,
			category: CategoryResidential,
		},
		{
			name: "daily public transport",
			record: activity.Record{PublicTransport: activity.PublicTransport{
				Uses: true, Distance: 10, Frequency: factors.FrequencyDaily,
			}},
			item:     ItemPublicTransport,
			want:     0.32485,
			category: CategoryTransport,
		},
		{
			name: "public transport unknown frequency counts one trip",
			record: activity.Record{PublicTransport: activity.PublicTransport{
				Uses: true, Distance: 10, Frequency: "de-vez-em-quando",
			}},
			item:     ItemPublicTransport,
			want:     10 * 0.000089,
			category: CategoryTransport,
		},
		{
			name: "domestic flights business",
			record: activity.Record{Flights: activity.Flights{
				Takes: true, Domestic: 2, DomesticDistance: 800, Class: factors.ClassBusiness,
			}},
			item:     ItemFlights,
			want:     2 * 800 * 0.0002,
			category: CategoryTransport,
		},
		{
			name: "domestic flights unknown class uses economy",
			record: activity.Record{Flights: activity.Flights{
				Takes: true, Domestic: 2.7, DomesticDistance: 800, Class: "luxo",
			}},
			item:     ItemFlights,
			want:     2 * 800 * 0.000133,
			category: CategoryTransport,
		},
		{
			name: "bottled gas shared by two",
			record: activity.Record{
				Residents: 2,
				Gas:       activity.Gas{Uses: true, Type: factors.GasCylinder, MonthlyConsumption: 1},
			},
			item:     ItemGas,
			want:     4 * 0.039 / 2,
			category: CategoryResidential,
		},
		{
			name:     "water",
			record:   activity.Record{Water: activity.Water{MonthlyConsumption: 15}},
			item:     ItemWater,
			want:     15 * 12 * 0.000344,
			category: CategoryResidential,
		},
		{
			name: "landfill waste with recycling",
			record: activity.Record{Waste: activity.Waste{
				WeeklyVolume: 5, Disposal: factors.WasteLandfill, Recycles: true, RecyclingPercent: 30,
			}},
			item:     ItemWaste,
			want:     260*0.001 + 260*0.3*-0.0002,
			category: CategoryWaste,
		},
		{
			name: "recycling percentage ignored when not recycling",
			record: activity.Record{Waste: activity.Waste{
				WeeklyVolume: 5, Disposal: factors.WasteLandfill, Recycles: false, RecyclingPercent: 30,
			}},
			item:     ItemWaste,
			want:     0.26,
			category: CategoryWaste,
		},
		{
			name: "composting credit",
			record: activity.Record{Waste: activity.Waste{
				WeeklyVolume: 5, Disposal: factors.WasteIncineration, Composts: true, CompostingPercent: 50,
			}},
			item:     ItemWaste,
			want:     260*0.0005 + 260*0.5*-0.0001,
			category: CategoryWaste,
		},
		{
			name: "full diet adjustments",
			record: activity.Record{Diet: activity.Diet{
				Type:          factors.DietOmnivore,
				RedMeat:       factors.FrequencyThreeToFive,
				Processed:     factors.FrequencyDaily,
				LocalSeasonal: factors.FrequencyAlways,
			}},
			item:     ItemDiet,
			want:     3.8 * 1.5 * 1.3 * 0.8,
			category: CategoryDiet,
		},
		{
			name: "processed three to five and almost always local",
			record: activity.Record{Diet: activity.Diet{
				Type:          factors.DietVegetarian,
				Processed:     factors.FrequencyThreeToFive,
				LocalSeasonal: factors.FrequencyAlmostAlways,
			}},
			item:     ItemDiet,
			want:     1.7 * 1.2 * 0.9,
			category: CategoryDiet,
		},
		{
			name: "low processed frequency gets no adjustment",
			record: activity.Record{Diet: activity.Diet{
				Type:      factors.DietPescatarian,
				Processed: factors.FrequencyOnceTwice,
			}},
			item:     ItemDiet,
			want:     2.3,
			category: CategoryDiet,
		},
		{
			name: "unknown meat frequency is neutral",
			record: activity.Record{Diet: activity.Diet{
				Type:    factors.DietFlexitarian,
				RedMeat: "toda-hora",
			}},
			item:     ItemDiet,
			want:     3.2,
			category: CategoryDiet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Calculate(tt.record, nil)

			require.Contains(t, r.Breakdown, tt.item)
			assert.InDelta(t, tt.want, r.Breakdown[tt.item], delta)
			assert.InDelta(t, tt.want, r.Category(tt.category), delta)
		})
	}
}

func TestVeganDietIsExact(t *testing.T) {
	r := Calculate(activity.Record{Diet: activity.Diet{Type: factors.DietVegan}}, nil)
	assert.Equal(t, 1.5, r.Diet) //nolint:testifylint // Exact by construction.
	assert.Empty(t, r.Notes)
}

func TestDieselScenarioValue(t *testing.T) {
	r := Calculate(activity.Record{
		Residents: 1,
		Vehicle:   activity.Vehicle{Owns: true, Fuel: factors.FuelDiesel, MonthlyVolume: 40},
	}, nil)
	assert.InDelta(t, 0.017807, r.Breakdown[ItemVehicle], 1e-6)
}

func TestUnknownFuelContributesZero(t *testing.T) {
	r := Calculate(activity.Record{
		Vehicle: activity.Vehicle{Owns: true, Fuel: "querosene", MonthlyVolume: 50},
	}, nil)

	assert.Zero(t, r.Transport)
	assert.Zero(t, r.Breakdown[ItemVehicle])
	require.NotEmpty(t, r.Notes)
	assert.Contains(t, r.Notes[0], "querosene")
}

func TestOutOfRangeContributionDegradesToZero(t *testing.T) {
	r := Calculate(activity.Record{
		Electricity: activity.Electricity{MonthlyConsumption: activity.ParseNumber("1e308")},
		Gas:         activity.Gas{Uses: true, Type: factors.GasCylinder, MonthlyConsumption: 1e308},
		Water:       activity.Water{MonthlyConsumption: 10},
	}, nil)

	assert.Zero(t, r.Breakdown[ItemElectricity])
	assert.Zero(t, r.Breakdown[ItemGas])
	assert.InDelta(t, 10*12*factors.WaterFactor, r.Residential, delta)
	assert.InDelta(t, r.Residential+r.Diet, r.Total, delta)
	assert.False(t, math.IsInf(r.Total, 0) || math.IsNaN(r.Total))
	assert.Contains(t, r.Notes, "electricity contribution out of range: using 0")
	assert.Contains(t, r.Notes, "gas contribution out of range: using 0")
}

func TestOverflowingWasteDegradesToZero(t *testing.T) {
	r := Calculate(activity.Record{
		Waste: activity.Waste{WeeklyVolume: 1e308, Disposal: factors.WasteLandfill},
	}, nil)

	assert.Zero(t, r.Waste)
	assert.Contains(t, r.Notes, "waste contribution out of range: using 0")
	assert.InDelta(t, r.Diet, r.Total, delta)
}

func TestSubRecordsRequirePresence(t *testing.T) {
	r := Calculate(activity.Record{
		Vehicle:         activity.Vehicle{Owns: false, Fuel: factors.FuelDiesel, MonthlyVolume: 40},
		PublicTransport: activity.PublicTransport{Uses: false, Distance: 10, Frequency: factors.FrequencyDaily},
		Flights:         activity.Flights{Takes: false, Domestic: 3, DomesticDistance: 500},
		Gas:             activity.Gas{Uses: false, Type: factors.GasNatural, MonthlyConsumption: 10},
		Electricity:     activity.Electricity{MonthlyConsumption: -100},
		Water:           activity.Water{MonthlyConsumption: 0},
		Waste:           activity.Waste{WeeklyVolume: -1, Disposal: factors.WasteLandfill},
	}, nil)

	assert.Zero(t, r.Transport)
	assert.Zero(t, r.Residential)
	assert.Zero(t, r.Waste)
	assert.Len(t, r.Breakdown, 1)
}

func TestWasteNeverNegative(t *testing.T) {
	methods := []string{
		factors.WasteLandfill, factors.WasteIncineration, factors.WasteOpenDump,
		factors.WasteRecycling, factors.WasteComposting, "desconhecido", "",
	}
	for _, method := range methods {
		for recycle := 0.0; recycle <= 100; recycle += 10 {
			for compost := 0.0; compost <= 100; compost += 10 {
				r := Calculate(activity.Record{Waste: activity.Waste{
					WeeklyVolume:      7,
					Disposal:          method,
					Recycles:          true,
					RecyclingPercent:  activity.Number(recycle),
					Composts:          true,
					CompostingPercent: activity.Number(compost),
				}}, nil)
				require.GreaterOrEqual(t, r.Waste, 0.0, "method=%s recycle=%v compost=%v", method, recycle, compost)
				require.GreaterOrEqual(t, r.Breakdown[ItemWaste], 0.0)
			}
		}
	}
}

func TestWasteClampedToZero(t *testing.T) {
	r := Calculate(activity.Record{Waste: activity.Waste{
		WeeklyVolume: 10, Disposal: factors.WasteIncineration,
		Recycles: true, RecyclingPercent: 100,
		Composts: true, CompostingPercent: 100,
	}}, nil)

	// 520 * 0.0005 - 520 * 0.0002 - 520 * 0.0001 = 0.104, still positive.
	assert.InDelta(t, 0.104, r.Waste, delta)

	r = Calculate(activity.Record{Waste: activity.Waste{
		WeeklyVolume: 10, Disposal: factors.WasteRecycling,
		Recycles: true, RecyclingPercent: 100,
	}}, nil)
	assert.Zero(t, r.Waste)
	assert.Contains(t, r.Breakdown, ItemWaste)
}

func TestElectricityLinearity(t *testing.T) {
	base := Calculate(activity.Record{Electricity: activity.Electricity{MonthlyConsumption: 217}}, nil)
	doubled := Calculate(activity.Record{Electricity: activity.Electricity{MonthlyConsumption: 434}}, nil)

	assert.InDelta(t, 2*base.Breakdown[ItemElectricity], doubled.Breakdown[ItemElectricity], delta)
}

func TestResidentsDivideHousehold(t *testing.T) {
	record := activity.Record{
		Residents:   1,
		Electricity: activity.Electricity{MonthlyConsumption: 300},
		Gas:         activity.Gas{Uses: true, Type: factors.GasNatural, MonthlyConsumption: 20},
		Water:       activity.Water{MonthlyConsumption: 12},
		Vehicle:     activity.Vehicle{Owns: true, Fuel: factors.FuelEthanol, MonthlyVolume: 60},
	}
	one := Calculate(record, nil)

	for _, n := range []int{2, 3, 5} {
		record.Residents = activity.Number(n)
		many := Calculate(record, nil)

		for _, item := range []string{ItemElectricity, ItemGas, ItemWater} {
			assert.InDelta(t, one.Breakdown[item]/float64(n), many.Breakdown[item], delta, "item %s, n=%d", item, n)
		}
		assert.InDelta(t, one.Breakdown[ItemVehicle], many.Breakdown[ItemVehicle], delta)
		assert.InDelta(t, one.Diet, many.Diet, delta)
	}
}

func TestTotalMatchesCategoriesAndBreakdown(t *testing.T) {
	record := activity.Record{
		Residents:       3,
		Vehicle:         activity.Vehicle{Owns: true, Fuel: factors.FuelGasoline, MonthlyVolume: 80},
		PublicTransport: activity.PublicTransport{Uses: true, Distance: 12, Frequency: factors.FrequencyWeekly},
		Flights:         activity.Flights{Takes: true, Domestic: 4, DomesticDistance: 1000, Class: factors.ClassFirst},
		Electricity:     activity.Electricity{MonthlyConsumption: 250},
		Gas:             activity.Gas{Uses: true, Type: factors.GasPiped, MonthlyConsumption: 10},
		Water:           activity.Water{MonthlyConsumption: 18},
		Waste:           activity.Waste{WeeklyVolume: 8, Disposal: factors.WasteOpenDump, Composts: true, CompostingPercent: 20},
		Diet:            activity.Diet{Type: factors.DietOmnivore, RedMeat: factors.FrequencyDaily},
	}
	r := Calculate(record, nil)

	assert.InDelta(t, r.Transport+r.Residential+r.Waste+r.Diet, r.Total, delta)

	var sum float64
	for _, v := range r.Breakdown {
		sum += v
	}
	assert.InDelta(t, r.Total, sum, delta)
	assert.Len(t, r.Breakdown, 8)
	assert.Zero(t, r.GoodsServices)
}

func TestNotesForFallbacks(t *testing.T) {
	r := Calculate(activity.Record{
		Flights: activity.Flights{Takes: true, Domestic: 1, DomesticDistance: 100, Class: "luxo"},
		Gas:     activity.Gas{Uses: true, Type: "biogas", MonthlyConsumption: 3},
		Waste:   activity.Waste{WeeklyVolume: 1, Disposal: "rio"},
		Diet:    activity.Diet{Type: "carnivora", RedMeat: "sempre"},
	}, nil)

	require.Len(t, r.Notes, 5)
	assert.Contains(t, r.Notes[0], "luxo")
	assert.Contains(t, r.Notes[1], "biogas")
	assert.Contains(t, r.Notes[2], "rio")
	assert.Contains(t, r.Notes[3], "carnivora")
	assert.Contains(t, r.Notes[4], "sempre")
	assert.Zero(t, r.Waste)
	assert.Zero(t, r.Residential)
}

func TestCalculateWithOverriddenTable(t *testing.T) {
	table, err := factors.Parse([]byte("version: 1.1.0\nelectricity: 0.00015\n"), factors.Default())
	require.NoError(t, err)

	r := Calculate(activity.Record{Electricity: activity.Electricity{MonthlyConsumption: 300}}, table)
	assert.InDelta(t, 0.432, r.Breakdown[ItemElectricity], delta)
	assert.Equal(t, "1.1.0", r.FactorVersion)
}

func TestCalculateConcurrent(t *testing.T) {
	record := activity.Record{
		Electricity: activity.Electricity{MonthlyConsumption: 300},
		Diet:        activity.Diet{Type: factors.DietVegan},
	}
	want := Calculate(record, nil)

	var wg sync.WaitGroup
	results := make([]Report, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Calculate(record, nil)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCategoryAccessors(t *testing.T) {
	r := Report{Transport: 1, Residential: 2, Waste: 3, Diet: 4, GoodsServices: 5}
	assert.InDelta(t, 1.0, r.Category(CategoryTransport), delta)
	assert.InDelta(t, 5.0, r.Category(CategoryGoodsServices), delta)
	assert.Zero(t, r.Category("other"))
	assert.Len(t, TotalledCategories(), 4)
	assert.Len(t, AllCategories(), 5)
	assert.Equal(t, "Goods & Services", CategoryGoodsServices.Label())
}

func TestOrganizationProfile(t *testing.T) {
	_, err := CalculateOrganization(nil, OrganizationInput{"refrigerants": {"r410a": 12}}, nil)
	require.ErrorIs(t, err, ErrProfileNotImplemented)
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		in      string
		want    Profile
		wantErr bool
	}{
		{"", ProfileIndividual, false},
		{"PF", ProfileIndividual, false},
		{"individual", ProfileIndividual, false},
		{"pj", ProfileOrganization, false},
		{"Organization", ProfileOrganization, false},
		{"government", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProfile(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownProfile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "Pessoa Física", ProfileIndividual.Label())
}
