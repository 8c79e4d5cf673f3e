// Package calculator turns an activity record into an emissions report.
//
// Calculate is pure and deterministic: it performs no I/O, keeps no state,
// and never fails. Missing or malformed answers contribute nothing, and
// unrecognized categorical answers resolve to the factor table's documented
// fallback. Concurrent calls are safe because factor tables are read-only.
package calculator

import (
	"fmt"
	"math"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/factors"
)

// Fixed design parameters. Their derivation is not documented; they are
// kept as given.
const (
	// VehicleDivisor normalizes the monthly fuel contribution.
	VehicleDivisor = 6.0

	// MonthsPerYear annualizes monthly electricity and water answers.
	MonthsPerYear = 12.0

	// ElectricityLoadFactor assumes 80% of the reported consumption.
	ElectricityLoadFactor = 0.8

	// SolarGridShare is the share of grid intensity kept for households with
	// solar panels (70% self-generation).
	SolarGridShare = 0.3

	// GasAnnualMultiplier annualizes the gas answer.
	GasAnnualMultiplier = 4.0

	// WeeksPerYear annualizes the weekly waste answer.
	WeeksPerYear = 52.0

	// ProcessedDailyMultiplier and ProcessedFrequentMultiplier adjust the diet
	// for processed food eaten daily or 3-5 times a week. Lower frequencies
	// are left unadjusted.
	ProcessedDailyMultiplier    = 1.3
	ProcessedFrequentMultiplier = 1.2

	// LocalAlwaysMultiplier and LocalAlmostAlwaysMultiplier discount the diet
	// for local and seasonal food.
	LocalAlwaysMultiplier       = 0.8
	LocalAlmostAlwaysMultiplier = 0.9

	percentBase = 100.0
)

// publicTransportTrips converts a public transport frequency into trips per
// year. Unrecognized frequencies count as a single trip.
func publicTransportTrips(frequency string) (float64, bool) {
	switch frequency {
	case factors.FrequencyDaily:
		return 365, true
	case factors.FrequencyWeekly:
		return 52, true
	case factors.FrequencyMonthly:
		return 12, true
	case factors.FrequencyFewTimes:
		return 4, true
	default:
		return 1, false
	}
}

// Calculate computes the individual-profile emissions report for rec.
// A nil table selects factors.Default().
func Calculate(rec activity.Record, table *factors.Table) Report {
	if table == nil {
		table = factors.Default()
	}

	b := &builder{
		table:     table,
		residents: float64(rec.ResidentCount()),
		report: Report{
			Breakdown:     make(map[string]float64),
			FactorVersion: table.Version(),
		},
	}

	b.vehicle(rec.Vehicle)
	b.publicTransport(rec.PublicTransport)
	b.flights(rec.Flights)
	b.electricity(rec.Electricity)
	b.gas(rec.Gas)
	b.water(rec.Water)
	b.waste(rec.Waste)
	b.diet(rec.Diet)

	r := b.report
	r.Total = r.Transport + r.Residential + r.Waste + r.Diet
	return r
}

// builder accumulates one report. Every contribution is added to its
// category subtotal and recorded in the breakdown in the same step.
type builder struct {
	table     *factors.Table
	residents float64
	report    Report
	total     float64
}

// add records value for item. A contribution that is not finite, or that
// would push the running total past the float64 range, is recorded as 0
// with a note.
func (b *builder) add(subtotal *float64, item string, value float64) {
	if !isFinite(value) || !isFinite(b.total+value) {
		b.note("%s contribution out of range: using 0", item)
		value = 0
	}
	b.total += value
	*subtotal += value
	b.report.Breakdown[item] = value
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (b *builder) note(format string, args ...any) {
	b.report.Notes = append(b.report.Notes, fmt.Sprintf(format, args...))
}

func (b *builder) vehicle(v activity.Vehicle) {
	volume := v.MonthlyVolume.Float()
	if !v.Owns || volume <= 0 {
		return
	}
	if !b.table.Known(factors.CategoryFuel, v.Fuel) {
		b.note("unrecognized fuel type %q: using factor 0", v.Fuel)
	}
	b.add(&b.report.Transport, ItemVehicle, volume*b.table.Fuel(v.Fuel)/VehicleDivisor)
}

func (b *builder) publicTransport(p activity.PublicTransport) {
	distance := p.Distance.Float()
	if !p.Uses || distance <= 0 {
		return
	}
	trips, ok := publicTransportTrips(p.Frequency)
	if !ok {
		b.note("unrecognized public transport frequency %q: counting a single trip", p.Frequency)
	}
	b.add(&b.report.Transport, ItemPublicTransport, distance*trips*b.table.PublicTransport())
}

func (b *builder) flights(f activity.Flights) {
	count := float64(f.Domestic.Int())
	distance := f.DomesticDistance.Float()
	if !f.Takes || count <= 0 || distance <= 0 {
		return
	}
	if !b.table.KnownAviation(factors.AviationDomestic, f.Class) {
		b.note("unrecognized travel class %q: using economy", f.Class)
	}
	factor := b.table.Aviation(factors.AviationDomestic, f.Class)
	b.add(&b.report.Transport, ItemFlights, count*distance*factor)
}

func (b *builder) electricity(e activity.Electricity) {
	consumption := e.MonthlyConsumption.Float()
	if consumption <= 0 {
		return
	}
	annual := consumption * MonthsPerYear * ElectricityLoadFactor
	factor := b.table.Electricity()
	if e.Source == factors.SourceSolarPanels {
		factor *= SolarGridShare
	}
	b.add(&b.report.Residential, ItemElectricity, annual*factor/b.residents)
}

func (b *builder) gas(g activity.Gas) {
	consumption := g.MonthlyConsumption.Float()
	if !g.Uses || consumption <= 0 {
		return
	}
	if !b.table.Known(factors.CategoryGas, g.Type) {
		b.note("unrecognized gas type %q: using factor 0", g.Type)
	}
	annual := consumption * GasAnnualMultiplier
	b.add(&b.report.Residential, ItemGas, annual*b.table.Gas(g.Type)/b.residents)
}

func (b *builder) water(w activity.Water) {
	consumption := w.MonthlyConsumption.Float()
	if consumption <= 0 {
		return
	}
	annual := consumption * MonthsPerYear
	b.add(&b.report.Residential, ItemWater, annual*b.table.Water()/b.residents)
}

func (b *builder) waste(w activity.Waste) {
	weekly := w.WeeklyVolume.Float()
	if weekly <= 0 {
		return
	}
	if !b.table.Known(factors.CategoryWaste, w.Disposal) {
		b.note("unrecognized disposal method %q: using factor 0", w.Disposal)
	}

	annual := weekly * WeeksPerYear / b.residents
	emissions := annual * b.table.Waste(w.Disposal)

	// Credit factors are negative, so adding them lowers the total.
	if pct := w.RecyclingPercent.Float(); w.Recycles && pct > 0 {
		emissions += annual * (pct / percentBase) * b.table.Waste(factors.WasteRecycling)
	}
	if pct := w.CompostingPercent.Float(); w.Composts && pct > 0 {
		emissions += annual * (pct / percentBase) * b.table.Waste(factors.WasteComposting)
	}

	b.add(&b.report.Waste, ItemWaste, math.Max(0, emissions))
}

func (b *builder) diet(d activity.Diet) {
	switch {
	case d.Type == "":
		b.note("diet type not set: using %s", factors.DietOmnivore)
	case !b.table.Known(factors.CategoryDiet, d.Type):
		b.note("unrecognized diet type %q: using %s", d.Type, factors.DietOmnivore)
	}
	emissions := b.table.Diet(d.Type)

	if d.RedMeat != "" {
		if !b.table.Known(factors.CategoryMeatFrequency, d.RedMeat) {
			b.note("unrecognized red meat frequency %q: no adjustment", d.RedMeat)
		}
		emissions *= b.table.MeatMultiplier(d.RedMeat)
	}

	switch d.Processed {
	case factors.FrequencyDaily:
		emissions *= ProcessedDailyMultiplier
	case factors.FrequencyThreeToFive:
		emissions *= ProcessedFrequentMultiplier
	}

	switch d.LocalSeasonal {
	case factors.FrequencyAlways:
		emissions *= LocalAlwaysMultiplier
	case factors.FrequencyAlmostAlways:
		emissions *= LocalAlmostAlwaysMultiplier
	}

	b.add(&b.report.Diet, ItemDiet, emissions)
}
