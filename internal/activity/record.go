// Package activity defines the activity record: the structured, self-reported
// habits of one person for one calculation.
//
// Records are built by the input layer (a file, stdin, or a form) and handed
// to the calculator unchanged. Every numeric answer is a lenient Number and
// every yes/no answer a lenient Flag, so malformed input degrades to "no
// contribution" instead of failing.
package activity

// Record is the input to an individual-profile calculation.
type Record struct {
	Period    string `json:"period,omitempty" yaml:"period,omitempty"`
	Region    string `json:"region,omitempty" yaml:"region,omitempty"`
	City      string `json:"city,omitempty" yaml:"city,omitempty"`
	Residents Number `json:"residents,omitempty" yaml:"residents,omitempty"`

	Vehicle         Vehicle         `json:"vehicle" yaml:"vehicle"`
	PublicTransport PublicTransport `json:"public_transport" yaml:"public_transport"`
	Flights         Flights         `json:"flights" yaml:"flights"`
	Electricity     Electricity     `json:"electricity" yaml:"electricity"`
	Gas             Gas             `json:"gas" yaml:"gas"`
	Water           Water           `json:"water" yaml:"water"`
	Waste           Waste           `json:"waste" yaml:"waste"`
	Diet            Diet            `json:"diet" yaml:"diet"`
}

// Vehicle describes private vehicle use.
type Vehicle struct {
	Owns          Flag   `json:"owns" yaml:"owns"`
	Type          string `json:"type,omitempty" yaml:"type,omitempty"`
	Fuel          string `json:"fuel,omitempty" yaml:"fuel,omitempty"`
	MonthlyVolume Number `json:"monthly_volume,omitempty" yaml:"monthly_volume,omitempty"`
}

// PublicTransport describes bus, metro, and train use.
// Distance is per trip occasion and Frequency one of the frequency keys
// (diariamente, semanalmente, mensalmente, poucas-vezes).
type PublicTransport struct {
	Uses      Flag   `json:"uses" yaml:"uses"`
	Distance  Number `json:"distance,omitempty" yaml:"distance,omitempty"`
	Frequency string `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// Flights describes domestic air travel in the reporting period.
type Flights struct {
	Takes            Flag   `json:"takes" yaml:"takes"`
	Domestic         Number `json:"domestic,omitempty" yaml:"domestic,omitempty"`
	DomesticDistance Number `json:"domestic_distance,omitempty" yaml:"domestic_distance,omitempty"`
	Class            string `json:"class,omitempty" yaml:"class,omitempty"`
}

// Electricity describes household electricity use.
type Electricity struct {
	MonthlyConsumption Number `json:"monthly_consumption,omitempty" yaml:"monthly_consumption,omitempty"`
	Source             string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Gas describes piped or bottled gas use.
type Gas struct {
	Uses               Flag   `json:"uses" yaml:"uses"`
	Type               string `json:"type,omitempty" yaml:"type,omitempty"`
	MonthlyConsumption Number `json:"monthly_consumption,omitempty" yaml:"monthly_consumption,omitempty"`
}

// Water describes household water use in m³.
type Water struct {
	MonthlyConsumption Number `json:"monthly_consumption,omitempty" yaml:"monthly_consumption,omitempty"`
}

// Waste describes household solid waste in kg.
type Waste struct {
	WeeklyVolume      Number `json:"weekly_volume,omitempty" yaml:"weekly_volume,omitempty"`
	Disposal          string `json:"disposal,omitempty" yaml:"disposal,omitempty"`
	Recycles          Flag   `json:"recycles" yaml:"recycles"`
	RecyclingPercent  Number `json:"recycling_percent,omitempty" yaml:"recycling_percent,omitempty"`
	Composts          Flag   `json:"composts" yaml:"composts"`
	CompostingPercent Number `json:"composting_percent,omitempty" yaml:"composting_percent,omitempty"`
}

// Diet describes eating habits. PoultryPork is collected for completeness
// but does not affect the calculation.
type Diet struct {
	Type          string `json:"type,omitempty" yaml:"type,omitempty"`
	RedMeat       string `json:"red_meat,omitempty" yaml:"red_meat,omitempty"`
	PoultryPork   string `json:"poultry_pork,omitempty" yaml:"poultry_pork,omitempty"`
	Processed     string `json:"processed,omitempty" yaml:"processed,omitempty"`
	LocalSeasonal string `json:"local_seasonal,omitempty" yaml:"local_seasonal,omitempty"`
}

// ResidentCount returns the number of residents sharing the household,
// truncated to an integer. Absent, invalid, or values below 1 yield 1.
func (r Record) ResidentCount() int {
	n := r.Residents.Int()
	if n < 1 {
		return 1
	}
	return n
}
