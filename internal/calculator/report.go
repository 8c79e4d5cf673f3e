package calculator

// Category identifies an emissions category of the report.
type Category string

// Report categories. GoodsServices is part of the data model but no answer
// feeds it yet, so it is always 0 and excluded from Total.
const (
	CategoryTransport     Category = "transport"
	CategoryResidential   Category = "residential"
	CategoryWaste         Category = "waste"
	CategoryDiet          Category = "diet"
	CategoryGoodsServices Category = "goods_services"
)

// Breakdown item names.
const (
	ItemVehicle         = "vehicle"
	ItemPublicTransport = "public_transport"
	ItemFlights         = "flights"
	ItemElectricity     = "electricity"
	ItemGas             = "gas"
	ItemWater           = "water"
	ItemWaste           = "waste"
	ItemDiet            = "diet"
)

// Label returns the display label of a category.
func (c Category) Label() string {
	switch c {
	case CategoryTransport:
		return "Transport"
	case CategoryResidential:
		return "Residential"
	case CategoryWaste:
		return "Waste"
	case CategoryDiet:
		return "Diet"
	case CategoryGoodsServices:
		return "Goods & Services"
	default:
		return string(c)
	}
}

// TotalledCategories lists the categories that add up to Report.Total, in
// display order.
func TotalledCategories() []Category {
	return []Category{CategoryTransport, CategoryResidential, CategoryWaste, CategoryDiet}
}

// AllCategories lists every category of the data model, in display order.
func AllCategories() []Category {
	return append(TotalledCategories(), CategoryGoodsServices)
}

// Report is the result of one calculation, in tCO2e per year.
// A Report is built once by Calculate and never modified afterwards.
type Report struct {
	Transport     float64 `json:"transport" yaml:"transport"`
	Residential   float64 `json:"residential" yaml:"residential"`
	Waste         float64 `json:"waste" yaml:"waste"`
	Diet          float64 `json:"diet" yaml:"diet"`
	GoodsServices float64 `json:"goods_services" yaml:"goods_services"`
	Total         float64 `json:"total" yaml:"total"`

	// Breakdown maps each contributing item to its share. Items that did
	// not apply are absent; diet is always present.
	Breakdown map[string]float64 `json:"breakdown" yaml:"breakdown"`

	// Notes records every fallback applied to an unrecognized answer.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// FactorVersion is the version of the factor table used.
	FactorVersion string `json:"factor_version" yaml:"factor_version"`
}

// Category returns the subtotal for c.
func (r Report) Category(c Category) float64 {
	switch c {
	case CategoryTransport:
		return r.Transport
	case CategoryResidential:
		return r.Residential
	case CategoryWaste:
		return r.Waste
	case CategoryDiet:
		return r.Diet
	case CategoryGoodsServices:
		return r.GoodsServices
	default:
		return 0
	}
}
