package greenops

// ReductionTips returns the fixed list of footprint reduction tips.
func ReductionTips() []string {
	return []string{
		"Use public transport, cycle or walk whenever possible",
		"Eat less meat, especially beef",
		"Invest in solar energy for your home",
		"Sort waste for recycling and compost organic waste",
		"Buy local and seasonal produce",
		"Avoid wasting energy and water",
		"Prefer durable and second-hand products",
	}
}
