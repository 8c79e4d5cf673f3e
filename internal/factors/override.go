package factors

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of a factor override file:
//
//	version: 1.1.0
//	fuel:
//	  diesel: 0.00268
//	electricity: 0.00009
//	aviation:
//	  nacional:
//	    economica: 0.00014
type overrideFile struct {
	Version         string                        `yaml:"version"`
	Fuel            map[string]float64            `yaml:"fuel"`
	Electricity     *float64                      `yaml:"electricity"`
	Gas             map[string]float64            `yaml:"gas"`
	Water           *float64                      `yaml:"water"`
	PublicTransport *float64                      `yaml:"public_transport"`
	Aviation        map[string]map[string]float64 `yaml:"aviation"`
	Waste           map[string]float64            `yaml:"waste"`
	Diet            map[string]float64            `yaml:"diet"`
	MeatFrequency   map[string]float64            `yaml:"meat_frequency"`
	Goods           map[string]float64            `yaml:"goods"`
}

//nolint:gochecknoglobals // Compile-time constant lookup table.
var overrideKeys = map[string]bool{
	"version":               true,
	CategoryFuel:            true,
	CategoryElectricity:     true,
	CategoryGas:             true,
	CategoryWater:           true,
	CategoryPublicTransport: true,
	CategoryAviation:        true,
	CategoryWaste:           true,
	CategoryDiet:            true,
	CategoryMeatFrequency:   true,
	CategoryGoods:           true,
}

// Load reads a YAML override file and applies it on top of the built-in table.
// The returned table is a new frozen value; Default is never modified.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor overrides %s: %w", path, err)
	}
	t, err := Parse(data, Default())
	if err != nil {
		return nil, fmt.Errorf("loading factor overrides %s: %w", path, err)
	}
	return t, nil
}

// Parse applies YAML overrides to base and returns the resulting table.
//
// The override version must be valid semver and share base's major version.
// Every value must be finite, and only waste factors may be negative
// (credits).
func Parse(data []byte, base *Table) (*Table, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing factor overrides: %w", err)
	}
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if !overrideKeys[key] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing factor overrides: %w", err)
	}

	version, err := checkVersion(file.Version, base.version)
	if err != nil {
		return nil, err
	}
	if err = file.checkValues(); err != nil {
		return nil, err
	}

	out := *base
	out.version = version
	out.fuel = base.fuel.with(file.Fuel)
	out.gas = base.gas.with(file.Gas)
	out.aviation = base.aviation.with(file.Aviation)
	out.waste = base.waste.with(file.Waste)
	out.diet = base.diet.with(file.Diet)
	out.meatFrequency = base.meatFrequency.with(file.MeatFrequency)
	out.goods = base.goods.with(file.Goods)
	if file.Electricity != nil {
		out.electricity = *file.Electricity
	}
	if file.Water != nil {
		out.water = *file.Water
	}
	if file.PublicTransport != nil {
		out.publicTransport = *file.PublicTransport
	}
	return &out, nil
}

func checkVersion(raw string, base *semver.Version) (*semver.Version, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: version is required", ErrInvalidVersion)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, raw, err)
	}
	if v.Major() != base.Major() {
		return nil, fmt.Errorf("%w: %s does not match table major version %d",
			ErrIncompatibleVersion, v, base.Major())
	}
	return v, nil
}

// checkValues rejects non-finite coefficients everywhere and negative ones
// outside the waste category, the only one holding credits.
func (f *overrideFile) checkValues() error {
	flat := map[string]*float64{
		CategoryElectricity:     f.Electricity,
		CategoryWater:           f.Water,
		CategoryPublicTransport: f.PublicTransport,
	}
	for _, category := range slices.Sorted(maps.Keys(flat)) {
		if v := flat[category]; v != nil {
			if err := checkFactor(category, *v, false); err != nil {
				return err
			}
		}
	}

	lookups := map[string]map[string]float64{
		CategoryFuel:          f.Fuel,
		CategoryGas:           f.Gas,
		CategoryDiet:          f.Diet,
		CategoryMeatFrequency: f.MeatFrequency,
		CategoryGoods:         f.Goods,
	}
	for _, category := range slices.Sorted(maps.Keys(lookups)) {
		if err := checkLookup(category, lookups[category], false); err != nil {
			return err
		}
	}
	for _, group := range slices.Sorted(maps.Keys(f.Aviation)) {
		if err := checkLookup(CategoryAviation+"."+group, f.Aviation[group], false); err != nil {
			return err
		}
	}
	return checkLookup(CategoryWaste, f.Waste, true)
}

func checkLookup(category string, values map[string]float64, allowNegative bool) error {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := checkFactor(category+"."+key, values[key], allowNegative); err != nil {
			return err
		}
	}
	return nil
}

func checkFactor(name string, v float64, allowNegative bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s = %g", ErrNonFiniteFactor, name, v)
	}
	if v < 0 && !allowNegative {
		return fmt.Errorf("%w: %s = %g", ErrNegativeFactor, name, v)
	}
	return nil
}
