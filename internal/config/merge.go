package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput  = "output"
	keyLogging = "logging"
	keyFactors = "factors"
	keyOffset  = "offset"
)

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto
// target. Fields set in an overlay section replace the target's fields;
// sections and fields absent from the overlay are left unchanged. Unknown
// keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q from %s: %w", key, overlayPath, err)
		}
	}
	return nil
}

func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyOutput:
		return decodeOnto(node, &target.Output)
	case keyLogging:
		return decodeOnto(node, &target.Logging)
	case keyFactors:
		return decodeOnto(node, &target.Factors)
	case keyOffset:
		return decodeOnto(node, &target.Offset)
	default:
		return nil
	}
}

// decodeOnto decodes node over a copy of *dst and stores it only on success,
// so a malformed section leaves dst untouched.
func decodeOnto[T any](node *yaml.Node, dst *T) error {
	v := *dst
	if err := node.Decode(&v); err != nil {
		return err
	}
	*dst = v
	return nil
}
