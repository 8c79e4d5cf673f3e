package calculator

import (
	"fmt"
	"strings"

	"github.com/rshade/pegada/internal/activity"
	"github.com/rshade/pegada/internal/factors"
)

// Profile selects which calculator applies to a record.
type Profile string

// Supported profiles.
const (
	ProfileIndividual   Profile = "individual"
	ProfileOrganization Profile = "organization"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrProfileNotImplemented is returned for profiles that have a factor
	// table but no calculation yet.
	ErrProfileNotImplemented = constError("profile calculation not implemented")

	// ErrUnknownProfile is returned by ParseProfile for unrecognized names.
	ErrUnknownProfile = constError("unknown profile")
)

// ParseProfile accepts "individual"/"pf" and "organization"/"pj", case-insensitively.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "individual", "pf":
		return ProfileIndividual, nil
	case "organization", "organisation", "pj":
		return ProfileOrganization, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
	}
}

// Label returns the profile label used in exported documents.
func (p Profile) Label() string {
	switch p {
	case ProfileIndividual:
		return "Pessoa Física"
	case ProfileOrganization:
		return "Pessoa Jurídica"
	default:
		return string(p)
	}
}

// OrganizationInput holds organizational activity answers keyed by factor
// category and then by sub-method, e.g. {"refrigerants": {"r410a": 12}}.
type OrganizationInput map[string]map[string]activity.Number

// OrganizationCalculator computes reports for the organizational profile.
// The factor table exists (factors.Organization) but the calculation rules
// have not been defined; implementations plug in here.
type OrganizationCalculator interface {
	Calculate(input OrganizationInput, table *factors.OrgTable) (Report, error)
}

// Unimplemented is the OrganizationCalculator used until organizational
// rules exist. It always returns ErrProfileNotImplemented.
type Unimplemented struct{}

// Calculate implements OrganizationCalculator.
func (Unimplemented) Calculate(OrganizationInput, *factors.OrgTable) (Report, error) {
	return Report{}, fmt.Errorf("%s: %w", ProfileOrganization, ErrProfileNotImplemented)
}

// CalculateOrganization runs calc, defaulting to Unimplemented when calc is nil.
func CalculateOrganization(
	calc OrganizationCalculator,
	input OrganizationInput,
	table *factors.OrgTable,
) (Report, error) {
	if calc == nil {
		calc = Unimplemented{}
	}
	if table == nil {
		table = factors.Organization()
	}
	return calc.Calculate(input, table)
}
