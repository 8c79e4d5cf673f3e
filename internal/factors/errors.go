package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while loading factor overrides.
var (
	// ErrInvalidVersion indicates an override file whose version is not semver.
	ErrInvalidVersion = constError("invalid factor table version")

	// ErrIncompatibleVersion indicates an override file targeting another
	// major version of the factor table.
	ErrIncompatibleVersion = constError("incompatible factor table version")

	// ErrUnknownCategory indicates an override file naming a category the
	// table does not have.
	ErrUnknownCategory = constError("unknown factor category")

	// ErrNegativeFactor indicates a negative coefficient in a category that
	// does not accept credits.
	ErrNegativeFactor = constError("negative emission factor")

	// ErrNonFiniteFactor indicates a NaN or infinite coefficient.
	ErrNonFiniteFactor = constError("non-finite emission factor")
)
