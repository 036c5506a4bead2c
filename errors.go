package csspectrum

import "errors"

// Error kinds surfaced by the engine. Every error returned by the package
// wraps exactly one of these sentinels, so callers can classify with
// errors.Is.
var (
	// ErrUnsupported reports a string matching no registered pattern, or a
	// conversion target that is not registered. Messages enumerate the
	// currently registered identifiers.
	ErrUnsupported = errors.New("unsupported color format")

	// ErrInvalidFormat reports a string that matched a format's coarse
	// pattern but failed structural parsing.
	ErrInvalidFormat = errors.New("invalid color string")

	// ErrInvalidArgument reports an out-of-contract numeric argument or an
	// unknown enumerated option.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyRegistered reports a duplicate named-color registration, or
	// a format/space registration under a name the other kind already holds.
	ErrAlreadyRegistered = errors.New("color name already registered")

	// ErrNoNamedMatch reports serialization to the named format when no
	// table entry matches exactly.
	ErrNoNamedMatch = errors.New("no named color matches")

	// ErrMissingComponent reports a converter registered without metadata
	// for one of its component positions. It indicates a programmer error,
	// not a recoverable runtime condition.
	ErrMissingComponent = errors.New("missing component metadata")
)
