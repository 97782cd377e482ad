package shields

import "errors"

// Error kinds surfaced by the core. Callers distinguish them with errors.Is;
// wrapped messages carry the offending probe, label, or field.
var (
	// ErrInvalidProbe indicates a probe identifier outside the fixed probe set.
	ErrInvalidProbe = errors.New("invalid probe")

	// ErrInvalidLabel indicates a hole label that is not part of the shield's label space.
	ErrInvalidLabel = errors.New("invalid hole label")

	// ErrIndexOutOfRange indicates an integer hole index outside the label space.
	ErrIndexOutOfRange = errors.New("hole index out of range")

	// ErrUnknownLabel indicates an assigned label with no placeholder in the drawing.
	ErrUnknownLabel = errors.New("label not present in drawing")

	// ErrMalformedRecord indicates a persisted insertion record that failed validation.
	ErrMalformedRecord = errors.New("malformed insertion record")
)
