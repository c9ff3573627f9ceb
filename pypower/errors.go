package pypower

import "errors"

var (
	// ErrNoOrder is returned when a conversion is requested on a case that
	// was never internally renumbered (no order record).
	ErrNoOrder = errors.New("pypower: case has no order record")

	// ErrAlreadyExternal is returned when restore is requested on a case
	// whose order record says it already uses external numbering. The call
	// is never silently re-run.
	ErrAlreadyExternal = errors.New("pypower: case already uses external numbering")

	// ErrUnknownOrdering is returned when an ordering descriptor names an
	// entity class the order record does not know about.
	ErrUnknownOrdering = errors.New("pypower: unknown ordering class")

	// ErrUnknownField is returned when a field path does not resolve to a
	// table inside a case or snapshot.
	ErrUnknownField = errors.New("pypower: unknown case field")
)
