package stratum

import "github.com/rotisserie/eris"

// Configuration errors reported by TryNewManager. NewManager panics on
// the same conditions.
var (
	// ErrNilBase indicates a nil pointer in Config.Bases.
	ErrNilBase = eris.New("nil base manager")

	// ErrUnknownComponent indicates a ComponentID that was never handed
	// out by RegisterComponent.
	ErrUnknownComponent = eris.New("component not registered")

	// ErrDuplicateComponent indicates a component declared twice in one
	// manager, or declared locally by two managers of one composition
	// graph.
	ErrDuplicateComponent = eris.New("duplicate component declaration")
)

// IsNilBase reports whether err stems from a nil base pointer.
func IsNilBase(err error) bool {
	return eris.Is(err, ErrNilBase)
}

// IsUnknownComponent reports whether err stems from an unregistered
// component id.
func IsUnknownComponent(err error) bool {
	return eris.Is(err, ErrUnknownComponent)
}

// IsDuplicateComponent reports whether err stems from a duplicate
// component declaration.
func IsDuplicateComponent(err error) bool {
	return eris.Is(err, ErrDuplicateComponent)
}
