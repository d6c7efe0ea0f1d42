// Package patchdemo holds the contract shared by the JSON and XML patch
// engines: the operation kinds, the tagged error type, and the fail-fast
// driver that applies an ordered operation list to one document.
package patchdemo

import "fmt"

// Operation is the part of a patch operation the driver needs: its kind and
// the path it targets. Each engine keeps its own payload representation.
type Operation interface {
	Kind() Op
	Target() string
}

// Engine applies a single operation to the document it wraps.
type Engine[O Operation] interface {
	Apply(op O) error
}

// Run applies ops in order, index 0 first, and stops at the first failure.
// There is no rollback: on error the document may be left partially patched
// and must not be treated as complete. The returned error wraps the engine's
// tagged error with the index, kind and path of the failing operation.
func Run[O Operation](e Engine[O], ops []O) error {
	for i, op := range ops {
		if err := e.Apply(op); err != nil {
			return fmt.Errorf("op %d (%s %s): %w", i, op.Kind(), op.Target(), err)
		}
	}
	return nil
}
