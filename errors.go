package koin

import (
	"fmt"
	"strings"
)

// ConflictError reports a duplicate definition: two declarations registered
// the same identity key in the same resulting namespace. It is raised during
// Build and aborts container construction entirely.
type ConflictError struct {
	Path string // namespace path ("" = root)
	Key  Key
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate definition of %s in namespace %q", e.Key, e.Path)
}

// NotFoundError reports that no definition for the requested key is visible
// along the ancestor chain from the starting namespace up to the root.
type NotFoundError struct {
	Key  Key
	Path string // starting namespace path of the lookup
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no definition found for %s (looked up from namespace %q)", e.Key, e.Path)
}

// CircularDependencyError reports that a creation procedure transitively
// depends on its own (namespace, key) pair. Chain lists the definitions on
// the active creation stack, outermost first, ending with the repeated one.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	return "circular dependency detected: " + strings.Join(e.Chain, " -> ")
}

// CreationError wraps a failure returned by a provider, identifying which
// definition failed. A failed Single creation leaves no cache entry, so a
// later resolution may retry.
type CreationError struct {
	Path string
	Key  Key
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("creating %s in namespace %q: %v", e.Key, e.Path, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports that a resolved instance could not be asserted to
// the type requested by a generic helper.
type TypeMismatchError struct {
	Key      Key
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %s: expected %s, got %s", e.Key, e.Expected, e.Got)
}
