package docs

import "fmt"

// CatalogError means the version catalog itself could not be obtained. No
// version can be selected; callers treat this as fatal for the session.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("loading version catalog: %v", e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// ResolutionError means the index manifest for one version could not be
// obtained. That version's content is unavailable; other versions remain
// selectable.
type ResolutionError struct {
	Version string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolving version %s: %v", e.Version, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
