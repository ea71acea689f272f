package docs

import (
	"context"
	"errors"

	"docnav/internal/fetch"
)

// LoadVersions fetches the version catalog. The first element of the result
// is the default selection.
func LoadVersions(ctx context.Context, f fetch.Fetcher) ([]Version, error) {
	var versions []Version
	if err := f.JSON(ctx, "data/versions.json", &versions); err != nil {
		return nil, &CatalogError{Err: err}
	}
	if len(versions) == 0 {
		return nil, &CatalogError{Err: errors.New("version catalog is empty")}
	}
	return versions, nil
}
