package docs

// Version is one entry of the version catalog (data/versions.json).
type Version struct {
	Version string `json:"version"`
	Label   string `json:"label"`
}

// Index is the root manifest of one version (data/{version}/index.json).
// It lists ids only; the resources themselves are fetched separately.
type Index struct {
	Categories []string `json:"categories"`
	Items      []string `json:"items"`
}

// Item is a leaf documentation unit. Immutable after load within one
// version's session.
type Item struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     []ContentBlock `json:"content"`
	Tags        []string       `json:"tags,omitempty"`
	Category    string         `json:"category,omitempty"`
	Subcategory string         `json:"subcategory,omitempty"`
}

// Category is the raw, unresolved grouping node: docs and children are lists
// of ids that may dangle.
type Category struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Docs        []string `json:"docs,omitempty"`
	Children    []string `json:"children,omitempty"`
}

// ResolvedCategory is a Category after reference resolution: doc ids replaced
// by the loaded items (shared by identity with VersionData.Items, not copied)
// and child ids replaced by owned child nodes. Docs and Children are nil, not
// empty, when nothing resolved.
type ResolvedCategory struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Docs        []*Item             `json:"docs,omitempty"`
	Children    []*ResolvedCategory `json:"children,omitempty"`
}

// VersionData is the output of resolving one version's dataset.
type VersionData struct {
	Items          []*Item             `json:"items"`
	Tree           []*ResolvedCategory `json:"tree"`
	StandaloneDocs []*Item             `json:"standaloneDocs"`
}

// RawDataset is everything fetched for one version before resolution.
// Categories and Items hold the successfully loaded resources in manifest
// declaration order; ids that failed to load are simply absent.
type RawDataset struct {
	Version    string     `json:"version"`
	Index      Index      `json:"index"`
	Categories []Category `json:"categories"`
	Items      []*Item    `json:"items"`
}
