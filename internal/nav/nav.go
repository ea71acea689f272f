// Package nav projects a resolved documentation tree into an ordered,
// filterable sequence of rows for display and keyboard traversal. All state
// (expansion, filter text, focus cursor) lives in the Index and is mutated
// only through its operations, so behavior is deterministic and testable
// without any rendering environment.
package nav

import (
	"strings"

	"docnav/internal/docs"
)

type RowKind int

const (
	RowDoc RowKind = iota
	RowCategory
)

// Row is one flattened entry of the navigation view. Exactly one of Doc or
// Category is set, matching Kind.
type Row struct {
	Kind     RowKind
	Depth    int
	Doc      *docs.Item
	Category *docs.ResolvedCategory
	Expanded bool // category rows only
}

// Index maintains the live navigation state over one version's resolved
// data. It is not safe for concurrent use; a single owner mutates it.
type Index struct {
	tree       []*docs.ResolvedCategory
	standalone []*docs.Item

	expanded      map[string]bool
	filter        string
	cursor        int
	filterFocused bool

	rows []Row
}

func New(data *docs.VersionData) *Index {
	x := &Index{
		tree:       data.Tree,
		standalone: data.StandaloneDocs,
		expanded:   make(map[string]bool),
	}
	x.rebuild()
	return x
}

// Rows returns the current flattened sequence. The slice is owned by the
// Index and valid until the next mutating operation.
func (x *Index) Rows() []Row { return x.rows }

func (x *Index) Cursor() int { return x.cursor }

func (x *Index) Filter() string { return x.filter }

// FocusedRow returns the row under the cursor, or nil when the sequence is
// empty.
func (x *Index) FocusedRow() *Row {
	if len(x.rows) == 0 {
		return nil
	}
	return &x.rows[x.cursor]
}

// SetFilter replaces the filter text, recomputes the row sequence, and clamps
// the cursor into range.
func (x *Index) SetFilter(text string) {
	x.filter = text
	x.rebuild()
	x.clampCursor()
}

// Toggle flips the expansion state of one category. The filter is untouched.
func (x *Index) Toggle(categoryID string) {
	x.expanded[categoryID] = !x.expanded[categoryID]
	x.rebuild()
	x.clampCursor()
}

// IsExpanded reports the expansion state of a category.
func (x *Index) IsExpanded(categoryID string) bool { return x.expanded[categoryID] }

// ExpandAll opens every category in the tree.
func (x *Index) ExpandAll() {
	var walk func(cats []*docs.ResolvedCategory)
	walk = func(cats []*docs.ResolvedCategory) {
		for _, c := range cats {
			x.expanded[c.ID] = true
			walk(c.Children)
		}
	}
	walk(x.tree)
	x.rebuild()
	x.clampCursor()
}

// Next moves the cursor to the following row. No wrapping: it clamps at the
// end.
func (x *Index) Next() {
	if x.cursor < len(x.rows)-1 {
		x.cursor++
	}
}

// Prev moves the cursor to the preceding row, clamped at the start.
func (x *Index) Prev() {
	if x.cursor > 0 {
		x.cursor--
	}
}

// Expand opens the focused category if it is collapsed. The cursor does not
// move: rows are inserted after the focused one.
func (x *Index) Expand() {
	row := x.FocusedRow()
	if row == nil || row.Kind != RowCategory || x.expanded[row.Category.ID] {
		return
	}
	x.Toggle(row.Category.ID)
}

// Collapse closes the focused category if it is expanded.
func (x *Index) Collapse() {
	row := x.FocusedRow()
	if row == nil || row.Kind != RowCategory || !x.expanded[row.Category.ID] {
		return
	}
	x.Toggle(row.Category.ID)
}

// Activate acts on the focused row: a doc row yields the item for selection,
// a category row toggles its expansion and yields nil.
func (x *Index) Activate() *docs.Item {
	row := x.FocusedRow()
	if row == nil {
		return nil
	}
	if row.Kind == RowDoc {
		return row.Doc
	}
	x.Toggle(row.Category.ID)
	return nil
}

// FocusFilter marks the filter input as focused.
func (x *Index) FocusFilter() { x.filterFocused = true }

// Blur drops focus from the filter input without closing the navigation or
// changing rows, expansion, or cursor.
func (x *Index) Blur() { x.filterFocused = false }

func (x *Index) FilterFocused() bool { return x.filterFocused }

func (x *Index) clampCursor() {
	if len(x.rows) == 0 {
		x.cursor = 0
		return
	}
	if x.cursor >= len(x.rows) {
		x.cursor = len(x.rows) - 1
	}
}

// rebuild recomputes the flattened row sequence. Standalone docs matching the
// filter come first, always visible and never collapsible. A category subtree
// is included iff it branch-matches the filter; a collapsed category emits
// only its own row, but its descendants still participate in the branch-match
// test so ancestors of deep matches stay visible.
func (x *Index) rebuild() {
	q := strings.ToLower(x.filter)
	rows := make([]Row, 0, len(x.rows))

	for _, d := range x.standalone {
		if matchText(d.Title, q) {
			rows = append(rows, Row{Kind: RowDoc, Depth: 0, Doc: d})
		}
	}

	var visit func(c *docs.ResolvedCategory, depth int)
	visit = func(c *docs.ResolvedCategory, depth int) {
		if !branchMatches(c, q) {
			return
		}

		expanded := x.expanded[c.ID]
		rows = append(rows, Row{Kind: RowCategory, Depth: depth, Category: c, Expanded: expanded})
		if !expanded {
			return
		}

		for _, d := range c.Docs {
			if matchText(d.Title, q) {
				rows = append(rows, Row{Kind: RowDoc, Depth: depth + 1, Doc: d})
			}
		}
		for _, child := range c.Children {
			visit(child, depth+1)
		}
	}

	for _, c := range x.tree {
		visit(c, 0)
	}

	x.rows = rows
}

func matchText(s, q string) bool {
	return q == "" || strings.Contains(strings.ToLower(s), q)
}

// branchMatches reports whether the category itself, any of its direct docs,
// or any descendant category matches the filter.
func branchMatches(c *docs.ResolvedCategory, q string) bool {
	if matchText(c.Title, q) {
		return true
	}
	for _, d := range c.Docs {
		if matchText(d.Title, q) {
			return true
		}
	}
	for _, child := range c.Children {
		if branchMatches(child, q) {
			return true
		}
	}
	return false
}
