package nav

import (
	"testing"

	"docnav/internal/docs"
)

// testData builds a small fixture:
//
//	welcome (standalone)
//	guides
//	  install
//	  configure
//	  advanced
//	    tuning
//	  deep
//	    deeper
//	      esoterica
//	appendix
func testData() *docs.VersionData {
	install := &docs.Item{ID: "install", Title: "Installation"}
	configure := &docs.Item{ID: "configure", Title: "Configuration"}
	tuning := &docs.Item{ID: "tuning", Title: "Tuning"}
	esoterica := &docs.Item{ID: "esoterica", Title: "Esoterica"}
	welcome := &docs.Item{ID: "welcome", Title: "Welcome"}

	tree := []*docs.ResolvedCategory{
		{
			ID:    "guides",
			Title: "Guides",
			Docs:  []*docs.Item{install, configure},
			Children: []*docs.ResolvedCategory{
				{ID: "advanced", Title: "Advanced", Docs: []*docs.Item{tuning}},
				{
					ID:    "deep",
					Title: "Deep",
					Children: []*docs.ResolvedCategory{
						{ID: "deeper", Title: "Deeper", Docs: []*docs.Item{esoterica}},
					},
				},
			},
		},
		{ID: "appendix", Title: "Appendix"},
	}

	return &docs.VersionData{
		Items:          []*docs.Item{install, configure, tuning, esoterica, welcome},
		Tree:           tree,
		StandaloneDocs: []*docs.Item{welcome},
	}
}

// rowLabels summarizes rows as "kind:id" for compact assertions.
func rowLabels(rows []Row) []string {
	var out []string
	for _, r := range rows {
		if r.Kind == RowDoc {
			out = append(out, "doc:"+r.Doc.ID)
		} else {
			out = append(out, "cat:"+r.Category.ID)
		}
	}
	return out
}

func assertRows(t *testing.T, rows []Row, want ...string) {
	t.Helper()
	got := rowLabels(rows)
	if len(got) != len(want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rows = %v, want %v", got, want)
		}
	}
}

func TestNewCollapsed(t *testing.T) {
	x := New(testData())
	// Standalone docs first, then collapsed roots only.
	assertRows(t, x.Rows(), "doc:welcome", "cat:guides", "cat:appendix")
	if x.Cursor() != 0 {
		t.Errorf("initial cursor = %d, want 0", x.Cursor())
	}
}

func TestToggle(t *testing.T) {
	x := New(testData())

	x.Toggle("guides")
	assertRows(t, x.Rows(),
		"doc:welcome",
		"cat:guides",
		"doc:install",
		"doc:configure",
		"cat:advanced",
		"cat:deep",
		"cat:appendix",
	)
	if !x.IsExpanded("guides") {
		t.Error("guides should be expanded after toggle")
	}

	x.Toggle("guides")
	assertRows(t, x.Rows(), "doc:welcome", "cat:guides", "cat:appendix")
	if x.IsExpanded("guides") {
		t.Error("guides should be collapsed after second toggle")
	}
}

func TestExpandAll(t *testing.T) {
	x := New(testData())
	x.ExpandAll()
	assertRows(t, x.Rows(),
		"doc:welcome",
		"cat:guides",
		"doc:install",
		"doc:configure",
		"cat:advanced",
		"doc:tuning",
		"cat:deep",
		"cat:deeper",
		"doc:esoterica",
		"cat:appendix",
	)
}

func TestRowDepths(t *testing.T) {
	x := New(testData())
	x.ExpandAll()

	want := map[string]int{
		"doc:welcome":   0,
		"cat:guides":    0,
		"doc:install":   1,
		"cat:advanced":  1,
		"doc:tuning":    2,
		"cat:deep":      1,
		"cat:deeper":    2,
		"doc:esoterica": 3,
		"cat:appendix":  0,
	}
	for _, r := range x.Rows() {
		label := rowLabels([]Row{r})[0]
		if d, ok := want[label]; ok && r.Depth != d {
			t.Errorf("%s depth = %d, want %d", label, r.Depth, d)
		}
	}
}

func TestFilterBranchMatch(t *testing.T) {
	x := New(testData())

	// Esoterica is three levels down; its ancestors stay visible even while
	// collapsed, and everything else is filtered out.
	x.SetFilter("esoterica")
	assertRows(t, x.Rows(), "cat:guides")

	x.Toggle("guides")
	assertRows(t, x.Rows(), "cat:guides", "cat:deep")

	x.Toggle("deep")
	x.Toggle("deeper")
	assertRows(t, x.Rows(), "cat:guides", "cat:deep", "cat:deeper", "doc:esoterica")
}

func TestFilterDocsUnderExpandedCategory(t *testing.T) {
	x := New(testData())
	x.ExpandAll()

	x.SetFilter("install")
	assertRows(t, x.Rows(), "cat:guides", "doc:install")
}

func TestFilterMatchesStandalone(t *testing.T) {
	x := New(testData())
	x.SetFilter("welcome")
	assertRows(t, x.Rows(), "doc:welcome")
}

func TestFilterCaseInsensitive(t *testing.T) {
	x := New(testData())
	x.ExpandAll()
	x.SetFilter("TUNING")
	assertRows(t, x.Rows(), "cat:guides", "cat:advanced", "doc:tuning")
}

func TestFilterNoMatch(t *testing.T) {
	x := New(testData())
	x.SetFilter("zzz")
	if len(x.Rows()) != 0 {
		t.Errorf("rows = %v, want none", rowLabels(x.Rows()))
	}
	if x.FocusedRow() != nil {
		t.Error("FocusedRow should be nil for an empty sequence")
	}
}

func TestClearFilterRestores(t *testing.T) {
	x := New(testData())
	x.SetFilter("esoterica")
	x.SetFilter("")
	assertRows(t, x.Rows(), "doc:welcome", "cat:guides", "cat:appendix")
}

func TestCursorClampOnFilter(t *testing.T) {
	x := New(testData())
	x.ExpandAll()
	for i := 0; i < 20; i++ {
		x.Next()
	}
	if x.Cursor() != len(x.Rows())-1 {
		t.Fatalf("cursor = %d, want last row", x.Cursor())
	}

	x.SetFilter("welcome")
	if x.Cursor() != len(x.Rows())-1 {
		t.Errorf("cursor = %d, want clamped to %d", x.Cursor(), len(x.Rows())-1)
	}
}

func TestNextPrevClamp(t *testing.T) {
	x := New(testData())

	x.Prev()
	if x.Cursor() != 0 {
		t.Errorf("cursor = %d after Prev at start, want 0", x.Cursor())
	}

	last := len(x.Rows()) - 1
	for i := 0; i < 10; i++ {
		x.Next()
	}
	if x.Cursor() != last {
		t.Errorf("cursor = %d after Next past end, want %d", x.Cursor(), last)
	}
}

func TestExpandCollapseFocused(t *testing.T) {
	x := New(testData())
	x.Next() // cat:guides

	x.Expand()
	if !x.IsExpanded("guides") {
		t.Fatal("guides should be expanded")
	}
	if x.Cursor() != 1 {
		t.Errorf("cursor moved on Expand: %d", x.Cursor())
	}

	// Expand on an already expanded category is a no-op.
	x.Expand()
	if !x.IsExpanded("guides") {
		t.Error("second Expand should not collapse")
	}

	x.Collapse()
	if x.IsExpanded("guides") {
		t.Error("guides should be collapsed")
	}

	// Expand on a doc row is a no-op.
	x.Prev() // doc:welcome
	x.Expand()
	assertRows(t, x.Rows(), "doc:welcome", "cat:guides", "cat:appendix")
}

func TestActivate(t *testing.T) {
	x := New(testData())

	// Doc row: yields the item.
	if item := x.Activate(); item == nil || item.ID != "welcome" {
		t.Fatalf("Activate on doc row = %+v, want welcome", item)
	}

	// Category row: toggles, yields nil.
	x.Next()
	if item := x.Activate(); item != nil {
		t.Fatalf("Activate on category row = %+v, want nil", item)
	}
	if !x.IsExpanded("guides") {
		t.Error("Activate should have expanded guides")
	}
}

func TestFilterFocus(t *testing.T) {
	x := New(testData())
	x.Toggle("guides")
	x.Next()
	cursor := x.Cursor()

	x.FocusFilter()
	if !x.FilterFocused() {
		t.Fatal("filter should be focused")
	}

	x.Blur()
	if x.FilterFocused() {
		t.Error("filter should not be focused after Blur")
	}
	if x.Cursor() != cursor || !x.IsExpanded("guides") {
		t.Error("Blur must not change cursor or expansion")
	}
}

func TestToggleRetainedAcrossFilter(t *testing.T) {
	x := New(testData())
	x.Toggle("guides")
	x.SetFilter("zzz")
	x.SetFilter("")
	if !x.IsExpanded("guides") {
		t.Error("expansion state should survive filtering")
	}
	assertRows(t, x.Rows(),
		"doc:welcome",
		"cat:guides",
		"doc:install",
		"doc:configure",
		"cat:advanced",
		"cat:deep",
		"cat:appendix",
	)
}
