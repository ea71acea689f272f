package docs

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"docnav/internal/fetch"
)

// fetchConcurrency caps the number of outstanding resource fetches per
// resolution run.
const fetchConcurrency = 16

// Loader fetches one version's dataset and resolves it into a category
// forest. The loader exclusively owns the resolved structures for the
// lifetime of one version's session; switching versions discards them and
// re-runs from empty state.
type Loader struct {
	fetcher fetch.Fetcher
	log     *slog.Logger
}

func NewLoader(f fetch.Fetcher) *Loader {
	return &Loader{fetcher: f, log: slog.Default()}
}

// LoadVersionData fetches and resolves the dataset for version. It fails
// only if the index manifest itself cannot be loaded; every other failure is
// absorbed as a logged omission.
func (l *Loader) LoadVersionData(ctx context.Context, version string) (*VersionData, error) {
	raw, err := l.FetchRaw(ctx, version)
	if err != nil {
		return nil, err
	}
	return l.Resolve(raw), nil
}

// FetchRaw fetches the index manifest for version, then all listed category
// and item resources concurrently. Each fetch is an independent attempt: a
// failed resource is logged and excluded without failing the batch. Surviving
// resources keep manifest declaration order.
func (l *Loader) FetchRaw(ctx context.Context, version string) (*RawDataset, error) {
	base := "data/" + version

	var index Index
	if err := l.fetcher.JSON(ctx, base+"/index.json", &index); err != nil {
		return nil, &ResolutionError{Version: version, Err: err}
	}

	catSlots := make([]*Category, len(index.Categories))
	itemSlots := make([]*Item, len(index.Items))

	g := new(errgroup.Group)
	g.SetLimit(fetchConcurrency)

	for i, id := range index.Categories {
		g.Go(func() error {
			path := fmt.Sprintf("%s/categories/%s.json", base, id)
			var cat Category
			if err := l.fetcher.JSON(ctx, path, &cat); err != nil {
				l.log.Warn("failed to load category", "version", version, "id", id, "error", err)
				return nil
			}
			catSlots[i] = &cat
			return nil
		})
	}
	for i, id := range index.Items {
		g.Go(func() error {
			path := fmt.Sprintf("%s/items/%s.json", base, id)
			var item Item
			if err := l.fetcher.JSON(ctx, path, &item); err != nil {
				l.log.Warn("failed to load item", "version", version, "id", id, "error", err)
				return nil
			}
			itemSlots[i] = &item
			return nil
		})
	}
	g.Wait()

	raw := &RawDataset{Version: version, Index: index}
	for _, c := range catSlots {
		if c != nil {
			raw.Categories = append(raw.Categories, *c)
		}
	}
	for _, it := range itemSlots {
		if it != nil {
			raw.Items = append(raw.Items, it)
		}
	}
	return raw, nil
}

// Resolve assembles a fetched dataset into its root-category forest, flat
// item list, and standalone docs. Resolution is synchronous and idempotent:
// resolving the same dataset twice yields structurally identical output.
func (l *Loader) Resolve(raw *RawDataset) *VersionData {
	byID := make(map[string]*Item, len(raw.Items))
	for _, it := range raw.Items {
		byID[it.ID] = it
	}

	catByID := make(map[string]*Category, len(raw.Categories))
	for i := range raw.Categories {
		c := &raw.Categories[i]
		catByID[c.ID] = c
	}

	// Root set: categories not listed as a child by any loaded category.
	childIDs := make(map[string]bool)
	for i := range raw.Categories {
		for _, cid := range raw.Categories[i].Children {
			if cid != "" {
				childIDs[cid] = true
			}
		}
	}

	r := &resolver{
		items: byID,
		cats:  catByID,
		used:  make(map[string]bool),
		log:   l.log,
	}

	var tree []*ResolvedCategory
	onPath := make(map[string]bool)
	for i := range raw.Categories {
		c := &raw.Categories[i]
		if c.ID == "" || childIDs[c.ID] {
			continue
		}
		tree = append(tree, r.resolve(c, onPath))
	}

	// Doc usage counts across the whole category universe, including
	// categories that never end up under a root.
	for i := range raw.Categories {
		for _, id := range raw.Categories[i].Docs {
			if _, ok := byID[id]; ok {
				r.used[id] = true
			}
		}
	}

	var standalone []*Item
	for _, it := range raw.Items {
		if !r.used[it.ID] {
			standalone = append(standalone, it)
		}
	}

	return &VersionData{Items: raw.Items, Tree: tree, StandaloneDocs: standalone}
}

type resolver struct {
	items map[string]*Item
	cats  map[string]*Category
	used  map[string]bool
	log   *slog.Logger
}

// resolve converts one raw category depth-first. onPath holds the category
// ids on the active resolution path; a child edge that re-enters it is a
// cycle and is dropped with a warning.
func (r *resolver) resolve(c *Category, onPath map[string]bool) *ResolvedCategory {
	onPath[c.ID] = true
	defer delete(onPath, c.ID)

	out := &ResolvedCategory{ID: c.ID, Title: c.Title, Description: c.Description}

	for _, id := range c.Docs {
		if id == "" {
			r.log.Warn("invalid doc id in category", "category", c.ID)
			continue
		}
		item, ok := r.items[id]
		if !ok {
			r.log.Warn("referenced doc not found", "category", c.ID, "doc", id)
			continue
		}
		r.used[id] = true
		out.Docs = append(out.Docs, item)
	}

	for _, cid := range c.Children {
		if cid == "" {
			r.log.Warn("invalid child category id", "category", c.ID)
			continue
		}
		child, ok := r.cats[cid]
		if !ok {
			r.log.Warn("referenced child category not found", "category", c.ID, "child", cid)
			continue
		}
		if onPath[cid] {
			r.log.Warn("cyclic category reference dropped", "category", c.ID, "child", cid)
			continue
		}
		out.Children = append(out.Children, r.resolve(child, onPath))
	}

	return out
}
