package item

import (
	"context"
	"fmt"
)

// View concatenates every source's canonical Items into one collection.
// Order is source registration order, then insertion order within each
// source; nothing is sorted by content. The view holds no state between
// calls — each Unify reads the backing store fresh.
type View struct {
	sources []Source
}

// NewView builds a unified view over the given sources. Registration
// order fixes the output order.
func NewView(sources ...Source) *View {
	return &View{sources: sources}
}

// Unify returns all Items across all sources. With finishedOnly set it
// keeps only finished Items, which excludes quotes entirely since a quote
// has no finished state.
func (v *View) Unify(ctx context.Context, finishedOnly bool) ([]Item, error) {
	var all []Item
	for i, src := range v.sources {
		items, err := src.Items(ctx)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		for _, it := range items {
			if finishedOnly && !it.IsFinished {
				continue
			}
			all = append(all, it)
		}
	}
	return all, nil
}
