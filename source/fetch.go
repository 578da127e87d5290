package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/ps2tools/go-pnach/store"
)

// Fetch adapts an ad-hoc retrieval of named pnach texts into a Source,
// for collections that live behind an API rather than on disk.
type Fetch struct {
	Name string
	Get  func(ctx context.Context) (map[string][]byte, error)
}

func (f Fetch) Label() string {
	return f.Name
}

func (f Fetch) Items(ctx context.Context) ([]store.Item, error) {
	files, err := f.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", f.Name, err)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names) // merge results must not depend on map order
	var items []store.Item
	for _, name := range names {
		items = append(items, itemFrom(f.Name, name, files[name]))
	}
	return items, nil
}
