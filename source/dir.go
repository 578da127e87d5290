package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ps2tools/go-pnach/store"
)

// Dir is a directory tree of .pnach files. Non-pnach files are
// ignored; unreadable pnach files abort the scan.
type Dir struct {
	Path string
}

func (d Dir) Label() string {
	return filepath.Base(filepath.Clean(d.Path))
}

func (d Dir) Items(ctx context.Context) ([]store.Item, error) {
	var items []store.Item
	err := filepath.WalkDir(d.Path, func(p string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if de.IsDir() || !isPnach(de.Name()) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		items = append(items, itemFrom(d.Label(), de.Name(), data))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", d.Path, err)
	}
	return items, nil
}
