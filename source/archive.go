package source

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"

	"github.com/ps2tools/go-pnach/store"
)

// Archive is a zip or 7z file of pnach files, the form cheat
// collections are usually distributed in. The whole archive is read
// into memory; collection archives are small.
type Archive struct {
	Path string
}

func (a Archive) Label() string {
	name := filepath.Base(a.Path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (a Archive) Items(ctx context.Context) ([]store.Item, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	switch strings.ToLower(filepath.Ext(a.Path)) {
	case ".zip":
		return a.zipItems(ctx, data)
	case ".7z":
		return a.sevenZipItems(ctx, data)
	default:
		return nil, fmt.Errorf("archive %s: unsupported format", a.Path)
	}
}

func (a Archive) zipItems(ctx context.Context, data []byte) ([]store.Item, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.Path, err)
	}
	var items []store.Item
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() || !isPnach(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", f.Name, a.Path, err)
		}
		d, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s in %s: %w", f.Name, a.Path, err)
		}
		items = append(items, itemFrom(a.Label(), f.Name, d))
	}
	return items, nil
}

func (a Archive) sevenZipItems(ctx context.Context, data []byte) ([]store.Item, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.Path, err)
	}
	var items []store.Item
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() || !isPnach(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in %s: %w", f.Name, a.Path, err)
		}
		d, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s in %s: %w", f.Name, a.Path, err)
		}
		items = append(items, itemFrom(a.Label(), f.Name, d))
	}
	return items, nil
}
