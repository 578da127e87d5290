package identity

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"

	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
)

//go:embed table.yaml
var tableYAML []byte

// Table is the static identity mapping: title <-> serial <-> crc <->
// region. It is pre-deduplicated on serial and CRC at build time,
// immutable after construction, and safe for concurrent readers.
type Table struct {
	entries  []ir.GameIdentity
	bySerial map[string]int
	byCRC    map[string]int
}

type tableYAMLDoc struct {
	Games []struct {
		Title  string `yaml:"title"`
		Serial string `yaml:"serial"`
		CRC    string `yaml:"crc"`
		Region string `yaml:"region"`
	} `yaml:"games"`
}

// LoadTable builds a Table from YAML mapping data.
func LoadTable(d []byte) (*Table, error) {
	doc := tableYAMLDoc{}
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("identity table: %w", err)
	}
	entries := make([]ir.GameIdentity, 0, len(doc.Games))
	for _, g := range doc.Games {
		id := ir.GameIdentity{
			Title:  strings.TrimSpace(g.Title),
			Serial: NormalizeSerial(g.Serial),
			CRC:    NormalizeCRC(g.CRC),
		}
		if g.Region != "" {
			r, err := format.ParseRegion(g.Region)
			if err != nil {
				return nil, fmt.Errorf("identity table: %q: %w", g.Title, err)
			}
			id.Region = r
		} else {
			id.Region = RegionFromSerial(id.Serial)
		}
		entries = append(entries, id)
	}
	return NewTable(entries), nil
}

// NewTable builds a Table from identities. Serial and CRC are unique
// keys; on duplicates, first wins.
func NewTable(entries []ir.GameIdentity) *Table {
	t := &Table{
		entries:  entries,
		bySerial: make(map[string]int, len(entries)),
		byCRC:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Serial != "" {
			if _, ok := t.bySerial[e.Serial]; !ok {
				t.bySerial[e.Serial] = i
			}
		}
		if e.CRC != "" {
			if _, ok := t.byCRC[e.CRC]; !ok {
				t.byCRC[e.CRC] = i
			}
		}
	}
	return t
}

// Len returns the number of identities in the table.
func (t *Table) Len() int { return len(t.entries) }

var (
	bundledOnce  sync.Once
	bundledTable *Table
)

// Bundled returns the identity table compiled into the binary, loading
// it on first use. The data is fixed at build time, so a load failure
// is a build defect and panics.
func Bundled() *Table {
	bundledOnce.Do(func() {
		t, err := LoadTable(tableYAML)
		if err != nil {
			panic(err)
		}
		bundledTable = t
	})
	return bundledTable
}
