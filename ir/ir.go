package ir

import (
	"slices"

	"github.com/ps2tools/go-pnach/format"
)

// PatchEntry is one logical patch action: write Value (whose width is
// given by Type) at Address in the Place memory domain.
type PatchEntry struct {
	Address    uint32
	Type       format.PatchType
	Value      uint64
	Place      format.Place
	RawComment string // inline comment, order-preserving
}

func (e PatchEntry) Equal(o PatchEntry) bool {
	return e.Address == o.Address &&
		e.Type == o.Type &&
		e.Value == o.Value &&
		e.Place == o.Place &&
		e.RawComment == o.RawComment
}

// PatchSet is one named cheat: an ordered group of entries. Order is
// significant and must survive re-serialization.
type PatchSet struct {
	Name        string
	Description string
	Enabled     bool
	Entries     []PatchEntry
}

func (s *PatchSet) Clone() *PatchSet {
	res := &PatchSet{}
	*res = *s
	res.Entries = slices.Clone(s.Entries)
	return res
}

// Equal reports whether two sets have the same name and the same
// entries in the same order. Description and Enabled are presentation
// state and do not participate; see Hash.
func (s *PatchSet) Equal(o *PatchSet) bool {
	if s.Name != o.Name || len(s.Entries) != len(o.Entries) {
		return false
	}
	for i := range s.Entries {
		if !s.Entries[i].Equal(o.Entries[i]) {
			return false
		}
	}
	return true
}

// GameIdentity identifies a game. Serial and CRC are each globally
// unique keys; Title alone is ambiguous. An identity is complete when
// at least one of Serial or CRC is present.
type GameIdentity struct {
	Title  string        `json:"title,omitempty"`
	Serial string        `json:"serial,omitempty"`
	CRC    string        `json:"crc,omitempty"`
	Region format.Region `json:"region,omitempty"`
}

func (id GameIdentity) Complete() bool {
	return id.Serial != "" || id.CRC != ""
}

// FillFrom copies fields from o that id is missing. Existing fields
// win; FillFrom never overwrites.
func (id GameIdentity) FillFrom(o GameIdentity) GameIdentity {
	if id.Title == "" {
		id.Title = o.Title
	}
	if id.Serial == "" {
		id.Serial = o.Serial
	}
	if id.CRC == "" {
		id.CRC = o.CRC
	}
	if id.Region == format.RegionUnknown {
		id.Region = o.Region
	}
	return id
}

// RegionRecord is one region's slice of a game: its serial, its crc
// and its deduplicated cheats.
type RegionRecord struct {
	Serial string      `json:"serial,omitempty"`
	CRC    string      `json:"crc,omitempty"`
	Cheats []*PatchSet `json:"cheats"`
}

// GameRecord is the unit of the merged database: one title mapped to
// its per-region records. The merger exclusively owns and mutates
// these; sources only contribute immutable candidates.
type GameRecord struct {
	Title   string                   `json:"title"`
	Regions map[string]*RegionRecord `json:"regions"`
}

func (g *GameRecord) CheatCount() int {
	n := 0
	for _, rr := range g.Regions {
		n += len(rr.Cheats)
	}
	return n
}
