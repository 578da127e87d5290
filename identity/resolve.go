package identity

import (
	"strings"

	"github.com/ps2tools/go-pnach/ir"
)

// Partial is an incomplete identity key: any subset of title, serial
// and CRC, in any case.
type Partial struct {
	Title  string
	Serial string
	CRC    string
}

func (p Partial) Empty() bool {
	return p.Title == "" && p.Serial == "" && p.CRC == ""
}

// Status is a resolution outcome. NotFound and Ambiguous are results,
// not errors; callers must handle all three.
type Status int

const (
	StatusNotFound Status = iota
	StatusResolved
	StatusAmbiguous
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "not found"
	}
}

type Resolution struct {
	Status     Status
	Identity   ir.GameIdentity   // valid when Status == StatusResolved
	Candidates []ir.GameIdentity // the match set when Status == StatusAmbiguous
}

// Resolve resolves a partial key against the table. Serial and CRC are
// unique keys and are tried first, in that order. A title alone is
// matched case-insensitively: exact normalized equality, then
// substring. One match resolves; several are Ambiguous and the caller
// disambiguates (typically by region).
func (t *Table) Resolve(p Partial) Resolution {
	if serial := NormalizeSerial(p.Serial); serial != "" {
		if i, ok := t.bySerial[serial]; ok {
			return Resolution{Status: StatusResolved, Identity: t.entries[i]}
		}
	}
	if crc := NormalizeCRC(p.CRC); crc != "" {
		if i, ok := t.byCRC[crc]; ok {
			return Resolution{Status: StatusResolved, Identity: t.entries[i]}
		}
	}
	if p.Title == "" {
		return Resolution{Status: StatusNotFound}
	}
	return t.resolveTitle(p.Title)
}

func (t *Table) resolveTitle(title string) Resolution {
	want := NormalizeTitle(title)
	var exact, partial []ir.GameIdentity
	for _, e := range t.entries {
		have := NormalizeTitle(e.Title)
		switch {
		case have == want:
			exact = append(exact, e)
		case strings.Contains(have, want), strings.Contains(want, have):
			partial = append(partial, e)
		}
	}
	matches := exact
	if len(matches) == 0 {
		matches = partial
	}
	switch len(matches) {
	case 0:
		return Resolution{Status: StatusNotFound}
	case 1:
		return Resolution{Status: StatusResolved, Identity: matches[0]}
	default:
		return Resolution{Status: StatusAmbiguous, Candidates: matches}
	}
}
