package format

import (
	"fmt"
	"strings"
)

// Region is a release territory. Serial and CRC values differ per
// region for the same title.
type Region int

const (
	RegionUnknown Region = iota
	RegionNTSCU
	RegionPAL
	RegionNTSCJ
	RegionNTSCK
)

func ParseRegion(v string) (Region, error) {
	r, ok := map[string]Region{
		"ntsc-u":  RegionNTSCU,
		"ntscu":   RegionNTSCU,
		"pal":     RegionPAL,
		"ntsc-j":  RegionNTSCJ,
		"ntscj":   RegionNTSCJ,
		"ntsc-k":  RegionNTSCK,
		"ntsck":   RegionNTSCK,
		"unknown": RegionUnknown,
	}[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return r, nil
	}
	return 0, fmt.Errorf("%w: region %q", ErrBadToken, v)
}

func (r Region) String() string {
	switch r {
	case RegionNTSCU:
		return "NTSC-U"
	case RegionPAL:
		return "PAL"
	case RegionNTSCJ:
		return "NTSC-J"
	case RegionNTSCK:
		return "NTSC-K"
	default:
		return "Unknown"
	}
}

func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Region) UnmarshalText(d []byte) error {
	rr, err := ParseRegion(string(d))
	if err != nil {
		return err
	}
	*r = rr
	return nil
}

// Regions returns the known regions, unknown excluded.
func Regions() []Region {
	return []Region{RegionNTSCU, RegionPAL, RegionNTSCJ, RegionNTSCK}
}
