package identity

import (
	"regexp"
	"strings"

	"github.com/ps2tools/go-pnach/format"
)

var serialShape = regexp.MustCompile(`^([A-Z]+)[-_ ]?(\d{3,6})$`)

// NormalizeSerial canonicalizes a serial to uppercase hyphenated form
// (e.g. "slus 20946" -> "SLUS-20946"). Input that does not look like a
// serial comes back uppercased and trimmed, unhyphenated.
func NormalizeSerial(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	m := serialShape.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return m[1] + "-" + m[2]
}

// NormalizeCRC canonicalizes a CRC to 8 uppercase hex digits,
// left-padding short values with zeros. Values that are not hex come
// back empty.
func NormalizeCRC(s string) string {
	s = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "0X")))
	if s == "" || len(s) > 8 {
		return ""
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return ""
		}
	}
	return strings.Repeat("0", 8-len(s)) + s
}

// NormalizeTitle lowercases and trims a title for use as a grouping
// and comparison key.
func NormalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RegionFromSerial infers the release territory from the serial's
// catalog prefix.
func RegionFromSerial(serial string) format.Region {
	s := NormalizeSerial(serial)
	switch {
	case strings.HasPrefix(s, "SLUS"), strings.HasPrefix(s, "SCUS"):
		return format.RegionNTSCU
	case strings.HasPrefix(s, "SLES"), strings.HasPrefix(s, "SCES"):
		return format.RegionPAL
	case strings.HasPrefix(s, "SLPS"), strings.HasPrefix(s, "SCPS"), strings.HasPrefix(s, "SLPM"):
		return format.RegionNTSCJ
	case strings.HasPrefix(s, "SLKA"):
		return format.RegionNTSCK
	default:
		return format.RegionUnknown
	}
}
