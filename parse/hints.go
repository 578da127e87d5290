package parse

import (
	"regexp"
	"sort"
	"strings"
)

// Collection files carry identity in loose conventions: serials appear
// anywhere in comments or titles, CRCs in a "CRC: 0x…" comment. These
// are hints; resolution against the identity table is the caller's job.

var (
	serialRE = regexp.MustCompile(
		`(?i)\b(SCUS|SLUS|SLES|SCES|SLPS|SLPM|SCPS|SCAJ|SLKA|ULUS|UCUS|PBPX|PAPX|TCUS|TCES)[-_ ]?\d{3,6}\b`)
	crcRE = regexp.MustCompile(`\bCRC\s*[:=]\s*(?:0x)?([0-9A-Fa-f]{8})\b`)
)

func (p *parser) hints(text string) {
	p.doc.Serials = findSerials(text)
	if p.doc.Identity.Serial == "" && len(p.doc.Serials) > 0 {
		p.doc.Identity.Serial = p.doc.Serials[0]
	}
	if m := crcRE.FindStringSubmatch(text); m != nil {
		p.doc.Identity.CRC = strings.ToUpper(m[1])
	}
}

// findSerials returns every serial mentioned in text, uppercased and
// hyphenated, deduplicated, in sorted order.
func findSerials(text string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range serialRE.FindAllString(text, -1) {
		s := strings.ToUpper(m)
		s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
