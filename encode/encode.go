package encode

import (
	"fmt"
	"io"

	"github.com/ps2tools/go-pnach/ir"
)

type EncState struct {
	identity *ir.GameIdentity
	comments bool

	Color func(Element, string) string
}

// Encode writes the canonical pnach rendering of sets to w: per set a
// gametitle line (when the name is non-empty), an optional comment
// line, then one patch line per entry in original order. Sets are
// separated by one blank line.
func Encode(sets []*ir.PatchSet, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{comments: true}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.header(w); err != nil {
		return err
	}
	for i, s := range sets {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := es.set(s, w); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) header(w io.Writer) error {
	id := es.identity
	if id == nil {
		return nil
	}
	if id.Serial != "" {
		region := ""
		if id.Region.String() != "Unknown" {
			region = " [" + id.Region.String() + "]"
		}
		if err := es.comment(w, id.Serial+region); err != nil {
			return err
		}
	}
	if id.CRC != "" {
		if err := es.comment(w, "CRC: 0x"+id.CRC); err != nil {
			return err
		}
	}
	if id.Serial != "" || id.CRC != "" {
		return writeString(w, "\n")
	}
	return nil
}

func (es *EncState) set(s *ir.PatchSet, w io.Writer) error {
	if s.Name != "" {
		line := es.color(DirectiveKey, "gametitle=") + es.color(SetName, s.Name)
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	if s.Description != "" {
		for _, ln := range splitLines(s.Description) {
			line := es.color(DirectiveKey, "comment=") + es.color(CommentText, ln)
			if err := writeString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	for _, e := range s.Entries {
		if err := es.entry(e, w); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) entry(e ir.PatchEntry, w io.Writer) error {
	line := es.color(DirectiveKey, "patch=") +
		es.color(PlaceToken, "1,"+e.Place.Token()) + "," +
		es.color(Address, fmt.Sprintf("%08X", e.Address)) + "," +
		es.color(TypeToken, e.Type.Token()) + "," +
		es.color(Value, fmt.Sprintf("%0*X", e.Type.HexDigits(), e.Value))
	if es.comments && e.RawComment != "" {
		line += " " + es.color(CommentText, "// "+e.RawComment)
	}
	return writeString(w, line+"\n")
}

func (es *EncState) comment(w io.Writer, text string) error {
	return writeString(w, es.color(CommentText, "// "+text)+"\n")
}

func (es *EncState) color(el Element, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(el, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func splitLines(s string) []string {
	var out []string
	for start, i := 0, 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
