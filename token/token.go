// Package token splits pnach text into classified lines for the parser.
package token

import "strings"

type Kind int

const (
	Blank Kind = iota
	Comment
	Directive // key=value
	Section   // [Name]
	Other     // unrecognized non-blank text
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Directive:
		return "directive"
	case Section:
		return "section"
	default:
		return "other"
	}
}

// Line is one classified input line. For directives, Key is the
// lowercased directive name, Value the text right of '=' with any
// trailing inline // comment stripped, and Comment that stripped
// inline comment. Raw preserves the original line for diagnostics.
type Line struct {
	Kind    Kind
	Num     int // 1-based
	Raw     string
	Key     string
	Value   string
	Comment string
	Name    string // section name for Kind == Section
}

// Fields splits a directive value on commas, trimming whitespace
// around each field. Whitespace around '=' and ',' is tolerated by
// the grammar.
func (l Line) Fields() []string {
	parts := strings.Split(l.Value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Split classifies every line of text. It never fails; lines that fit
// no shape come back as Other for the parser to diagnose.
func Split(text string) []Line {
	rawLines := strings.Split(text, "\n")
	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimRight(raw, "\r")
		lines = append(lines, classify(raw, i+1))
	}
	return lines
}

func classify(raw string, num int) Line {
	l := Line{Num: num, Raw: raw}
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		l.Kind = Blank
	case strings.HasPrefix(s, "//"), strings.HasPrefix(s, "#"), strings.HasPrefix(s, ";"):
		l.Kind = Comment
		l.Comment = strings.TrimSpace(strings.TrimLeft(s, "/#; "))
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		l.Kind = Section
		l.Name = strings.TrimSpace(s[1 : len(s)-1])
	default:
		eq := strings.Index(s, "=")
		if eq <= 0 {
			l.Kind = Other
			return l
		}
		l.Kind = Directive
		l.Key = strings.ToLower(strings.TrimSpace(s[:eq]))
		val := strings.TrimSpace(s[eq+1:])
		if ci := strings.Index(val, "//"); ci >= 0 {
			l.Comment = strings.TrimSpace(val[ci+2:])
			val = strings.TrimSpace(val[:ci])
		}
		l.Value = val
	}
	return l
}
