package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
	"github.com/ps2tools/go-pnach/token"
)

type parseOpts struct {
	implicitName string
}

type ParseOption func(*parseOpts)

// ImplicitName names the implicit set that collects lines appearing
// before any gametitle directive. Default is the empty name.
func ImplicitName(name string) ParseOption {
	return func(o *parseOpts) { o.implicitName = name }
}

// Parse parses pnach text into patch sets plus the diagnostics for
// every line it had to skip. It never returns an error; the worst
// outcome is zero sets and many diagnostics.
func Parse(text string, opts ...ParseOption) ([]*ir.PatchSet, []format.Diagnostic) {
	doc := ParseDocument(text, opts...)
	return doc.Sets, doc.Diags
}

// Document is the result of parsing one pnach file: the patch sets,
// identity hints mined from the text, and accumulated diagnostics.
type Document struct {
	Sets     []*ir.PatchSet
	Identity ir.GameIdentity
	Serials  []string
	Diags    []format.Diagnostic
}

func ParseDocument(text string, opts ...ParseOption) *Document {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{doc: &Document{}, opts: pOpts}
	for _, ln := range token.Split(text) {
		p.line(ln)
	}
	p.finish()
	p.hints(text)
	return p.doc
}

type parser struct {
	doc  *Document
	opts *parseOpts
	cur  *ir.PatchSet
}

func (p *parser) line(ln token.Line) {
	switch ln.Kind {
	case token.Blank, token.Comment:
		// ignored verbatim, not diagnostics
	case token.Section:
		// INI-style cheat header dialect: [Cheats/Name] or [Name]
		p.open(strings.TrimPrefix(ln.Name, "Cheats/"))
	case token.Directive:
		p.directive(ln)
	default:
		p.diag(ln, format.UnknownDirective, "unrecognized line")
	}
}

func (p *parser) directive(ln token.Line) {
	switch {
	case ln.Key == "gametitle":
		if p.doc.Identity.Title == "" {
			// first occurrence per file wins as the document title
			p.doc.Identity.Title = ln.Value
		}
		p.open(ln.Value)
	case ln.Key == "comment":
		s := p.current()
		if s.Description == "" {
			s.Description = ln.Value
		} else {
			s.Description += "\n" + ln.Value
		}
	case ln.Key == "patch":
		p.patch(ln)
	case ln.Key == "serial":
		// metadata dialect some collections use; an identity hint
		p.doc.Identity.Serial = strings.ToUpper(ln.Value)
	case strings.HasPrefix(ln.Key, "code"):
		// code<N>=<patch line or raw pair> dialect
		p.code(ln)
	default:
		p.diag(ln, format.UnknownDirective, fmt.Sprintf("directive %q", ln.Key))
	}
}

func (p *parser) patch(ln token.Line) {
	fields := ln.Fields()
	var placeTok, addrTok, typeTok, valTok string
	switch len(fields) {
	case 4:
		placeTok, addrTok, typeTok, valTok = fields[0], fields[1], fields[2], fields[3]
	case 5:
		// historical 5-field dialect: <mode>,<cpu>,<addr>,<type>,<value>
		placeTok, addrTok, typeTok, valTok = fields[1], fields[2], fields[3], fields[4]
	default:
		p.diag(ln, format.MissingField, fmt.Sprintf("%d of 4 fields", len(fields)))
		return
	}
	place, err := format.ParsePlace(placeTok)
	if err != nil {
		p.diag(ln, format.MalformedValue, fmt.Sprintf("place %q", placeTok))
		return
	}
	typ, err := format.ParsePatchType(typeTok)
	if err != nil {
		p.diag(ln, format.MalformedValue, fmt.Sprintf("type %q", typeTok))
		return
	}
	addr, err := parseHex(addrTok, 32)
	if err != nil {
		p.diag(ln, format.MalformedAddress, fmt.Sprintf("%q", addrTok))
		return
	}
	val, err := parseHex(valTok, typ.Bits())
	if err != nil {
		p.diag(ln, format.MalformedValue, fmt.Sprintf("%q", valTok))
		return
	}
	p.append(ir.PatchEntry{
		Address:    uint32(addr),
		Type:       typ,
		Value:      val,
		Place:      place,
		RawComment: ln.Comment,
	})
}

func (p *parser) code(ln token.Line) {
	v := ln.Value
	if strings.HasPrefix(strings.ToLower(v), "patch") {
		e, err := ir.ParseEntry(v)
		if err != nil {
			p.diag(ln, format.MalformedValue, err.Error())
			return
		}
		e.RawComment = ln.Comment
		p.append(e)
		return
	}
	// raw address/value pair
	parts := strings.Fields(strings.NewReplacer(",", " ", "=", " ").Replace(v))
	if len(parts) < 2 {
		p.diag(ln, format.MissingField, "want <address> <value>")
		return
	}
	addr, err := parseHex(parts[0], 32)
	if err != nil {
		p.diag(ln, format.MalformedAddress, fmt.Sprintf("%q", parts[0]))
		return
	}
	val, err := parseHex(parts[1], 32)
	if err != nil {
		p.diag(ln, format.MalformedValue, fmt.Sprintf("%q", parts[1]))
		return
	}
	p.append(ir.PatchEntry{
		Address:    uint32(addr),
		Type:       format.TypeWord,
		Value:      val,
		RawComment: ln.Comment,
	})
}

func parseHex(tok string, bits int) (uint64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(tok), "0x")
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 16, bits)
}

// open starts a new patch set named name and makes it current.
func (p *parser) open(name string) {
	s := &ir.PatchSet{Name: name, Enabled: true}
	p.doc.Sets = append(p.doc.Sets, s)
	p.cur = s
}

// current returns the open set, creating the implicit one for lines
// that appear before any gametitle.
func (p *parser) current() *ir.PatchSet {
	if p.cur == nil {
		p.open(p.opts.implicitName)
	}
	return p.cur
}

func (p *parser) append(e ir.PatchEntry) {
	s := p.current()
	s.Entries = append(s.Entries, e)
}

func (p *parser) diag(ln token.Line, kind format.DiagKind, msg string) {
	p.doc.Diags = append(p.doc.Diags, format.Diagnostic{
		Kind: kind,
		Line: ln.Num,
		Text: strings.TrimSpace(ln.Raw),
		Msg:  msg,
	})
}

// finish drops sets that carry no information: unnamed and empty.
func (p *parser) finish() {
	sets := p.doc.Sets[:0]
	for _, s := range p.doc.Sets {
		if s.Name == "" && len(s.Entries) == 0 && s.Description == "" {
			continue
		}
		sets = append(sets, s)
	}
	p.doc.Sets = sets
}
