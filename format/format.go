package format

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadToken = errors.New("bad token")

// Place is the memory domain a patch applies to.
type Place int

const (
	PlaceUnspecified Place = iota
	PlaceEE
	PlaceIOP
)

// ParsePlace maps a place token to its Place. Both the numeric form of
// the 4-field patch dialect ("0", "1", "2") and the cpu names of the
// 5-field dialect ("EE", "IOP") are accepted, case-insensitively.
func ParsePlace(v string) (Place, error) {
	p, ok := map[string]Place{
		"0":   PlaceUnspecified,
		"1":   PlaceEE,
		"ee":  PlaceEE,
		"2":   PlaceIOP,
		"iop": PlaceIOP,
	}[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: place %q", ErrBadToken, v)
}

func (p Place) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// Token returns the cpu token the builder emits. Unspecified places
// build as EE, which is what every historical dialect meant by default.
func (p Place) Token() string {
	if p == PlaceIOP {
		return "IOP"
	}
	return "EE"
}

func (p Place) MarshalText() ([]byte, error) {
	switch p {
	case PlaceUnspecified:
		return []byte(""), nil
	case PlaceEE:
		return []byte("EE"), nil
	case PlaceIOP:
		return []byte("IOP"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a place>", p)
	}
}

func (p *Place) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		*p = PlaceUnspecified
		return nil
	}
	pp, err := ParsePlace(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// PatchType is the width/interpretation tag of one patch action.
type PatchType int

const (
	TypeByte PatchType = iota
	TypeShort
	TypeWord
	TypeDword
	TypeExtended
	TypeMoveable
)

// ParsePatchType maps a type token to its PatchType. The canonical
// tokens are byte, short, word, dword, extended and moveable; the
// historical aliases halfword, double, doubleword and move are folded
// into them.
func ParsePatchType(v string) (PatchType, error) {
	t, ok := map[string]PatchType{
		"byte":       TypeByte,
		"short":      TypeShort,
		"halfword":   TypeShort,
		"word":       TypeWord,
		"dword":      TypeDword,
		"double":     TypeDword,
		"doubleword": TypeDword,
		"extended":   TypeExtended,
		"moveable":   TypeMoveable,
		"move":       TypeMoveable,
	}[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: patch type %q", ErrBadToken, v)
}

// Token returns the canonical textual token for t, the inverse of
// ParsePatchType. The emulator consumes these bit-for-bit.
func (t PatchType) Token() string {
	switch t {
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeWord:
		return "word"
	case TypeDword:
		return "dword"
	case TypeExtended:
		return "extended"
	case TypeMoveable:
		return "moveable"
	default:
		return fmt.Sprintf("<err: %d is not a patch type>", t)
	}
}

func (t PatchType) String() string { return t.Token() }

// Bits returns the payload width in bits.
func (t PatchType) Bits() int {
	switch t {
	case TypeByte:
		return 8
	case TypeShort:
		return 16
	case TypeDword:
		return 64
	default:
		// word, extended and moveable all carry 32-bit payloads
		return 32
	}
}

// HexDigits returns the canonical zero-padded value width in hex digits.
func (t PatchType) HexDigits() int { return t.Bits() / 4 }

func (t PatchType) MarshalText() ([]byte, error) {
	return []byte(t.Token()), nil
}

func (t *PatchType) UnmarshalText(d []byte) error {
	tt, err := ParsePatchType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// Types returns all patch types in token-table order.
func Types() []PatchType {
	return []PatchType{TypeByte, TypeShort, TypeWord, TypeDword, TypeExtended, TypeMoveable}
}
