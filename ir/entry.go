package ir

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ps2tools/go-pnach/format"
)

var ErrBadEntry = errors.New("bad patch entry")

// String renders the canonical patch line for e, the form the emulator
// consumes: patch=1,<cpu>,<addr8>,<type>,<value zero-padded to width>.
func (e PatchEntry) String() string {
	return fmt.Sprintf("patch=1,%s,%08X,%s,%0*X",
		e.Place.Token(), e.Address, e.Type.Token(), e.Type.HexDigits(), e.Value)
}

// ParseEntry parses one canonical patch line, as stored in database
// code lists. It accepts both the 4-field and the 5-field dialect but,
// unlike the parser, it is strict: a bad line is an error, not a
// diagnostic.
func ParseEntry(line string) (PatchEntry, error) {
	var e PatchEntry
	s := strings.TrimSpace(line)
	low := strings.ToLower(s)
	if !strings.HasPrefix(low, "patch") {
		return e, fmt.Errorf("%w: not a patch line: %q", ErrBadEntry, line)
	}
	eq := strings.Index(s, "=")
	if eq < 0 {
		return e, fmt.Errorf("%w: no '=': %q", ErrBadEntry, line)
	}
	fields := strings.Split(s[eq+1:], ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	var placeTok, addrTok, typeTok, valTok string
	switch len(fields) {
	case 4:
		placeTok, addrTok, typeTok, valTok = fields[0], fields[1], fields[2], fields[3]
	case 5:
		// 5-field dialect: field 0 is the activation mode, field 1 the cpu
		placeTok, addrTok, typeTok, valTok = fields[1], fields[2], fields[3], fields[4]
	default:
		return e, fmt.Errorf("%w: %d fields: %q", ErrBadEntry, len(fields), line)
	}
	place, err := format.ParsePlace(placeTok)
	if err != nil {
		return e, fmt.Errorf("%w: %v", ErrBadEntry, err)
	}
	typ, err := format.ParsePatchType(typeTok)
	if err != nil {
		return e, fmt.Errorf("%w: %v", ErrBadEntry, err)
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(addrTok, "0x"), 16, 32)
	if err != nil {
		return e, fmt.Errorf("%w: address %q", ErrBadEntry, addrTok)
	}
	val, err := strconv.ParseUint(strings.TrimPrefix(valTok, "0x"), 16, typ.Bits())
	if err != nil {
		return e, fmt.Errorf("%w: value %q", ErrBadEntry, valTok)
	}
	e.Place = place
	e.Type = typ
	e.Address = uint32(addr)
	e.Value = val
	return e, nil
}
