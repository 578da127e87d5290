package encode

import "github.com/ps2tools/go-pnach/ir"

type EncodeOption func(*EncState)

// EncodeIdentity emits a comment header carrying the game's serial,
// region and CRC before the first set, the way collection files label
// themselves.
func EncodeIdentity(id ir.GameIdentity) EncodeOption {
	return func(es *EncState) { es.identity = &id }
}

// EncodeComments controls whether inline entry comments are emitted.
// They are by default.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// EncodeColors renders with terminal colors. Colored output is for
// viewing only; it does not round-trip.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
