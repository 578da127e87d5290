package ir

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Hash returns a 64-bit content hash over (name, entries), order
// sensitive. Two sets hash equal exactly when Equal reports true.
// xxhash is seedless, so hashes are stable across processes; merge
// dedup decisions keyed on them survive a save/load cycle.
func (s *PatchSet) Hash() uint64 {
	h := xxhash.New()
	writeString(h, s.Name)
	var b [8]byte
	for i := range s.Entries {
		e := &s.Entries[i]
		binary.LittleEndian.PutUint32(b[:4], e.Address)
		h.Write(b[:4])
		h.Write([]byte{byte(e.Type), byte(e.Place)})
		binary.LittleEndian.PutUint64(b[:], e.Value)
		h.Write(b[:])
		writeString(h, e.RawComment)
	}
	return h.Sum64()
}

func writeString(h interface{ Write([]byte) (int, error) }, s string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
	h.Write(b[:])
	h.Write([]byte(s))
}
