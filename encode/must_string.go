package encode

import (
	"bytes"
	"strings"

	"github.com/ps2tools/go-pnach/ir"
)

func MustString(sets []*ir.PatchSet, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sets, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}
