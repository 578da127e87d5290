package format

import (
	"errors"
	"testing"
)

func TestParsePlace(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Place
	}{
		{"0", PlaceUnspecified},
		{"1", PlaceEE},
		{"2", PlaceIOP},
		{"EE", PlaceEE},
		{"ee", PlaceEE},
		{" IOP ", PlaceIOP},
	} {
		got, err := ParsePlace(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParsePlace("3"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("got %v, want ErrBadToken", err)
	}
}

func TestPlaceToken(t *testing.T) {
	// the builder resolves unspecified to EE
	if got := PlaceUnspecified.Token(); got != "EE" {
		t.Errorf("unspecified token %q", got)
	}
	if got := PlaceIOP.Token(); got != "IOP" {
		t.Errorf("iop token %q", got)
	}
}

func TestParsePatchType(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want PatchType
	}{
		{"byte", TypeByte},
		{"short", TypeShort},
		{"halfword", TypeShort},
		{"word", TypeWord},
		{"dword", TypeDword},
		{"double", TypeDword},
		{"doubleword", TypeDword},
		{"Extended", TypeExtended},
		{"moveable", TypeMoveable},
		{"move", TypeMoveable},
	} {
		got, err := ParsePatchType(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParsePatchType("wyrd"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("got %v, want ErrBadToken", err)
	}
}

func TestPatchTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParsePatchType(typ.Token())
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		if got != typ {
			t.Errorf("token round trip: %v -> %q -> %v", typ, typ.Token(), got)
		}
	}
}

func TestPatchTypeBits(t *testing.T) {
	for _, tc := range []struct {
		typ  PatchType
		bits int
	}{
		{TypeByte, 8},
		{TypeShort, 16},
		{TypeWord, 32},
		{TypeDword, 64},
		{TypeExtended, 32},
		{TypeMoveable, 32},
	} {
		if got := tc.typ.Bits(); got != tc.bits {
			t.Errorf("%v: got %d bits want %d", tc.typ, got, tc.bits)
		}
		if got := tc.typ.HexDigits(); got != tc.bits/4 {
			t.Errorf("%v: got %d hex digits want %d", tc.typ, got, tc.bits/4)
		}
	}
}

func TestParseRegion(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Region
	}{
		{"NTSC-U", RegionNTSCU},
		{"ntscu", RegionNTSCU},
		{"PAL", RegionPAL},
		{"NTSC-J", RegionNTSCJ},
		{"ntsc-k", RegionNTSCK},
	} {
		got, err := ParseRegion(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q: got %v want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseRegion("SECAM"); !errors.Is(err, ErrBadToken) {
		t.Fatalf("got %v, want ErrBadToken", err)
	}
}

func TestRegionTextRoundTrip(t *testing.T) {
	for _, r := range Regions() {
		d, err := r.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Region
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Errorf("%v -> %s -> %v", r, d, got)
		}
	}
}
