package ir

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ps2tools/go-pnach/format"
)

func TestEntryString(t *testing.T) {
	for _, tc := range []struct {
		e    PatchEntry
		want string
	}{
		{
			PatchEntry{Address: 0x0020B7A6, Type: format.TypeExtended, Value: 0x447A, Place: format.PlaceEE},
			"patch=1,EE,0020B7A6,extended,0000447A",
		},
		{
			PatchEntry{Address: 0x0020B7A6, Type: format.TypeByte, Value: 0x7A, Place: format.PlaceIOP},
			"patch=1,IOP,0020B7A6,byte,7A",
		},
		{
			// unspecified place builds as EE
			PatchEntry{Address: 0x100, Type: format.TypeDword, Value: 0x1},
			"patch=1,EE,00000100,dword,0000000000000001",
		},
	} {
		if got := tc.e.String(); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}

func TestParseEntry(t *testing.T) {
	for _, tc := range []struct {
		line string
		want PatchEntry
	}{
		{
			"patch=1,EE,0020B7A6,extended,0000447A",
			PatchEntry{Address: 0x0020B7A6, Type: format.TypeExtended, Value: 0x447A, Place: format.PlaceEE},
		},
		{
			// 4-field dialect: <place>,<addr>,<type>,<value>
			"patch=2,0020B7A6,word,0000447A",
			PatchEntry{Address: 0x0020B7A6, Type: format.TypeWord, Value: 0x447A, Place: format.PlaceIOP},
		},
		{
			"Patch = 1 , ee , 0x0020B7A6 , halfword , 447A",
			PatchEntry{Address: 0x0020B7A6, Type: format.TypeShort, Value: 0x447A, Place: format.PlaceEE},
		},
	} {
		got, err := ParseEntry(tc.line)
		if err != nil {
			t.Fatalf("%q: %v", tc.line, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("%q: got %+v want %+v", tc.line, got, tc.want)
		}
	}
}

func TestParseEntryErrors(t *testing.T) {
	for _, line := range []string{
		"gametitle=Okami",
		"patch=1,EE,BADADDR!,word,0000447A",
		"patch=1,EE,0020B7A6,word",
		"patch=1,EE,0020B7A6,wyrd,0000447A",
		"patch=1,EE,0020B7A6,byte,1FF", // overflows 8 bits
	} {
		if _, err := ParseEntry(line); !errors.Is(err, ErrBadEntry) {
			t.Errorf("%q: got %v, want ErrBadEntry", line, err)
		}
	}
}

func TestHashEqualConsistency(t *testing.T) {
	a := &PatchSet{Name: "Inf Health", Entries: []PatchEntry{
		{Address: 0x0020B7A6, Type: format.TypeWord, Value: 0x447A, Place: format.PlaceEE},
	}}
	b := a.Clone()
	if a.Hash() != b.Hash() || !a.Equal(b) {
		t.Fatal("clone does not hash equal")
	}
	b.Entries[0].Value = 0xFFFF
	if a.Hash() == b.Hash() {
		t.Fatal("different values hash equal")
	}
	if a.Equal(b) {
		t.Fatal("different values compare equal")
	}
	c := a.Clone()
	c.Description = "only presentation state"
	c.Enabled = true
	if a.Hash() != c.Hash() || !a.Equal(c) {
		t.Fatal("description participates in identity")
	}
}

func TestHashOrderSensitive(t *testing.T) {
	e1 := PatchEntry{Address: 0x100, Type: format.TypeWord, Value: 1, Place: format.PlaceEE}
	e2 := PatchEntry{Address: 0x200, Type: format.TypeWord, Value: 2, Place: format.PlaceEE}
	a := &PatchSet{Name: "x", Entries: []PatchEntry{e1, e2}}
	b := &PatchSet{Name: "x", Entries: []PatchEntry{e2, e1}}
	if a.Hash() == b.Hash() {
		t.Fatal("entry order does not affect the hash")
	}
}

func TestPatchSetJSON(t *testing.T) {
	s := &PatchSet{
		Name:        "Inf Health",
		Description: "never die",
		Enabled:     true,
		Entries: []PatchEntry{
			{Address: 0x0020B7A6, Type: format.TypeExtended, Value: 0x447A, Place: format.PlaceEE, RawComment: "health cap"},
			{Address: 0x0020B7B0, Type: format.TypeWord, Value: 0x1, Place: format.PlaceIOP},
		},
	}
	d, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := &PatchSet{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("json round trip (-want +got):\n%s", diff)
	}
}

func TestPatchSetJSONEnabledDefault(t *testing.T) {
	// records written before the enabled flag existed default to on
	got := &PatchSet{}
	err := json.Unmarshal([]byte(`{"name":"x","codes":["patch=1,EE,00000100,word,00000001"]}`), got)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Enabled {
		t.Fatal("missing enabled did not default to true")
	}
	got = &PatchSet{}
	err = json.Unmarshal([]byte(`{"name":"x","enabled":false,"codes":[]}`), got)
	if err != nil {
		t.Fatal(err)
	}
	if got.Enabled {
		t.Fatal("enabled=false not honored")
	}
}

func TestFillFrom(t *testing.T) {
	id := GameIdentity{Serial: "SLUS-21115"}
	got := id.FillFrom(GameIdentity{Title: "Okami", Serial: "SLES-54439", CRC: "21068223", Region: format.RegionNTSCU})
	want := GameIdentity{Title: "Okami", Serial: "SLUS-21115", CRC: "21068223", Region: format.RegionNTSCU}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
