package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/ir"
)

func entry(addr uint32, val uint64) ir.PatchEntry {
	return ir.PatchEntry{
		Address: addr,
		Type:    format.TypeWord,
		Value:   val,
		Place:   format.PlaceEE,
	}
}

func set(name string, entries ...ir.PatchEntry) *ir.PatchSet {
	return &ir.PatchSet{Name: name, Enabled: true, Entries: entries}
}

func item(title, serial, crc string, region format.Region, origin string, sets ...*ir.PatchSet) Item {
	return Item{
		Identity: ir.GameIdentity{Title: title, Serial: serial, CRC: crc, Region: region},
		Sets:     sets,
		Origin:   origin,
	}
}

func TestMergeBasic(t *testing.T) {
	s := New()
	r, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "21068223", format.RegionNTSCU, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A)),
			set("Inf Ink", entry(0x0020B7B0, 0x1))),
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Games != 1 || r.Regions != 1 || r.SetsAdded != 2 || r.Duplicates != 0 {
		t.Fatalf("got report %+v", r)
	}
	g := s.Find("Okami")
	if g == nil {
		t.Fatal("game not stored")
	}
	rr, ok := g.Regions["NTSC-U"]
	if !ok {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
	if rr.Serial != "SLUS-21115" || rr.CRC != "21068223" {
		t.Fatalf("got region record %+v", rr)
	}
	if len(rr.Cheats) != 2 {
		t.Fatalf("got %d cheats", len(rr.Cheats))
	}
}

func TestMergeIdempotent(t *testing.T) {
	items := []Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "b",
			set("Inf Health", entry(0x0020B7A6, 0xFFFF))), // conflict
	}
	s := New()
	if _, err := s.Merge(items); err != nil {
		t.Fatal(err)
	}
	r, err := s.Merge(items)
	if err != nil {
		t.Fatal(err)
	}
	if r.Games != 0 || r.Regions != 0 || r.SetsAdded != 0 {
		t.Fatalf("second merge not a no-op: %+v", r)
	}
	if r.Duplicates != 2 {
		t.Fatalf("got %d duplicates, want 2", r.Duplicates)
	}
	if len(r.Changes) != 0 {
		t.Fatalf("second merge changed the database: %s", r.Changes)
	}
}

func TestMergeConflictRename(t *testing.T) {
	s := New()
	r, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "first",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "second",
			set("Inf Health", entry(0x0020B7A6, 0xFFFF))),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Conflicts) != 1 {
		t.Fatalf("got %d conflicts", len(r.Conflicts))
	}
	c := r.Conflicts[0]
	if c.Renamed != "Inf Health [second]" {
		t.Fatalf("got renamed %q", c.Renamed)
	}
	rr := s.Find("Okami").Regions["NTSC-U"]
	names := []string{}
	for _, cs := range rr.Cheats {
		names = append(names, cs.Name)
	}
	want := []string{"Inf Health", "Inf Health [second]"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("cheat names (-want +got):\n%s", diff)
	}
}

func TestMergeDuplicateFillsDescription(t *testing.T) {
	s := New()
	e := entry(0x0020B7A6, 0x447A)
	_, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "a", set("Inf Health", e)),
	})
	if err != nil {
		t.Fatal(err)
	}
	dup := set("Inf Health", e)
	dup.Description = "never die"
	r, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "b", dup),
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Duplicates != 1 || r.SetsAdded != 0 {
		t.Fatalf("got report %+v", r)
	}
	got := s.Find("Okami").Regions["NTSC-U"].Cheats[0].Description
	if got != "never die" {
		t.Fatalf("got description %q", got)
	}
}

func TestMergeRegionKeyCollision(t *testing.T) {
	s := New()
	_, err := s.Merge([]Item{
		item("Okami", "SLES-54439", "", format.RegionPAL, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
		item("Okami", "SLES-99999", "", format.RegionPAL, "a",
			set("Inf Ink", entry(0x0020B7B0, 0x1))),
	})
	if err != nil {
		t.Fatal(err)
	}
	g := s.Find("Okami")
	if len(g.Regions) != 2 {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
	if _, ok := g.Regions["PAL"]; !ok {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
	if _, ok := g.Regions["PAL (SLES-99999)"]; !ok {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
}

func TestMergeTitleOnlyIdempotent(t *testing.T) {
	items := []Item{
		item("Okami", "", "", format.RegionUnknown, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
	}
	s := New()
	if _, err := s.Merge(items); err != nil {
		t.Fatal(err)
	}
	r, err := s.Merge(items)
	if err != nil {
		t.Fatal(err)
	}
	if r.Regions != 0 || r.SetsAdded != 0 || r.Duplicates != 1 {
		t.Fatalf("second merge not a no-op: %+v", r)
	}
	g := s.Find("Okami")
	if len(g.Regions) != 1 {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
	if len(g.Regions["Unknown"].Cheats) != 1 {
		t.Fatalf("got %d cheats", len(g.Regions["Unknown"].Cheats))
	}
}

func TestMergeSerialBackfilledOnCRCMatch(t *testing.T) {
	s := New()
	if _, err := s.Merge([]Item{
		item("Okami", "", "21068223", format.RegionUnknown, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
	}); err != nil {
		t.Fatal(err)
	}
	r, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "21068223", format.RegionNTSCU, "b",
			set("Inf Ink", entry(0x0020B7B0, 0x1))),
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Regions != 0 || r.SetsAdded != 1 {
		t.Fatalf("got report %+v", r)
	}
	g := s.Find("Okami")
	if len(g.Regions) != 1 {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
	rr := g.Regions["Unknown"]
	if rr == nil || rr.Serial != "SLUS-21115" {
		t.Fatalf("serial not filled in: %+v", rr)
	}
	if len(rr.Cheats) != 2 {
		t.Fatalf("got %d cheats", len(rr.Cheats))
	}
}

func TestMergeInfersRegionFromSerial(t *testing.T) {
	s := New()
	if _, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionUnknown, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
	}); err != nil {
		t.Fatal(err)
	}
	g := s.Find("Okami")
	if _, ok := g.Regions["NTSC-U"]; !ok {
		t.Fatalf("region keys: %v", keysOf(g.Regions))
	}
}

func TestMergeTitleFallback(t *testing.T) {
	s := New()
	_, err := s.Merge([]Item{
		item("", "SLUS-20946", "", format.RegionNTSCU, "a",
			set("Moon Jump", entry(0x00100000, 0x1))),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Find("SLUS-20946") == nil {
		t.Fatal("serial not used as fallback title")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	_, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "21068223", format.RegionNTSCU, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
		item("Persona 4", "SLUS-21782", "94A82AAA", format.RegionNTSCU, "a",
			set("Max Yen", entry(0x0096DE74, 0x05F5E0FF))),
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "db", "cheats.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := s.Encode()
	b, _ := got.Encode()
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Games) != 0 {
		t.Fatalf("got %d games", len(s.Games))
	}
}

func TestMergeFrom(t *testing.T) {
	a := New()
	if _, err := a.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "x",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
	}); err != nil {
		t.Fatal(err)
	}
	b := New()
	if _, err := b.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "y",
			set("Inf Health", entry(0x0020B7A6, 0x447A)),
			set("Inf Ink", entry(0x0020B7B0, 0x1))),
	}); err != nil {
		t.Fatal(err)
	}
	r, err := a.MergeFrom(b, "b")
	if err != nil {
		t.Fatal(err)
	}
	if r.SetsAdded != 1 || r.Duplicates != 1 {
		t.Fatalf("got report %+v", r)
	}
}

func TestStats(t *testing.T) {
	s := New()
	if _, err := s.Merge([]Item{
		item("Okami", "SLUS-21115", "", format.RegionNTSCU, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A)),
			set("Inf Ink", entry(0x0020B7B0, 0x1))),
		item("Okami", "SLES-54439", "", format.RegionPAL, "a",
			set("Inf Health", entry(0x0020B7A6, 0x447A))),
		item("Persona 4", "SLUS-21782", "", format.RegionNTSCU, "a",
			set("Max Yen", entry(0x0096DE74, 0x05F5E0FF))),
	}); err != nil {
		t.Fatal(err)
	}
	st := s.Stats()
	if st.Games != 2 || st.Cheats != 4 {
		t.Fatalf("got stats %+v", st)
	}
	if st.MaxCheats != 3 || st.MaxCheatsTitle != "Okami" {
		t.Fatalf("got stats %+v", st)
	}
	if st.AvgCheats != 2 {
		t.Fatalf("got avg %v", st.AvgCheats)
	}
	if st.ByRegion["NTSC-U"].Games != 2 || st.ByRegion["NTSC-U"].Cheats != 3 {
		t.Fatalf("got by-region %+v", st.ByRegion)
	}
}

func keysOf(m map[string]*ir.RegionRecord) []string {
	ks := []string{}
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
