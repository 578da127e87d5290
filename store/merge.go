package store

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/ps2tools/go-pnach/debug"
	"github.com/ps2tools/go-pnach/format"
	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
)

// Item is one merge candidate: an identity (possibly partial) plus the
// cheat sets attributed to it. Origin names where the item came from
// and seeds conflict-rename suffixes.
type Item struct {
	Identity ir.GameIdentity
	Sets     []*ir.PatchSet
	Origin   string
}

// Conflict records a same-name, different-codes collision. Both cheats
// survive in the database; Renamed is the name the incoming one got.
type Conflict struct {
	Title   string `json:"title"`
	Region  string `json:"region"`
	Name    string `json:"name"`
	Renamed string `json:"renamed"`
	Origin  string `json:"origin,omitempty"`
}

// Report summarizes one Merge call.
type Report struct {
	Games      int        `json:"games"`      // new game records
	Regions    int        `json:"regions"`    // new region records
	SetsAdded  int        `json:"setsAdded"`  // cheats added, renames included
	Duplicates int        `json:"duplicates"` // exact duplicates skipped
	Conflicts  []Conflict `json:"conflicts,omitempty"`

	// Changes is a JSON merge patch from the pre-merge database to the
	// post-merge one, for change review.
	Changes json.RawMessage `json:"changes,omitempty"`
}

// Merge folds items into the store. It is idempotent: merging the same
// items twice adds nothing the second time, renamed conflicts included.
func (s *Store) Merge(items []Item) (*Report, error) {
	before, err := s.Encode()
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	r := &Report{}
	for _, it := range items {
		s.mergeItem(it, r)
	}
	after, err := s.Encode()
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(before, after)
	if err != nil {
		return nil, fmt.Errorf("merge: summarize changes: %w", err)
	}
	if string(patch) != "{}" {
		r.Changes = patch
	}
	if debug.Merge() {
		debug.Logf("merge: %d games %d regions %d sets %d dups %d conflicts\n",
			r.Games, r.Regions, r.SetsAdded, r.Duplicates, len(r.Conflicts))
	}
	return r, nil
}

func (s *Store) mergeItem(it Item, r *Report) {
	if len(it.Sets) == 0 {
		return
	}
	title := it.Identity.Title
	if title == "" {
		title = it.Identity.Serial
	}
	if title == "" {
		title = it.Identity.CRC
	}
	if title == "" {
		title = "Unknown"
	}
	if it.Identity.Region == format.RegionUnknown && it.Identity.Serial != "" {
		it.Identity.Region = identity.RegionFromSerial(it.Identity.Serial)
	}
	g, created := s.findOrCreate(title)
	if created {
		r.Games++
	}
	rr, created := regionRecord(g, it.Identity)
	if created {
		r.Regions++
	}
	for _, set := range it.Sets {
		mergeSet(g.Title, regionKey(g, rr), rr, set, it.Origin, r)
	}
}

// regionRecord finds the region record matching id within g, first by
// serial, then by CRC, then by the empty key pair when id carries
// neither; it creates one when nothing matches. Whichever of serial
// and CRC the match lacked is filled in. Two serials sharing a region
// get distinct keys: "PAL", then "PAL (SCES-12345)".
func regionRecord(g *ir.GameRecord, id ir.GameIdentity) (*ir.RegionRecord, bool) {
	for _, rr := range g.Regions {
		if id.Serial != "" && rr.Serial == id.Serial {
			if rr.CRC == "" {
				rr.CRC = id.CRC
			}
			return rr, false
		}
	}
	if id.CRC != "" {
		for _, rr := range g.Regions {
			// Two distinct serials never share a record, even on a
			// CRC match.
			if rr.CRC == id.CRC && (rr.Serial == "" || id.Serial == "") {
				if rr.Serial == "" {
					rr.Serial = id.Serial
				}
				return rr, false
			}
		}
	}
	if id.Serial == "" && id.CRC == "" {
		for _, rr := range g.Regions {
			if rr.Serial == "" && rr.CRC == "" {
				return rr, false
			}
		}
	}
	rr := &ir.RegionRecord{Serial: id.Serial, CRC: id.CRC}
	key := id.Region.String()
	if id.Region == format.RegionUnknown {
		key = "Unknown"
	}
	if _, taken := g.Regions[key]; taken && id.Serial != "" {
		key = fmt.Sprintf("%s (%s)", key, id.Serial)
	}
	for i := 2; ; i++ {
		if _, taken := g.Regions[key]; !taken {
			break
		}
		key = fmt.Sprintf("%s #%d", key, i)
	}
	g.Regions[key] = rr
	return rr, true
}

func regionKey(g *ir.GameRecord, rr *ir.RegionRecord) string {
	for k, v := range g.Regions {
		if v == rr {
			return k
		}
	}
	return ""
}

// mergeSet adds one cheat to a region record. Exact duplicates (same
// name and codes) are skipped; a duplicate may still contribute a
// description the stored copy lacks. A same-name, different-codes
// cheat is kept under a renamed key so neither version is lost.
func mergeSet(title, region string, rr *ir.RegionRecord, set *ir.PatchSet, origin string, r *Report) {
	h := set.Hash()
	var sameName *ir.PatchSet
	for _, have := range rr.Cheats {
		if have.Hash() == h && have.Equal(set) {
			if have.Description == "" {
				have.Description = set.Description
			}
			r.Duplicates++
			return
		}
		if sameName == nil && have.Name == set.Name {
			sameName = have
		}
	}
	if sameName == nil {
		rr.Cheats = append(rr.Cheats, set.Clone())
		r.SetsAdded++
		return
	}

	renamed := set.Clone()
	renamed.Name = conflictName(set.Name, origin, 0)
	for n := 2; ; n++ {
		have := findName(rr.Cheats, renamed.Name)
		if have == nil {
			break
		}
		if have.Equal(renamed) {
			// A prior merge already stored this exact renamed cheat.
			r.Duplicates++
			return
		}
		renamed.Name = conflictName(set.Name, origin, n)
	}
	rr.Cheats = append(rr.Cheats, renamed)
	r.SetsAdded++
	r.Conflicts = append(r.Conflicts, Conflict{
		Title:   title,
		Region:  region,
		Name:    set.Name,
		Renamed: renamed.Name,
		Origin:  origin,
	})
}

func conflictName(name, origin string, n int) string {
	if origin != "" {
		name = fmt.Sprintf("%s [%s]", name, origin)
	}
	if n > 0 {
		name = fmt.Sprintf("%s #%d", name, n)
	}
	return name
}

func findName(sets []*ir.PatchSet, name string) *ir.PatchSet {
	for _, s := range sets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Items flattens the store into merge items, one per region record,
// for combining independently built stores.
func (s *Store) Items(origin string) []Item {
	var items []Item
	for _, g := range s.Games {
		for key, rr := range g.Regions {
			items = append(items, Item{
				Identity: ir.GameIdentity{
					Title:  g.Title,
					Serial: rr.Serial,
					CRC:    rr.CRC,
					Region: regionFromKey(key),
				},
				Sets:   rr.Cheats,
				Origin: origin,
			})
		}
	}
	return items
}

// regionFromKey recovers the region from a region-record key, which
// may carry a disambiguating suffix like "PAL (SCES-12345)".
func regionFromKey(key string) format.Region {
	if i := strings.IndexAny(key, "(#"); i > 0 {
		key = key[:i]
	}
	r, err := format.ParseRegion(strings.TrimSpace(key))
	if err != nil {
		return format.RegionUnknown
	}
	return r
}

// MergeFrom folds another store into this one.
func (s *Store) MergeFrom(other *Store, origin string) (*Report, error) {
	return s.Merge(other.Items(origin))
}
