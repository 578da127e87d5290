package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ps2tools/go-pnach/identity"
	"github.com/ps2tools/go-pnach/ir"
)

// Store is the merged game-record database.
type Store struct {
	Games []*ir.GameRecord

	byTitle map[string]*ir.GameRecord
}

func New() *Store {
	return &Store{byTitle: map[string]*ir.GameRecord{}}
}

type storeJSON struct {
	Games []*ir.GameRecord `json:"games"`
}

// Load reads a database file. A missing file is an empty store, not an
// error; whole-database rebuilds are the only way records disappear.
func Load(path string) (*Store, error) {
	d, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	return Decode(d)
}

// Decode builds a store from marshaled database bytes.
func Decode(d []byte) (*Store, error) {
	js := storeJSON{}
	if err := json.Unmarshal(d, &js); err != nil {
		return nil, fmt.Errorf("decode database: %w", err)
	}
	s := New()
	for _, g := range js.Games {
		s.Games = append(s.Games, g)
		s.byTitle[identity.NormalizeTitle(g.Title)] = g
	}
	return s, nil
}

// Encode marshals the store deterministically: games sorted by title,
// region keys in map order (which encoding/json sorts).
func (s *Store) Encode() ([]byte, error) {
	games := make([]*ir.GameRecord, len(s.Games))
	copy(games, s.Games)
	sort.Slice(games, func(i, j int) bool { return games[i].Title < games[j].Title })
	return json.MarshalIndent(storeJSON{Games: games}, "", "  ")
}

// Save rewrites the database file whole, via a temp file and rename so
// a failed write never truncates the previous database.
func (s *Store) Save(path string) error {
	d, err := s.Encode()
	if err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save database: %w", err)
		}
	}
	if err := os.WriteFile(tmp, append(d, '\n'), 0o644); err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	return nil
}

// Add appends a record, replacing any record already filed under the
// same normalized title.
func (s *Store) Add(g *ir.GameRecord) {
	key := identity.NormalizeTitle(g.Title)
	if old, ok := s.byTitle[key]; ok {
		for i := range s.Games {
			if s.Games[i] == old {
				s.Games[i] = g
				s.byTitle[key] = g
				return
			}
		}
	}
	s.Games = append(s.Games, g)
	s.byTitle[key] = g
}

// Find returns the record for title, if any, by normalized title key.
func (s *Store) Find(title string) *ir.GameRecord {
	return s.byTitle[identity.NormalizeTitle(title)]
}

func (s *Store) findOrCreate(title string) (*ir.GameRecord, bool) {
	key := identity.NormalizeTitle(title)
	if g, ok := s.byTitle[key]; ok {
		return g, false
	}
	g := &ir.GameRecord{Title: title, Regions: map[string]*ir.RegionRecord{}}
	s.Games = append(s.Games, g)
	s.byTitle[key] = g
	return g, true
}
