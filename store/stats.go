package store

// RegionStats counts games and cheats filed under one region key.
type RegionStats struct {
	Games  int `json:"games"`
	Cheats int `json:"cheats"`
}

// Stats is a summary of the whole database.
type Stats struct {
	Games    int                    `json:"games"`
	Cheats   int                    `json:"cheats"`
	ByRegion map[string]RegionStats `json:"byRegion"`

	MaxCheats      int     `json:"maxCheatsPerGame"`
	MaxCheatsTitle string  `json:"maxCheatsTitle,omitempty"`
	AvgCheats      float64 `json:"avgCheatsPerGame"`
}

func (s *Store) Stats() Stats {
	st := Stats{ByRegion: map[string]RegionStats{}}
	for _, g := range s.Games {
		st.Games++
		n := g.CheatCount()
		st.Cheats += n
		if n > st.MaxCheats {
			st.MaxCheats = n
			st.MaxCheatsTitle = g.Title
		}
		for key, rr := range g.Regions {
			rs := st.ByRegion[key]
			rs.Games++
			rs.Cheats += len(rr.Cheats)
			st.ByRegion[key] = rs
		}
	}
	if st.Games > 0 {
		st.AvgCheats = float64(st.Cheats) / float64(st.Games)
	}
	return st
}
