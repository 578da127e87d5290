package ir

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The persisted database stores a cheat's entries as canonical patch
// lines under "codes", matching the schema the original collection
// files use. Inline entry comments ride along after " // ".

type patchSetJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Enabled     *bool    `json:"enabled,omitempty"`
	Codes       []string `json:"codes"`
}

func (s *PatchSet) MarshalJSON() ([]byte, error) {
	js := patchSetJSON{
		Name:        s.Name,
		Description: s.Description,
		Codes:       make([]string, 0, len(s.Entries)),
	}
	if !s.Enabled {
		f := false
		js.Enabled = &f
	}
	for _, e := range s.Entries {
		line := e.String()
		if e.RawComment != "" {
			line += " // " + e.RawComment
		}
		js.Codes = append(js.Codes, line)
	}
	return json.Marshal(js)
}

func (s *PatchSet) UnmarshalJSON(d []byte) error {
	js := patchSetJSON{}
	if err := json.Unmarshal(d, &js); err != nil {
		return err
	}
	s.Name = js.Name
	s.Description = js.Description
	s.Enabled = js.Enabled == nil || *js.Enabled
	s.Entries = make([]PatchEntry, 0, len(js.Codes))
	for _, code := range js.Codes {
		comment := ""
		if ci := strings.Index(code, "//"); ci >= 0 {
			comment = strings.TrimSpace(code[ci+2:])
			code = strings.TrimSpace(code[:ci])
		}
		e, err := ParseEntry(code)
		if err != nil {
			return fmt.Errorf("cheat %q: %w", js.Name, err)
		}
		e.RawComment = comment
		s.Entries = append(s.Entries, e)
	}
	return nil
}
