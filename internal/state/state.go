package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the theme mods file inside the .oops directory.
const FileName = "theme-mods.json"

// State is the persisted Customizer state of one theme.
type State struct {
	Theme string            `json:"theme"`
	Mods  map[string]string `json:"mods"`
}

// Path returns the theme mods file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the theme mods from dir. Returns empty state if not found.
func Load(dir string) (*State, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &State{Mods: map[string]string{}}, nil
		}
		return nil, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Mods == nil {
		s.Mods = map[string]string{}
	}
	return &s, nil
}

// Save writes the theme mods to dir.
func (s *State) Save(dir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(Path(dir), append(data, '\n'), 0644)
}
