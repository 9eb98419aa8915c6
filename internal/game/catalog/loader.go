package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// contentFile mirrors the layout of a catalog YAML file. A file may carry
// any subset of the sections; the loader merges all files in the directory.
type contentFile struct {
	Weapons       []warband.Weapon       `yaml:"weapons"`
	Equipment     []warband.Equipment    `yaml:"equipment"`
	PsychicPowers []warband.PsychicPower `yaml:"psychic_powers"`
	LeaderTraits  []LeaderTrait          `yaml:"leader_traits"`
}

// Load reads every *.yaml file in dir, merges their sections, validates
// each entry, and returns the assembled immutable Catalog.
//
// Precondition: dir must be a readable directory path.
// Postcondition: returns a Catalog with unique, valid entries, or a
// non-nil error naming the offending file or entry.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot read directory %q: %w", dir, err)
	}

	var merged contentFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read file %q: %w", path, err)
		}
		var f contentFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("catalog: cannot parse file %q: %w", path, err)
		}
		merged.Weapons = append(merged.Weapons, f.Weapons...)
		merged.Equipment = append(merged.Equipment, f.Equipment...)
		merged.PsychicPowers = append(merged.PsychicPowers, f.PsychicPowers...)
		merged.LeaderTraits = append(merged.LeaderTraits, f.LeaderTraits...)
	}

	c, err := build(merged.Weapons, merged.Equipment, merged.PsychicPowers, merged.LeaderTraits)
	if err != nil {
		return nil, err
	}
	return c, nil
}
