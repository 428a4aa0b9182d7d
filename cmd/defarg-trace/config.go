package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// seedFile describes an optional TOML file giving a set of default
// preference edges to load before the rule file itself, so a trace run
// doesn't have to spell its preferences out in the bespoke rule-file
// grammar. Grounded on internal/game/marshaling.go's toml.Unmarshal-into-
// tagged-struct pattern.
type seedFile struct {
	Format      string       `toml:"format"`
	Preferences []preference `toml:"preference"`
}

type preference struct {
	Less    string `toml:"less"`
	Greater string `toml:"greater"`
}

func loadSeedFile(path string) (seedFile, error) {
	var sf seedFile
	data, err := os.ReadFile(path)
	if err != nil {
		return sf, fmt.Errorf("reading seed file: %w", err)
	}
	if err := toml.Unmarshal(data, &sf); err != nil {
		return sf, fmt.Errorf("decoding seed file: %w", err)
	}
	if sf.Format != "" && sf.Format != "DEFARG-SEED" {
		return sf, fmt.Errorf(`in header: 'format' key must be set to "DEFARG-SEED" if present`)
	}
	return sf, nil
}
