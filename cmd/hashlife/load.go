package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/internal/parse"
	"github.com/noctilu/hashlife/node"
	"github.com/noctilu/hashlife/rule"
	"github.com/noctilu/hashlife/universe"
)

// loadPattern opens path and builds a Universe from it, dispatching on
// extension: ".rle" for run-length encoded patterns, ".mc"/".macrocell"
// for Macrocell ones.
func loadPattern(path string, ruleOverride string, log zerolog.Logger) (*universe.Universe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hashlife: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".rle":
		pattern, err := parse.ParseRLE(f)
		if err != nil {
			return nil, err
		}
		r := pattern.Rule
		if ruleOverride != "" {
			if r, err = rule.Parse(ruleOverride); err != nil {
				return nil, err
			}
		}
		log.Debug().Str("path", path).Int("cells", len(pattern.Cells)).Str("rule", r.String()).Msg("loaded RLE pattern")

		u := universe.NewWithRule(r)
		if err := u.SetCellsAlive(pattern.Cells); err != nil {
			return nil, fmt.Errorf("hashlife: %w", err)
		}
		return u, nil

	case ".mc", ".macrocell":
		r := rule.Life()
		if ruleOverride != "" {
			var err error
			if r, err = rule.Parse(ruleOverride); err != nil {
				return nil, err
			}
		}
		store := node.NewStore(r)
		root, err := parse.LoadMacrocell(f, store)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Str("rule", r.String()).Msg("loaded Macrocell pattern")
		return universe.FromRoot(store, root, bigpop.Zero), nil

	default:
		return nil, fmt.Errorf("hashlife: unrecognized pattern extension %q (want .rle, .mc, or .macrocell)", ext)
	}
}
