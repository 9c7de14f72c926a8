// Package dataloaders reads the data files the engine needs at startup:
// a word list from disk, plus letter distributions and board layouts from
// files embedded in the binary.
package dataloaders

import (
	"embed"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/wztlei/scrabble/alphabet"
	"github.com/wztlei/scrabble/config"
	"github.com/wztlei/scrabble/lexicon"
)

//go:embed data
var dataFS embed.FS

type tileSpec struct {
	Letter string `yaml:"letter"`
	Count  uint8  `yaml:"count"`
	Points uint8  `yaml:"points"`
}

type distributionFile struct {
	Name  string     `yaml:"name"`
	Tiles []tileSpec `yaml:"tiles"`
}

type layoutFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LetterDistribution loads a named tile distribution from the embedded
// data files. Names are lowercase, e.g. "english".
func LetterDistribution(name string) (*alphabet.LetterDistribution, error) {
	raw, err := dataFS.ReadFile("data/distributions/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown letter distribution %q: %w", name, err)
	}
	var df distributionFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("distribution %q: %w", name, err)
	}
	dist := map[byte]uint8{}
	pts := map[byte]uint8{}
	for _, t := range df.Tiles {
		if len(t.Letter) != 1 {
			return nil, fmt.Errorf("distribution %q: bad letter %q", name, t.Letter)
		}
		letter := t.Letter[0]
		if !alphabet.IsUpper(letter) && letter != alphabet.BlankCharacter {
			return nil, fmt.Errorf("distribution %q: bad letter %q", name, t.Letter)
		}
		dist[letter] = t.Count
		pts[letter] = t.Points
	}
	return alphabet.NewLetterDistribution(df.Name, dist, pts), nil
}

// BoardLayout loads a named board layout from the embedded data files.
func BoardLayout(name string) ([]string, error) {
	raw, err := dataFS.ReadFile("data/layouts/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown board layout %q: %w", name, err)
	}
	var lf layoutFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("layout %q: %w", name, err)
	}
	if len(lf.Rows) == 0 {
		return nil, fmt.Errorf("layout %q has no rows", name)
	}
	return lf.Rows, nil
}

// Lexicon reads a word list from the given file, one word per line.
func Lexicon(name, path string) (*lexicon.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexicon.Read(name, f)
}

// LoadAll fetches everything the configured game needs. The lexicon read
// dominates startup time, so the three loads run concurrently.
func LoadAll(cfg *config.Config) (*lexicon.Lexicon,
	*alphabet.LetterDistribution, []string, error) {

	var (
		lex    *lexicon.Lexicon
		dist   *alphabet.LetterDistribution
		layout []string
	)
	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		lex, err = Lexicon(cfg.GetString("lexicon"), cfg.LexiconFile())
		return err
	})
	g.Go(func() error {
		var err error
		dist, err = LetterDistribution(cfg.GetString("letter-distribution"))
		return err
	})
	g.Go(func() error {
		var err error
		layout, err = BoardLayout(cfg.GetString("board-layout"))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.NumWords()).
		Str("distribution", dist.Name).Msg("loaded game data")
	return lex, dist, layout, nil
}
