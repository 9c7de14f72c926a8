package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString("lexicon"), "default")
	is.Equal(c.GetString("letter-distribution"), "english")
	is.Equal(c.GetString("board-layout"), "CrosswordGame")
	is.Equal(c.GetBool("debug"), false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--lexicon", "csw", "--debug"}))
	is.Equal(c.GetString("lexicon"), "csw")
	is.True(c.GetBool("debug"))
}

func TestLoadEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("SCRABBLE_LEXICON", "twl")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString("lexicon"), "twl")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--lexicon-path", "./data/lexica"}))
	c.AdjustRelativePaths("/opt/scrabble")
	is.Equal(c.GetString("lexicon-path"), "/opt/scrabble/data/lexica")
	is.Equal(c.LexiconFile(), "/opt/scrabble/data/lexica/default.txt")
}

func TestAbsolutePathUntouched(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--lexicon-path", "/usr/share/lexica"}))
	c.AdjustRelativePaths("/opt/scrabble")
	is.Equal(c.GetString("lexicon-path"), "/usr/share/lexica")
}
