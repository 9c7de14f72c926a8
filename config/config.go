package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance holding all engine settings. Settings come
// from command-line flags and may be overridden by SCRABBLE_* environment
// variables.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("scrabble", pflag.ContinueOnError)
	fs.String("lexicon-path", "./data/lexica", "directory holding lexicon files")
	fs.String("lexicon", "default", "the lexicon to load on startup")
	fs.String("letter-distribution", "english", "the letter distribution to use")
	fs.String("board-layout", "CrosswordGame", "the board layout to use")
	fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.v.SetEnvPrefix("scrabble")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// AdjustRelativePaths rebases any relative path settings onto the given
// executable directory, so the engine finds its data files no matter where
// it is launched from.
func (c *Config) AdjustRelativePaths(basepath string) {
	key := "lexicon-path"
	p := c.v.GetString(key)
	if !filepath.IsAbs(p) {
		c.v.Set(key, filepath.Clean(filepath.Join(basepath, p)))
	}
}

// LexiconFile is the path of the word list for the configured lexicon.
func (c *Config) LexiconFile() string {
	return filepath.Join(c.GetString("lexicon-path"),
		c.GetString("lexicon")+".txt")
}

func (c *Config) AllSettings() string {
	return fmt.Sprintf("%v", c.v.AllSettings())
}
