package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// config holds file-provided defaults for the solve command. Flags set
// explicitly on the command line always win over file values.
type config struct {
	Size       int      `yaml:"size"`
	Difficulty *float64 `yaml:"difficulty"`
	Seed       int64    `yaml:"seed"`
	Delay      duration `yaml:"delay"`
	StartPause duration `yaml:"start_pause"`
	Unique     *bool    `yaml:"unique"`
	NoColor    *bool    `yaml:"no_color"`
}

// duration decodes Go duration strings like "100ms" from YAML.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

// loadConfig reads and strictly decodes a YAML config file.
func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cfg config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// apply copies file values into the solve command's settings for every flag
// the user did not set explicitly.
func (c *config) apply(flags *pflag.FlagSet) {
	if c.Size != 0 && !flags.Changed("size") {
		solveSize = c.Size
	}
	if c.Difficulty != nil && !flags.Changed("difficulty") {
		solveDifficulty = *c.Difficulty
	}
	if c.Seed != 0 && !flags.Changed("seed") {
		solveSeed = c.Seed
	}
	if c.Delay != 0 && !flags.Changed("delay") {
		solveDelay = time.Duration(c.Delay)
	}
	if c.StartPause != 0 && !flags.Changed("start-pause") {
		solvePause = time.Duration(c.StartPause)
	}
	if c.Unique != nil && !flags.Changed("unique") {
		solveUnique = *c.Unique
	}
	if c.NoColor != nil && !flags.Changed("no-color") {
		solveNoColor = *c.NoColor
	}
}
