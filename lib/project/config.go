package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"slices"

	"github.com/vyPal/Ristretto/util"
	"gopkg.in/yaml.v3"
)

const FileName = "ristretto.yaml"

type Config struct {
	Name     string       `yaml:"name"`
	Requires string       `yaml:"requires,omitempty"`
	Color    *bool        `yaml:"color,omitempty"`
	Repl     ReplConfig   `yaml:"repl"`
	Output   OutputConfig `yaml:"output"`
	Parser   ParserConfig `yaml:"parser"`
}

type ReplConfig struct {
	Prompt string `yaml:"prompt"`
	Mode   string `yaml:"mode"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

type ParserConfig struct {
	MaxErrors int `yaml:"maxErrors"`
}

var (
	Formats   = []string{"tree", "sexpr", "json", "yaml"}
	ReplModes = []string{"lex", "parse"}
)

func Default() Config {
	var c Config
	c.CreateDefault(".")
	return c
}

func (c *Config) CreateDefault(name string) {
	if name == "." {
		name = "NewProject"
	}
	c.Name = name
	c.Repl.Prompt = ">> "
	c.Repl.Mode = "lex"
	c.Output.Format = "tree"
	c.Output.Indent = 2
}

// Validate checks enumerated fields and, when Requires is set, that the
// running toolchain version satisfies it.
func (c *Config) Validate(toolVersion string) error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if !slices.Contains(ReplModes, c.Repl.Mode) {
		return fmt.Errorf("repl.mode: unknown mode %q", c.Repl.Mode)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent: must not be negative, got %d", c.Output.Indent)
	}
	if c.Parser.MaxErrors < 0 {
		return fmt.Errorf("parser.maxErrors: must not be negative, got %d", c.Parser.MaxErrors)
	}
	if c.Requires != "" {
		ok, err := util.Satisfies(toolVersion, c.Requires)
		if err != nil {
			return fmt.Errorf("requires: %w", err)
		}
		if !ok {
			return fmt.Errorf("requires %s, but this is ristretto %s", c.Requires, toolVersion)
		}
	}
	return nil
}

// Save writes the config to filepath and reports whether it did. An existing
// file is only replaced when overwrite is set or the user agrees to it.
func (c *Config) Save(filepath string, overwrite bool) (bool, error) {
	if _, err := os.Stat(filepath); !os.IsNotExist(err) {
		if !overwrite && !util.PromptYN(filepath+" already exists. Overwrite?", false) {
			return false, nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(filepath, yml, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads ristretto.yaml from dir. A missing file yields the defaults.
func Load(dir string) (Config, error) {
	conf, err := LoadFile(path.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return conf, err
}

// LoadFile reads a config file. Fields it leaves out keep their defaults.
func LoadFile(filename string) (Config, error) {
	conf := Default()

	file, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding %s: %w", filename, err)
	}

	return conf, nil
}
