// Package config loads and writes pyskel's optional per-user defaults
// file. The file only pre-seeds CLI flag values; scaffolding itself never
// depends on it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the working directory.
const FileName = ".pyskel.yml"

// Defaults holds flag defaults for the scaffold commands.
type Defaults struct {
	Scaffold ScaffoldDefaults `yaml:"scaffold" mapstructure:"scaffold"`
}

// ScaffoldDefaults pre-seeds the `new` command flags.
type ScaffoldDefaults struct {
	Docs bool `yaml:"docs" mapstructure:"docs"` // create a docs/ directory
	Git  bool `yaml:"git" mapstructure:"git"`   // run git init in the new project
}

// Exists reports whether a defaults file is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// Load reads defaults from dir. A missing file is not an error: the
// zero-value defaults are returned. Environment variables prefixed with
// PYSKEL_ override file values (PYSKEL_SCAFFOLD_DOCS=true).
func Load(dir string) (*Defaults, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("yaml")

	v.AutomaticEnv()
	v.SetEnvPrefix("PYSKEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if !Exists(dir) {
		return &Defaults{}, nil
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return &d, nil
}

// Write marshals d to the defaults file in dir, overwriting any existing
// file.
func Write(dir string, d *Defaults) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	header := "# pyskel defaults. Values here pre-seed the `pyskel new` flags.\n"
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
