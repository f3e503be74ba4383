// Package config loads packex configuration using koanf.
//
// Values are layered: built-in defaults first, then the user config from
// $XDG_CONFIG_HOME/packex/packex.toml, then a .packex.toml in the current
// directory. Later layers override earlier ones.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/packex/pkg/errors"
	"github.com/arthur-debert/packex/pkg/shipping"
)

// ConfigFileName is the name of the user-facing configuration file
const ConfigFileName = ".packex.toml"

// Settings holds the resolved configuration values the estimator needs
type Settings struct {
	Limits  shipping.Limits
	Divisor float64
}

// Load resolves settings from the default search path
func Load() (Settings, error) {
	return LoadFrom(searchPaths()...)
}

// LoadFrom resolves settings, layering the given config files (in order)
// over the built-in defaults. Missing files are skipped.
func LoadFrom(paths ...string) (Settings, error) {
	k := koanf.New(".")

	// 1. Load built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Layer user config files over them
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	settings := Settings{
		Limits: shipping.Limits{
			MaxWeight:       k.Float64("limits.max_weight"),
			MaxDimensionSum: k.Float64("limits.max_dimension_sum"),
		},
		Divisor: k.Float64("pricing.divisor"),
	}

	if settings.Divisor == 0 {
		return Settings{}, errors.New(errors.ErrConfigValid, "pricing.divisor must be non-zero")
	}

	return settings, nil
}

// searchPaths returns the user config locations in override order
func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "packex", "packex.toml"),
		ConfigFileName,
	}
}
