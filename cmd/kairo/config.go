// Config loading for the kairo CLI. The config file is mandatory: without it
// there is no database path and no mirror directories to work against.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/kairo/internal/paths"
	"github.com/mesh-intelligence/kairo/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "toml"
)

// loadConfig searches the standard directories for config.toml, parses it,
// and validates that every path is present.
func loadConfig() (*types.Config, error) {
	search := paths.ConfigSearchPath()

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	for _, dir := range search {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("no config.toml found (searched %s)", strings.Join(search, ", "))
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", v.ConfigFileUsed(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}
	return &cfg, nil
}
