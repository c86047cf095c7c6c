/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds demo settings layered from defaults, an optional TOML file,
// and SIMPLECLI_ environment variables, in ascending precedence.
type Config struct {
	PageSize    int  `koanf:"page_size"`
	RetryLimit  int  `koanf:"retry_limit"`
	ClearScreen bool `koanf:"clear_screen"`
}

func LoadConfig(configPath string) (*Config, error) {
	k := koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"page_size":    3,
		"retry_limit":  0,
		"clear_screen": false,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("Failed to load config %v: %w", configPath,
				err)
		}
	} else {
		for _, path := range []string{"./simple-cli.toml",
			"$HOME/.simple-cli.toml"} {

			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	k.Load(env.Provider("SIMPLECLI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SIMPLECLI_"))
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("Failed to parse config: %w", err)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be greater than zero, got %v",
			cfg.PageSize)
	}

	return &cfg, nil
}
