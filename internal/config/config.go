// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the small set of environment-overridable defaults
// cmd/cardano-cbor needs: which network to address-encode for and how
// verbosely to log.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the tool's environment/file-overridable default set.
type Config struct {
	Network  string `yaml:"network"  envconfig:"NETWORK"`
	LogLevel string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
}

var globalConfig = &Config{
	Network:  "mainnet",
	LogLevel: "info",
}

// Load returns the global config, optionally overlaid from a YAML file
// and then from environment variables. The "dummy" prefix passed to
// envconfig keeps it from picking up unrelated, unannotated env vars.
func Load(configFile string) (*Config, error) {
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, globalConfig); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := envconfig.Process("dummy", globalConfig); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}
	return globalConfig, nil
}

// GetConfig returns the process-wide config instance.
func GetConfig() *Config {
	return globalConfig
}
