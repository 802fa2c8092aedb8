// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: December 2025
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

package config

import (
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

var envVarPattern = regexp.MustCompile(`^\$\{env\.(\w+)\}$`)

// Read loads the configuration file at path on top of the defaults, then
// dereferences "${env.NAME}" values on string-typed settings.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration file")
	}

	cfg := Defaults()

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decoding configuration file")
	}

	for _, value := range []*string{
		&cfg.Server.LogLevel,
		&cfg.Server.MetricsInet,
		&cfg.Channel.Inet,
		&cfg.Channel.AuthPassword,
		&cfg.Store.KV.Path,
		&cfg.Store.FST.Path,
	} {
		dereferenced, err := dereferenceEnv(*value)
		if err != nil {
			return nil, err
		}

		*value = dereferenced
	}

	return &cfg, nil
}

// dereferenceEnv resolves a "${env.NAME}" value against the environment.
// Plain values pass through untouched; an unset referenced variable is a
// configuration error.
func dereferenceEnv(value string) (string, error) {
	matches := envVarPattern.FindStringSubmatch(value)
	if matches == nil {
		return value, nil
	}

	resolved, ok := os.LookupEnv(matches[1])
	if !ok {
		return "", errors.Errorf("environment variable '%s' is not set", matches[1])
	}

	return resolved, nil
}
