/* extremum - lowest and highest value selection
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

var config = emptyConfig()

func emptyConfig() *toml.Tree {
	tree, _ := toml.TreeFromMap(map[string]interface{}{})
	return tree
}

// LoadConfig loads the configuration from the specified file.
func LoadConfig(file string) error {
	tree, err := toml.LoadFile(file)
	if err != nil {
		return errors.Wrapf(err, "unable to load configuration file %s", file)
	}
	config = tree
	return nil
}

// LoadConfigString loads the configuration from TOML text.
func LoadConfigString(content string) error {
	tree, err := toml.Load(content)
	if err != nil {
		return errors.Wrap(err, "unable to parse configuration")
	}
	config = tree
	return nil
}

// SetConfig overrides a single configuration value.
func SetConfig(key string, value interface{}) {
	// TOML integers are always int64
	if v, ok := value.(int); ok {
		value = int64(v)
	}
	config.Set(key, value)
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(int64)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(bool)
	if ok {
		return val
	}
	return def
}

// ResetConfig discards all loaded and overridden configuration values.
func ResetConfig() {
	config = emptyConfig()
}
