// Copyright 2025 Supabase, Inc.
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

// Package viperutil wraps viper so that each command owns an isolated
// configuration registry whose values are declared once, with their defaults
// and flags, and read back with their Go types.
package viperutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Registry holds the viper instance values are configured in.
type Registry struct {
	v *viper.Viper
}

// NewRegistry creates an isolated registry. Every key can also be set from
// the environment as <envPrefix>_<KEY>, with dashes replaced by underscores.
func NewRegistry(envPrefix string) *Registry {
	v := viper.New()
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		v.AutomaticEnv()
	}
	return &Registry{v: v}
}

// LoadConfigFile reads a config file into the registry. The file type is
// inferred from the extension.
func (reg *Registry) LoadConfigFile(file string) error {
	reg.v.SetConfigFile(file)
	if err := reg.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", file, err)
	}
	return nil
}

// Unmarshal decodes every setting into out, a pointer to a struct with
// mapstructure tags. Strings are converted to durations.
func (reg *Registry) Unmarshal(out any) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := reg.v.Unmarshal(out, hook); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Options configures a Value.
type Options[T any] struct {
	// Default is used when no flag, environment variable or config file sets
	// the key.
	Default T
	// FlagName is the flag bound by BindFlags. Empty means the key.
	FlagName string
}

// Bindable is a Value that can be bound to a flag.
type Bindable interface {
	Key() string
	Flag() string
	bind(fs *pflag.FlagSet) error
}

// Value is a typed configuration value.
type Value[T any] struct {
	reg  *Registry
	key  string
	opts Options[T]
}

// Configure declares key in reg and returns its typed handle.
func Configure[T any](reg *Registry, key string, opts Options[T]) *Value[T] {
	if opts.FlagName == "" {
		opts.FlagName = key
	}
	reg.v.SetDefault(key, opts.Default)
	return &Value[T]{reg: reg, key: key, opts: opts}
}

// Key returns the viper key.
func (val *Value[T]) Key() string { return val.key }

// Flag returns the name of the flag the value binds to.
func (val *Value[T]) Flag() string { return val.opts.FlagName }

// Default returns the configured default.
func (val *Value[T]) Default() T { return val.opts.Default }

// Set overrides the value for the lifetime of the registry.
func (val *Value[T]) Set(v T) { val.reg.v.Set(val.key, v) }

// Get returns the current value, converted to T.
func (val *Value[T]) Get() T {
	v := val.reg.v
	var out any
	switch any(val.opts.Default).(type) {
	case string:
		out = v.GetString(val.key)
	case bool:
		out = v.GetBool(val.key)
	case int:
		out = v.GetInt(val.key)
	case time.Duration:
		out = v.GetDuration(val.key)
	case []string:
		out = v.GetStringSlice(val.key)
	default:
		out = v.Get(val.key)
	}
	t, ok := out.(T)
	if !ok {
		return val.opts.Default
	}
	return t
}

func (val *Value[T]) bind(fs *pflag.FlagSet) error {
	f := fs.Lookup(val.opts.FlagName)
	if f == nil {
		return fmt.Errorf("flag --%s for key %s is not defined", val.opts.FlagName, val.key)
	}
	return val.reg.v.BindPFlag(val.key, f)
}

// BindFlags binds each value to its flag in fs. The flags must already be
// defined; a missing flag is a programming error and panics.
func BindFlags(fs *pflag.FlagSet, values ...Bindable) {
	for _, val := range values {
		if err := val.bind(fs); err != nil {
			panic(fmt.Sprintf("viperutil: %v", err))
		}
	}
}
