// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package config reads rdfstore settings from a config file, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/graph"
)

const (
	KeyBackend   = "store.backend"
	KeyCanonical = "store.canonical"

	KeyLoadBatch  = "load.batch"
	KeyLoadFormat = "load.format"

	KeyHost     = "http.host"
	KeyPort     = "http.port"
	KeyReadOnly = "http.read_only"
	KeyTimeout  = "http.timeout"
)

const (
	// EnvPrefix is prepended to upper-cased keys, so http.port is RDFSTORE_HTTP_PORT.
	EnvPrefix = "RDFSTORE"
	// EnvFile names an explicit config file when --config is not given.
	EnvFile = EnvPrefix + "_CFG"
)

// Config defines the behavior of rdfstore instances.
type Config struct {
	Backend    string
	Canonical  bool
	LoadBatch  int
	LoadFormat string
	Host       string
	Port       string
	ReadOnly   bool
	Timeout    time.Duration
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, "memstore")
	v.SetDefault(KeyCanonical, false)
	v.SetDefault(KeyLoadBatch, quad.DefaultBatch)
	v.SetDefault(KeyLoadFormat, "")
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyPort, "64210")
	v.SetDefault(KeyReadOnly, false)
	v.SetDefault(KeyTimeout, 30*time.Second)
}

// Init sets defaults, binds the environment and reads a config file.
//
// An explicit file must exist. Without one, $RDFSTORE_CFG is tried, then
// rdfstore.{yaml,json,toml} in the working directory, $HOME/.rdfstore and
// /etc/rdfstore. Finding no file is not an error.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		if env := os.Getenv(EnvFile); env != "" {
			if _, err := os.Stat(env); err == nil {
				file = env
			}
		}
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("rdfstore")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rdfstore")
		v.AddConfigPath("/etc/rdfstore")
	}
	err := v.ReadInConfig()
	var nf viper.ConfigFileNotFoundError
	if errors.As(err, &nf) && file == "" {
		return nil
	} else if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	return nil
}

// Load returns the settings currently held by v.
func Load(v *viper.Viper) *Config {
	return &Config{
		Backend:    v.GetString(KeyBackend),
		Canonical:  v.GetBool(KeyCanonical),
		LoadBatch:  v.GetInt(KeyLoadBatch),
		LoadFormat: v.GetString(KeyLoadFormat),
		Host:       v.GetString(KeyHost),
		Port:       v.GetString(KeyPort),
		ReadOnly:   v.GetBool(KeyReadOnly),
		Timeout:    v.GetDuration(KeyTimeout),
	}
}

// StoreOptions returns the options passed to graph.NewStore.
func (c *Config) StoreOptions() graph.Options {
	return graph.Options{"canonical": c.Canonical}
}

// Addr is the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
