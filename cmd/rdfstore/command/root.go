// Copyright 2017 The Cayley Authors. All rights reserved.
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

// Package command implements the rdfstore command line.
package command

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/clog/glog"
	zaplog "github.com/cayleygraph/rdfstore/clog/zap"
	"github.com/cayleygraph/rdfstore/internal/config"
	"github.com/cayleygraph/rdfstore/version"
)

const (
	flagConfig = "config"
	flagLog    = "log"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rdfstore",
		Short:         "An in-memory RDF statement store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd); err != nil {
				return err
			}
			file, _ := cmd.Flags().GetString(flagConfig)
			if err := config.Init(viper.GetViper(), file); err != nil {
				return err
			}
			if f := viper.ConfigFileUsed(); f != "" {
				clog.Infof("using config file %q", f)
			}
			return nil
		},
	}
	root.PersistentFlags().String(flagConfig, "", "path to an explicit configuration file")
	root.PersistentFlags().String(flagLog, "glog", `logger to use ("glog" or "zap")`)
	// glog flags, including -v for verbosity
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		NewLoadCmd(),
		NewDumpCmd(),
		NewRenameCmd(),
		NewPruneCmd(),
		NewHttpCmd(),
		NewHealthCmd(),
		NewVersionCmd(),
	)
	return root
}

func setupLogging(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString(flagLog)
	switch name {
	case "", "glog":
		glog.Install()
	case "zap":
		l, err := zaplog.NewProduction("")
		if err != nil {
			return err
		}
		clog.SetLogger(l)
	default:
		return fmt.Errorf("unsupported logger: %q", name)
	}
	if f := flag.Lookup("v"); f != nil {
		if lvl, err := strconv.Atoi(f.Value.String()); err == nil {
			clog.SetV(lvl)
		}
	}
	return nil
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}
