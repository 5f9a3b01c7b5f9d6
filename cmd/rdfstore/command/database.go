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

package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	_ "github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/internal"
	"github.com/cayleygraph/rdfstore/internal/config"
	"github.com/cayleygraph/rdfstore/term"
)

const (
	flagLoad       = "load"
	flagLoadFormat = "load_format"
	flagBatch      = "batch"
	flagDump       = "dump"
	flagDumpFormat = "dump_format"
	flagCanonical  = "canonical"
)

var errNoInput = errors.New("one quads file must be specified")

func registerLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagLoad, "i", "", `quad file to load (".gz" and ".bz2" supported, "-" for stdin)`)
	var names []string
	for _, f := range quad.Formats() {
		if f.Reader != nil {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	cmd.Flags().String(flagLoadFormat, "", `quad file format to use for loading instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
	cmd.Flags().Int(flagBatch, quad.DefaultBatch, "size of quad batches to load at once")
	cmd.Flags().Bool(flagCanonical, false, "compare typed literals by their canonical lexical form")
}

func registerDumpFlags(cmd *cobra.Command, def string) {
	cmd.Flags().StringP(flagDump, "o", def, `quad file to dump the store to (".gz" supported, "-" for stdout)`)
	var names []string
	for _, f := range quad.Formats() {
		if f.Writer != nil {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	cmd.Flags().String(flagDumpFormat, "", `quad file format to use instead of auto-detection ("`+strings.Join(names, `", "`)+`")`)
}

// bindFlags binds config keys to the flags of the running command only,
// so commands sharing a key do not override each other.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		var f *pflag.Flag
		if f = cmd.Flags().Lookup(name); f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	err := bindFlags(cmd, map[string]string{
		config.KeyLoadFormat: flagLoadFormat,
		config.KeyLoadBatch:  flagBatch,
		config.KeyCanonical:  flagCanonical,
	})
	if err != nil {
		return nil, err
	}
	return config.Load(viper.GetViper()), nil
}

func openStore(cfg *config.Config) (graph.Store, error) {
	opts := cfg.StoreOptions()
	opts["logger"] = clog.Default()
	st, err := graph.NewStore(cfg.Backend, opts)
	if err != nil {
		return nil, err
	}
	clog.Infof("using backend %q", cfg.Backend)
	return st, nil
}

func inputPath(cmd *cobra.Command, args []string) (string, error) {
	load, _ := cmd.Flags().GetString(flagLoad)
	if load == "" && len(args) == 1 {
		load = args[0]
	}
	if load == "" {
		return "", errNoInput
	}
	return load, nil
}

// openWithInput creates a store and loads the input file of the command into it.
func openWithInput(cmd *cobra.Command, args []string) (graph.Store, error) {
	load, err := inputPath(cmd, args)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	read, added, err := internal.Load(st, cfg.LoadBatch, load, cfg.LoadFormat)
	if err != nil {
		st.Close()
		return nil, err
	}
	clog.Infof("loaded %q in %v", load, time.Since(start))
	fmt.Fprintf(cmd.ErrOrStderr(), "read %d quads, stored %d statements\n", read, added)
	return st, nil
}

func dumpStore(cmd *cobra.Command, st graph.Store) error {
	dump, _ := cmd.Flags().GetString(flagDump)
	if dump == "" {
		return nil
	}
	typ, _ := cmd.Flags().GetString(flagDumpFormat)
	seq := st.Match(graph.Any, graph.Any, graph.Any)
	var (
		n   int
		err error
	)
	if dump == "-" {
		n, err = internal.DumpTo(cmd.OutOrStdout(), seq, dump, typ)
	} else {
		n, err = internal.Dump(seq, dump, typ)
	}
	if err != nil {
		return err
	}
	if dump != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d statements were written to %q\n", n, dump)
	}
	return nil
}

func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load a quad file and report how many distinct statements it holds.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openWithInput(cmd, args)
			if err != nil {
				return err
			}
			defer st.Close()
			return dumpStore(cmd, st)
		},
	}
	registerLoadFlags(cmd)
	registerDumpFlags(cmd, "")
	return cmd
}

func NewDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Load a quad file and write it back in another format.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openWithInput(cmd, args)
			if err != nil {
				return err
			}
			defer st.Close()
			return dumpStore(cmd, st)
		},
	}
	registerLoadFlags(cmd)
	registerDumpFlags(cmd, "-")
	return cmd
}

func iriFlag(cmd *cobra.Command, name string) (term.IRI, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return "", fmt.Errorf("--%s must be set", name)
	}
	t, err := term.Parse(term.NewScope(), s)
	if err != nil {
		return "", err
	}
	iri, ok := t.(term.IRI)
	if !ok {
		return "", fmt.Errorf("--%s: %v is not an IRI", name, t)
	}
	return iri, nil
}

func NewRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Replace a resource with a new IRI in every statement.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := iriFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := iriFlag(cmd, "to")
			if err != nil {
				return err
			}
			st, err := openWithInput(cmd, args)
			if err != nil {
				return err
			}
			defer st.Close()

			n := st.Match(graph.Exactly(from), graph.Any, graph.Any).Len() +
				st.Match(graph.Any, graph.Any, graph.Exactly(from)).Len() -
				st.Match(graph.Exactly(from), graph.Any, graph.Exactly(from)).Len()
			if _, err = st.RenameResource(from, string(to)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "renamed %v to %v in %d statements\n", from, to, n)
			return dumpStore(cmd, st)
		},
	}
	cmd.Flags().String("from", "", "IRI of the resource to rename")
	cmd.Flags().String("to", "", "new IRI of the resource")
	registerLoadFlags(cmd)
	registerDumpFlags(cmd, "-")
	return cmd
}

func NewPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove every statement matching a pattern.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := term.NewScope()
			var pats [3]graph.Pattern
			for i, name := range [3]string{"sub", "pred", "obj"} {
				s, _ := cmd.Flags().GetString(name)
				t, err := term.Parse(sc, s)
				if err != nil {
					return fmt.Errorf("--%s: %w", name, err)
				} else if _, ok := t.(term.BlankNode); ok {
					return fmt.Errorf("--%s: blank nodes of the input cannot be addressed", name)
				}
				pats[i] = graph.Exactly(t)
			}
			if pats[0].IsAny() && pats[1].IsAny() && pats[2].IsAny() {
				return errors.New("at least one of --sub, --pred or --obj must be set")
			}
			st, err := openWithInput(cmd, args)
			if err != nil {
				return err
			}
			defer st.Close()

			n := st.RemoveAll(pats[0], pats[1], pats[2])
			fmt.Fprintf(cmd.ErrOrStderr(), "removed %d statements\n", n)
			return dumpStore(cmd, st)
		},
	}
	cmd.Flags().String("sub", "", "subject to match")
	cmd.Flags().String("pred", "", "predicate to match")
	cmd.Flags().String("obj", "", "object to match")
	registerLoadFlags(cmd)
	registerDumpFlags(cmd, "-")
	return cmd
}
