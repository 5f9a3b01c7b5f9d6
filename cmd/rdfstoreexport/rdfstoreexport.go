package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"
	"github.com/spf13/cobra"

	"github.com/cayleygraph/rdfstore/clog"
)

const defaultFormat = "nquads"

// NewCmd creates the command
func NewCmd() *cobra.Command {
	var quiet bool
	var uri, formatName, out string

	var cmd = &cobra.Command{
		Use:   "rdfstoreexport",
		Short: "Export data from an rdfstore server. If no file is provided, rdfstoreexport writes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				clog.SetLogger(clog.Discard)
			}
			var format *quad.Format
			var w io.Writer
			if formatName != "" {
				format = quad.FormatByName(formatName)
			}
			if out == "" {
				w = cmd.OutOrStdout()
			} else {
				if formatName == "" {
					format = quad.FormatByExt(filepath.Ext(out))
					if format == nil {
						clog.Warningf("File has unknown extension %v. Defaulting to %v", out, defaultFormat)
					}
				}
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				w = file
				defer file.Close()
			}
			if format == nil {
				format = quad.FormatByName(defaultFormat)
			}
			req, err := http.NewRequest(http.MethodGet, strings.TrimSuffix(uri, "/")+"/api/v2/read", nil)
			if err != nil {
				return err
			}
			req.Header.Set("Accept", format.Mime[0])
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("export failed: %s", resp.Status)
			}
			_, err = io.Copy(w, resp.Body)
			return err
		},
	}

	cmd.Flags().StringVarP(&uri, "uri", "", "http://127.0.0.1:64210", "rdfstore server address")
	cmd.Flags().StringVarP(&formatName, "format", "", "", "format of the exported data (if can not be detected defaults to N-Quads)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file; if not specified, stdout is used")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide all log output")

	return cmd
}

func main() {
	cmd := NewCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
