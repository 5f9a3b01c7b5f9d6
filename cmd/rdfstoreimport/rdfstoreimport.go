package main

import (
	"encoding/json"
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
)

const defaultFormat = "nquads"

// NewCmd creates the command
func NewCmd() *cobra.Command {
	var uri, formatName string

	var cmd = &cobra.Command{
		Use:   "rdfstoreimport <file>",
		Short: "Import data into an rdfstore server. If no file is provided, rdfstoreimport reads from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format *quad.Format
			if formatName != "" {
				format = quad.FormatByName(formatName)
				if format == nil {
					return fmt.Errorf("unknown format: %q", formatName)
				}
			}
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				fileName := args[0]
				if format == nil {
					format = quad.FormatByExt(filepath.Ext(fileName))
				}
				file, err := os.Open(fileName)
				if err != nil {
					return err
				}
				defer file.Close()
				r = file
			}
			if format == nil {
				format = quad.FormatByName(defaultFormat)
			}
			resp, err := http.Post(strings.TrimSuffix(uri, "/")+"/api/v2/write", format.Mime[0], r)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			var response struct {
				Result string `json:"result"`
				Error  string `json:"error"`
				Count  int    `json:"count"`
				Added  int    `json:"added"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
				return fmt.Errorf("cannot decode response: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("import failed: %s: %s", resp.Status, response.Error)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d new statements.\n", response.Result, response.Added)
			return nil
		},
	}

	cmd.Flags().StringVarP(&uri, "uri", "", "http://127.0.0.1:64210", "rdfstore server address")
	cmd.Flags().StringVarP(&formatName, "format", "", "", "format of the provided data (if can not be detected defaults to N-Quads)")
	return cmd
}

func main() {
	cmd := NewCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
