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
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/internal/config"
	rdfhttp "github.com/cayleygraph/rdfstore/server/http"
)

// NewHandler returns the HTTP API of a store together with the metrics endpoint.
func NewHandler(st graph.Store, cfg *config.Config) http.Handler {
	api := rdfhttp.NewAPIv2(st)
	api.SetReadOnly(cfg.ReadOnly)
	api.SetTimeout(cfg.Timeout)
	api.SetBatchSize(cfg.LoadBatch)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", api)
	return mux
}

func NewHttpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve an HTTP endpoint on the given host and port.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := bindFlags(cmd, map[string]string{
				config.KeyHost:     "host",
				config.KeyPort:     "port",
				config.KeyReadOnly: "read_only",
				config.KeyTimeout:  "timeout",
			})
			if err != nil {
				return err
			}
			var st graph.Store
			if _, err := inputPath(cmd, args); errors.Is(err, errNoInput) {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				if st, err = openStore(cfg); err != nil {
					return err
				}
			} else if st, err = openWithInput(cmd, args); err != nil {
				return err
			}
			defer st.Close()

			cfg := config.Load(viper.GetViper())
			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           NewHandler(st, cfg),
				ReadHeaderTimeout: 10 * time.Second,
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				errc <- srv.ListenAndServe()
			}()
			clog.Infof("listening on %s, API at http://%s/api/v2", cfg.Addr(), cfg.Addr())
			if cfg.ReadOnly {
				clog.Infof("writes are disabled")
			}
			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			clog.Infof("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("host", "127.0.0.1", "host to listen on")
	cmd.Flags().String("port", "64210", "port to listen on")
	cmd.Flags().Bool("read_only", false, "disable writing via HTTP")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "elapsed time until an individual request times out")
	registerLoadFlags(cmd)
	return cmd
}

const defaultAddress = "http://localhost:64210/"

func NewHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health [address]",
		Short: "Health check HTTP server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := defaultAddress
			if len(args) == 1 {
				address = args[0]
			}
			resp, err := http.Get(strings.TrimSuffix(address, "/") + "/health")
			if err != nil {
				return err
			}
			resp.Body.Close()
			if resp.StatusCode/100 != 2 {
				return fmt.Errorf("unhealthy: %s", resp.Status)
			}
			return nil
		},
	}
}
