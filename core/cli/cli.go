/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesorter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the tablesorter command line.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/google/tablesorter/core/config"
	"github.com/google/tablesorter/core/csvimport"
	"github.com/google/tablesorter/core/htmltable"
	"github.com/google/tablesorter/core/server"
	"github.com/google/tablesorter/core/sorter"
	"github.com/google/tablesorter/core/sorting"
	"github.com/google/tablesorter/core/termtable"
	"github.com/google/tablesorter/demo"
)

const shutdownTimeout = 5 * time.Second

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	var configPath string

	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          "tablesorter",
		Short:        "Sort annotated domain tables",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "tablesorter.toml", "configuration file",
	)

	rootCmd.AddCommand(newServeCommand(&configPath))
	rootCmd.AddCommand(newSortCommand(&configPath))
	return rootCmd
}

func newServeCommand(configPath *string) *cobra.Command {
	var listen string

	cmdServe := &cobra.Command{
		Use:   "serve [SOURCE...]",
		Short: "Serve sortable tables over HTTP",
		Long: "Serve the configured sources, plus any given on the command line. " +
			"Without sources the demo tables are served.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(*configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())

			srv, err := buildServer(cfg, args, logger)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cmd.OutOrStdout(), cfg.Server.Listen, srv.Handler(), logger)
		},
	}
	cmdServe.Flags().SortFlags = false
	cmdServe.Flags().StringVarP(
		&listen, "listen", "l", "", "listen address, overrides the configuration",
	)
	return cmdServe
}

// sourceName names a command line source after its file
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// buildServer loads every source into a new server
func buildServer(cfg *config.Config, args []string, logger *slog.Logger) (*server.Server, error) {
	srv, err := server.NewServer(logger, cfg.RenderOptions())
	if err != nil {
		return nil, err
	}

	sources := append([]config.SourceConfig(nil), cfg.Sources...)
	for _, path := range args {
		sources = append(sources, config.SourceConfig{Name: sourceName(path), Path: path})
	}

	if len(sources) == 0 {
		logger.Info("no sources configured, serving demo tables")
		if err := demo.Register(srv, cfg.TableOptions(), cfg.Palette(), logger); err != nil {
			return nil, err
		}
		return srv, nil
	}

	for _, src := range sources {
		table, err := csvimport.ImportTable(src.Path, csvimport.DefaultOptions(), cfg.TableOptions())
		if err != nil {
			return nil, fmt.Errorf("loading source %q: %w", src.Name, err)
		}
		if err := srv.AddTable(src.Name, table, cfg.Palette()); err != nil {
			return nil, err
		}
		logger.Info("table loaded", "table", src.Name, "path", src.Path, "rows", len(table.HTMLRows()))
	}
	return srv, nil
}

// runServe serves handler on listen until ctx is done or a signal arrives
func runServe(ctx context.Context, out io.Writer, listen string, handler http.Handler, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:    listen,
		Handler: handler,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- httpServer.ListenAndServe()
	}()
	fmt.Fprintf(out, "Server starting on http://%s\n", listen)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newSortCommand(configPath *string) *cobra.Command {
	var (
		by      []string
		format  string
		outPath string
		tableID string
	)

	cmdSort := &cobra.Command{
		Use:   "sort SOURCE",
		Short: "Sort a table and print the result",
		Long: "Load a table from an HTML page or a CSV/YAML record file and click the " +
			"headers given by --by in order. The document order counts as the name order, " +
			"so clicking name first leaves it unchanged.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(*configPath)
			if err != nil {
				return err
			}
			if format != "html" && format != "term" {
				return fmt.Errorf("unknown format %q, expected html or term", format)
			}
			clicks := make([]sorting.SortType, 0, len(by))
			for _, raw := range by {
				st := sorting.SortType(strings.ToLower(strings.TrimSpace(raw)))
				if !st.Valid() {
					return fmt.Errorf("unknown sort type %q, expected one of %v", raw, sorting.Available())
				}
				clicks = append(clicks, st)
			}

			tableOpts := cfg.TableOptions()
			if tableID != "" {
				tableOpts.TableID = tableID
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())

			table, err := csvimport.ImportTable(args[0], csvimport.DefaultOptions(), tableOpts)
			if err != nil {
				return err
			}
			if err := sortTable(table, clicks, cfg, logger); err != nil {
				return err
			}

			var buf bytes.Buffer
			if format == "term" {
				err = termtable.Render(&buf, table)
			} else {
				err = table.Render(&buf)
			}
			if err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			if outPath == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := atomic.WriteFile(outPath, &buf); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			logger.Info("table written", "path", outPath)
			return nil
		},
	}
	cmdSort.Flags().SortFlags = false
	cmdSort.Flags().StringSliceVarP(
		&by, "by", "b", []string{string(sorting.ByName)}, "sort types to click in order (comma-separated)",
	)
	cmdSort.Flags().StringVarP(
		&format, "format", "f", "html", `output format ("html" or "term")`,
	)
	cmdSort.Flags().StringVarP(
		&outPath, "out", "o", "", "write the result to this file instead of stdout",
	)
	cmdSort.Flags().StringVar(
		&tableID, "table-id", "", "id of the table to sort in an HTML page",
	)
	return cmdSort
}

// sortTable binds a sorter to table and clicks the headers for clicks in order
func sortTable(table *htmltable.Table, clicks []sorting.SortType, cfg *config.Config, logger *slog.Logger) error {
	s := sorter.New(table, sorter.WithLogger(logger), sorter.WithPalette(cfg.Palette()))
	for _, st := range clicks {
		header, err := table.HeaderFor(st)
		if err != nil {
			return err
		}
		if !s.HandleClick(header) {
			logger.Debug("click ignored, table already sorted", "sort", st)
		}
	}
	return nil
}
