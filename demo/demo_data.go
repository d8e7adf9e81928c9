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

// Package demo provides the sample tables served when no sources are configured.
package demo

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/csvimport"
	"github.com/google/tablesorter/core/htmltable"
)

//go:embed data/domains.csv
var domainsCSV string

//go:embed data/archive.yaml
var archiveYAML string

//go:embed data/listing.html
var listingHTML string

// TableAdder receives the demo tables
type TableAdder interface {
	AddTable(name string, table *htmltable.Table, palette colorize.Palette) error
}

// CreateDomainsTable builds a table from the embedded CSV records
func CreateDomainsTable(opts htmltable.Options) (*htmltable.Table, error) {
	records, err := csvimport.ImportFromReader(strings.NewReader(domainsCSV), csvimport.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to import domains CSV: %w", err)
	}
	return htmltable.Build(records, opts), nil
}

// CreateArchiveTable builds a table from the embedded YAML records
func CreateArchiveTable(opts htmltable.Options) (*htmltable.Table, error) {
	records, err := csvimport.ImportYAML(strings.NewReader(archiveYAML))
	if err != nil {
		return nil, fmt.Errorf("failed to import archive YAML: %w", err)
	}
	return htmltable.Build(records, opts), nil
}

// CreateListingTable parses the embedded listing page. The page has a
// layout table before the listing, so the table is selected by id.
func CreateListingTable(opts htmltable.Options) (*htmltable.Table, error) {
	opts.TableID = "domains"
	table, err := htmltable.Parse(strings.NewReader(listingHTML), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}
	return table, nil
}

// Register adds all demo tables to dst
func Register(dst TableAdder, opts htmltable.Options, palette colorize.Palette, logger *slog.Logger) error {
	creators := []struct {
		name   string
		create func(htmltable.Options) (*htmltable.Table, error)
	}{
		{"domains", CreateDomainsTable},
		{"archive", CreateArchiveTable},
		{"listing", CreateListingTable},
	}

	for _, c := range creators {
		table, err := c.create(opts)
		if err != nil {
			return err
		}
		if err := dst.AddTable(c.name, table, palette); err != nil {
			return err
		}
		logger.Info("demo table loaded", "table", c.name, "rows", len(table.HTMLRows()))
	}
	return nil
}
