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

package demo

import (
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/htmltable"
	"github.com/google/tablesorter/core/sorter"
	"github.com/google/tablesorter/core/sorting"
)

type recordingAdder struct {
	tables map[string]*htmltable.Table
}

func (r *recordingAdder) AddTable(name string, table *htmltable.Table, palette colorize.Palette) error {
	r.tables[name] = table
	return nil
}

func TestRegister(t *testing.T) {
	adder := &recordingAdder{tables: make(map[string]*htmltable.Table)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Register(adder, htmltable.DefaultOptions(), colorize.DefaultPalette(), logger); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	expected := map[string]int{"domains": 8, "archive": 4, "listing": 5}
	for name, rows := range expected {
		table, ok := adder.tables[name]
		if !ok {
			t.Errorf("Expected table %s to be registered", name)
			continue
		}
		if got := len(table.HTMLRows()); got != rows {
			t.Errorf("Expected %d rows in %s, got %d", rows, name, got)
		}
		if got := len(table.HTMLHeaders()); got != 3 {
			t.Errorf("Expected 3 sortable headers in %s, got %d", name, got)
		}
	}
}

func TestListingSortsByDate(t *testing.T) {
	table, err := CreateListingTable(htmltable.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	s := sorter.New(table)
	header, err := table.HeaderFor(sorting.ByDate)
	if err != nil {
		t.Fatal(err)
	}
	s.HandleClick(header)

	names := rowNames(table)
	expected := []string{"Brightfield.net", "amberhill.org", "quietlake.com", "northgate.io", "mosspath.dev"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
			break
		}
	}
}

func TestDemoTablesReturnToNameOrder(t *testing.T) {
	creators := map[string]func(htmltable.Options) (*htmltable.Table, error){
		"domains": CreateDomainsTable,
		"archive": CreateArchiveTable,
		"listing": CreateListingTable,
	}
	for name, create := range creators {
		t.Run(name, func(t *testing.T) {
			table, err := create(htmltable.DefaultOptions())
			if err != nil {
				t.Fatal(err)
			}
			initial := rowNames(table)
			if !sort.StringsAreSorted(initial) {
				t.Fatalf("Expected initial rows in name order, got %v", initial)
			}

			s := sorter.New(table)
			for _, st := range []sorting.SortType{sorting.ByDate, sorting.ByName} {
				h, err := table.HeaderFor(st)
				if err != nil {
					t.Fatal(err)
				}
				s.HandleClick(h)
			}

			if s.Current() != sorting.ByName {
				t.Errorf("Expected current sort name, got %s", s.Current())
			}
			if got := rowNames(table); !sort.StringsAreSorted(got) {
				t.Errorf("Expected name order after date then name, got %v", got)
			}
		})
	}
}

func rowNames(table *htmltable.Table) []string {
	var names []string
	for _, r := range table.HTMLRows() {
		names = append(names, r.Projection().Name)
	}
	return names
}
