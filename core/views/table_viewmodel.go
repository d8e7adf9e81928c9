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

package views

import (
	"github.com/google/safehtml"

	"github.com/google/tablesorter/core/htmltable"
	"github.com/google/tablesorter/core/query"
	"github.com/google/tablesorter/core/sorting"
)

// TableViewModel contains the data from the table formatted for template consumption
type TableViewModel struct {
	Title       string
	TableName   string
	Headers     []HeaderInfo // Sortable headers in document order
	Rows        []RowInfo    // Body rows in their rendered order
	CurrentSort string       // Sort type the table is displayed in
	Redraws     int          // Redraw notifications seen for this table
	ResetURL    safehtml.URL // Table URL without a click
	RawURL      safehtml.URL // URL of the serialized table document
}

// HeaderInfo contains information about a sortable header for UI display
type HeaderInfo struct {
	Label    string
	SortType string       // Raw sort-type annotation
	IsActive bool         // Whether this is the sorted column
	ClickURL safehtml.URL // URL that clicks this header
}

// RowInfo is one rendered row
type RowInfo struct {
	Class string   // Marker assigned by the colorizer
	Cells []string // Visible cell text
}

// LandingViewModel lists the tables served
type LandingViewModel struct {
	Title    string
	Subtitle string
	Tables   []TableInfo
}

// TableInfo describes one table on the landing page
type TableInfo struct {
	Name        string
	URL         safehtml.URL
	RecordCount int
}

// BuildViewModel builds the page model from the current state of the table
func BuildViewModel(title string, table *htmltable.Table, current sorting.SortType, redraws int, q *query.Query) TableViewModel {
	vm := TableViewModel{
		Title:       title,
		TableName:   q.Table,
		CurrentSort: current.String(),
		Redraws:     redraws,
		ResetURL:    q.WithoutClick(),
	}

	raw := q.Clone()
	raw.Path = "/raw"
	vm.RawURL = raw.WithoutClick()

	for i, h := range table.HTMLHeaders() {
		vm.Headers = append(vm.Headers, HeaderInfo{
			Label:    h.Label(),
			SortType: h.SortType(),
			IsActive: h.Active(),
			ClickURL: q.WithColumn(i),
		})
	}

	for _, r := range table.HTMLRows() {
		vm.Rows = append(vm.Rows, RowInfo{
			Class: string(r.Marker()),
			Cells: r.Cells(),
		})
	}
	return vm
}
