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

// Package termtable prints a sorted table to a terminal, styling each row
// by the marker the colorizer gave it.
package termtable

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/htmltable"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	sortedStyle  = headerStyle.Underline(true)
	evenRowStyle = lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the current rows of t as a bordered table. Styles are only
// applied when w is a terminal.
func Render(w io.Writer, t *htmltable.Table) error {
	headers := t.HTMLHeaders()
	labels := make([]string, len(headers))
	sortedCol := -1
	for i, h := range headers {
		labels[i] = h.Label()
		if h.Active() {
			sortedCol = i
		}
	}

	rows := t.HTMLRows()
	data := make([][]string, len(rows))
	markers := make([]colorize.Marker, len(rows))
	for i, r := range rows {
		cells := r.Cells()
		// Only the sortable columns have a header.
		if len(cells) > len(labels) {
			cells = cells[:len(labels)]
		}
		data[i] = cells
		markers[i] = r.Marker()
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(labels...).
		Rows(data...)

	if IsTerminal(w) {
		tbl = tbl.BorderStyle(borderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					if col == sortedCol {
						return sortedStyle
					}
					return headerStyle
				}
				if row >= 0 && row < len(markers) && markers[row] == colorize.Odd {
					return oddRowStyle
				}
				return evenRowStyle
			})
	}

	_, err := io.WriteString(w, tbl.Render()+"\n")
	return err
}
