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

// Package sorter implements the stateful part of the table sorter: it reacts
// to header clicks by reordering, recoloring and re-rendering the rows of a
// table, and notifies observers after each redraw.
//
// A Sorter is not safe for concurrent use. Callers that receive clicks from
// several goroutines must serialize them.
package sorter

import (
	"io"
	"log/slog"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/sorting"
)

// Row is one body row of a table
type Row interface {
	colorize.Markable
	// Projection returns the values the row is sorted by
	Projection() sorting.Projection
}

// Header is a clickable column header
type Header interface {
	// SortType returns the raw sort-type annotation of the header
	SortType() string
	// SetActive marks or unmarks the header as the sorted column
	SetActive(active bool)
}

// Table is the rendered table a Sorter drives
type Table interface {
	Headers() []Header
	// Rows returns the body rows in their current order
	Rows() []Row
	// ReplaceRows replaces the rendered body rows with rows, in order.
	// The sorter only passes rows it got from Rows; an implementation may
	// drop rows of a type it did not produce.
	ReplaceRows(rows []Row)
	// OnHeaderClick registers the handler for clicks on any header
	OnHeaderClick(handler func(Header))
}

// RedrawFunc is called after every completed sort-and-render
type RedrawFunc func(Table)

type observer struct {
	id int
	fn RedrawFunc
}

// Option configures a Sorter
type Option func(*Sorter)

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sorter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPalette sets the markers rows are colorized with
func WithPalette(palette colorize.Palette) Option {
	return func(s *Sorter) {
		if len(palette) > 0 {
			s.palette = palette
		}
	}
}

// Sorter sorts the rows of one table
type Sorter struct {
	table       Table
	headers     []Header
	rows        []Row
	projections []sorting.Projection
	cache       sorting.Cache
	current     sorting.SortType
	palette     colorize.Palette
	comparators map[sorting.SortType]sorting.Comparator
	observers   []observer
	nextID      int
	logger      *slog.Logger
}

// New captures the headers and current rows of table and registers the
// click handler. The current row order is taken to be the name order.
func New(table Table, opts ...Option) *Sorter {
	s := &Sorter{
		table:   table,
		headers: table.Headers(),
		rows:    table.Rows(),
		current: sorting.Default,
		palette: colorize.DefaultPalette(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.comparators = make(map[sorting.SortType]sorting.Comparator)
	for _, st := range sorting.Available() {
		s.comparators[st] = sorting.ComparatorFor(st)
	}
	for _, opt := range opts {
		opt(s)
	}

	s.projections = make([]sorting.Projection, len(s.rows))
	base := make([]int, len(s.rows))
	for i, row := range s.rows {
		p := row.Projection()
		s.projections[i] = p
		base[i] = i
		if !p.Valid() {
			s.logger.Debug("row has unsortable values, it will sort last",
				"row", i, "name", p.Name, "date", p.Date.Text, "price", p.Price.Text)
		}
	}
	s.cache.Put(sorting.Default, base)

	table.OnHeaderClick(func(h Header) {
		s.HandleClick(h)
	})
	return s
}

// Current returns the sort type the table is displayed in
func (s *Sorter) Current() sorting.SortType {
	return s.current
}

// CachedOrder returns a copy of the cached row order for t, as indices into
// the rows captured by New.
func (s *Sorter) CachedOrder(t sorting.SortType) ([]int, bool) {
	order, ok := s.cache.Get(t)
	if !ok {
		return nil, false
	}
	return append([]int(nil), order...), true
}

// OnRedraw registers fn to be called after each redraw. Observers run in
// registration order, after the rows are rendered and Current reports the
// new sort type. The returned func removes the registration.
func (s *Sorter) OnRedraw(fn RedrawFunc) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// HandleClick sorts the table by the sort type of header. Clicking the
// column the table is already sorted by does nothing. Returns whether the
// table was redrawn.
func (s *Sorter) HandleClick(header Header) bool {
	requested := sorting.Normalize(header.SortType())
	if requested == s.current {
		return false
	}

	for _, h := range s.headers {
		h.SetActive(false)
	}
	header.SetActive(true)

	computed := false
	order := s.cache.GetOrCompute(requested, func() []int {
		computed = true
		return sorting.Order(s.projections, s.comparators[requested])
	})
	if computed {
		s.logger.Debug("row order cached", "sort", requested, "rows", len(s.rows), "cached", s.cache.Computed())
	}

	rows := make([]Row, len(order))
	for i, idx := range order {
		rows[i] = s.rows[idx]
	}
	s.Render(colorize.ColorizeWith(rows, s.palette))

	s.logger.Debug("table redrawn", "from", s.current, "to", requested)
	s.current = requested

	for _, o := range s.observers {
		o.fn(s.table)
	}
	return true
}

// Render replaces the rendered body of the table with rows
func (s *Sorter) Render(rows []Row) {
	s.table.ReplaceRows(rows)
}
