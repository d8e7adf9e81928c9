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

// Package htmltable binds a sorter to a table inside a parsed HTML document.
//
// Rows are expected to carry their sort values in data attributes, the way
// the domain list markup does:
//
//	<thead><tr><td data-sort-type="date"><b>Bought</b></td>...</tr></thead>
//	<tbody><tr>
//	  <td class="dom-name" data-domain-name="example.com">example.com</td>
//	  <td class="dom-buy" data-date="01.06.2020">1 June 2020</td>
//	  <td class="dom-price" data-price="100">$100</td>
//	</tr></tbody>
package htmltable

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/sorter"
	"github.com/google/tablesorter/core/sorting"
)

var (
	ErrNoTable    = errors.New("no table found")
	ErrNoHead     = errors.New("table has no thead")
	ErrNoBody     = errors.New("table has no tbody")
	ErrNoHandler  = errors.New("no click handler registered")
	ErrBadHeader  = errors.New("header index out of range")
	ErrNoSortable = errors.New("no sortable header")
)

// Selectors name the classes and attributes the table is annotated with
type Selectors struct {
	SortTypeAttr string
	NameClass    string
	NameAttr     string
	DateClass    string
	DateAttr     string
	PriceClass   string
	PriceAttr    string
}

// DefaultSelectors returns the annotations used by the domain list markup
func DefaultSelectors() Selectors {
	return Selectors{
		SortTypeAttr: "data-sort-type",
		NameClass:    "dom-name",
		NameAttr:     "data-domain-name",
		DateClass:    "dom-buy",
		DateAttr:     "data-date",
		PriceClass:   "dom-price",
		PriceAttr:    "data-price",
	}
}

// Options configures how a table is located and marked
type Options struct {
	// TableID selects the table by id attribute; empty means the first table
	TableID string
	// ActiveClasses are added to the control of the sorted column
	ActiveClasses []string
	Selectors     Selectors
}

// DefaultOptions returns options matching the domain list markup
func DefaultOptions() Options {
	return Options{
		ActiveClasses: []string{"sorted", "can_not_sort_more"},
		Selectors:     DefaultSelectors(),
	}
}

// Header is a sortable column header
type Header struct {
	cell          *html.Node
	control       *html.Node
	sortType      string
	activeClasses []string
}

// SortType returns the raw sort-type annotation
func (h *Header) SortType() string {
	return h.sortType
}

// Label returns the visible text of the header cell
func (h *Header) Label() string {
	return textContent(h.cell)
}

// Active reports whether the header control carries the active classes
func (h *Header) Active() bool {
	if len(h.activeClasses) == 0 {
		return false
	}
	for _, c := range h.activeClasses {
		if !hasClass(h.control, c) {
			return false
		}
	}
	return true
}

// SetActive adds or removes the active classes on the header control
func (h *Header) SetActive(active bool) {
	for _, c := range h.activeClasses {
		if active {
			addClass(h.control, c)
		} else {
			removeClass(h.control, c)
		}
	}
}

// Row is a tbody row
type Row struct {
	node       *html.Node
	projection sorting.Projection
}

// Projection returns the sort values read when the table was loaded
func (r *Row) Projection() sorting.Projection {
	return r.projection
}

// Marker returns the row's class attribute
func (r *Row) Marker() colorize.Marker {
	v, _ := getAttr(r.node, "class")
	return colorize.Marker(v)
}

// SetMarker replaces the row's classes with m
func (r *Row) SetMarker(m colorize.Marker) {
	setAttr(r.node, "class", string(m))
}

// Cells returns the visible text of each cell of the row
func (r *Row) Cells() []string {
	var cells []string
	for child := r.node.FirstChild; child != nil; child = child.NextSibling {
		if isElement("td", "th")(child) {
			cells = append(cells, textContent(child))
		}
	}
	return cells
}

// Table is a sortable table inside an HTML document. It implements
// sorter.Table.
type Table struct {
	doc     *html.Node
	table   *html.Node
	tbody   *html.Node
	headers []*Header
	rows    []*Row
	handler func(sorter.Header)
	opts    Options
}

var _ sorter.Table = (*Table)(nil)

// Parse reads an HTML document and binds the table selected by opts
func Parse(r io.Reader, opts Options) (*Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return FromDocument(doc, opts)
}

// FromDocument binds the table selected by opts inside doc
func FromDocument(doc *html.Node, opts Options) (*Table, error) {
	table := findFirst(doc, func(n *html.Node) bool {
		if !isElement("table")(n) {
			return false
		}
		if opts.TableID == "" {
			return true
		}
		id, _ := getAttr(n, "id")
		return id == opts.TableID
	})
	if table == nil {
		if opts.TableID != "" {
			return nil, fmt.Errorf("%w: id %q", ErrNoTable, opts.TableID)
		}
		return nil, ErrNoTable
	}

	thead := firstSection(table, "thead")
	if thead == nil {
		return nil, ErrNoHead
	}
	tbody := firstSection(table, "tbody")
	if tbody == nil {
		return nil, ErrNoBody
	}

	t := &Table{
		doc:   doc,
		table: table,
		tbody: tbody,
		opts:  opts,
	}

	sel := opts.Selectors
	cells := findNodes(thead, func(n *html.Node) bool {
		if !isElement("th", "td")(n) {
			return false
		}
		_, ok := getAttr(n, sel.SortTypeAttr)
		return ok
	})
	for _, cell := range cells {
		sortType, _ := getAttr(cell, sel.SortTypeAttr)
		control := findFirst(cell, isElement("b"))
		if control == nil {
			control = cell
		}
		t.headers = append(t.headers, &Header{
			cell:          cell,
			control:       control,
			sortType:      sortType,
			activeClasses: opts.ActiveClasses,
		})
	}

	for _, tr := range childElements(tbody, "tr") {
		t.rows = append(t.rows, &Row{
			node: tr,
			projection: sorting.NewProjection(
				annotation(tr, sel.NameClass, sel.NameAttr),
				annotation(tr, sel.DateClass, sel.DateAttr),
				annotation(tr, sel.PriceClass, sel.PriceAttr),
			),
		})
	}
	return t, nil
}

// firstSection finds the first thead/tbody of table, skipping nested tables
func firstSection(table *html.Node, tag string) *html.Node {
	for child := table.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == tag {
			return child
		}
	}
	return nil
}

// annotation reads attr from the first element below row with class
func annotation(row *html.Node, class, attr string) string {
	n := findFirst(row, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, class)
	})
	if n == nil {
		return ""
	}
	v, _ := getAttr(n, attr)
	return v
}

// Headers returns the sortable headers in document order
func (t *Table) Headers() []sorter.Header {
	headers := make([]sorter.Header, len(t.headers))
	for i, h := range t.headers {
		headers[i] = h
	}
	return headers
}

// HTMLHeaders returns the sortable headers with their concrete type
func (t *Table) HTMLHeaders() []*Header {
	return append([]*Header(nil), t.headers...)
}

// HeaderFor returns the first header whose annotation normalizes to st
func (t *Table) HeaderFor(st sorting.SortType) (*Header, error) {
	for _, h := range t.headers {
		if sorting.Normalize(h.sortType) == st {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w for %q", ErrNoSortable, st)
}

// Rows returns the body rows in their current order
func (t *Table) Rows() []sorter.Row {
	rows := make([]sorter.Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r
	}
	return rows
}

// HTMLRows returns the body rows in their current order with their
// concrete type
func (t *Table) HTMLRows() []*Row {
	return append([]*Row(nil), t.rows...)
}

// ReplaceRows empties the tbody and appends rows in order. Rows that were
// not produced by a Table are dropped, so the body then holds fewer rows
// than given.
func (t *Table) ReplaceRows(rows []sorter.Row) {
	removeChildren(t.tbody)
	t.rows = t.rows[:0]
	for _, r := range rows {
		row, ok := r.(*Row)
		if !ok {
			continue
		}
		if row.node.Parent != nil {
			row.node.Parent.RemoveChild(row.node)
		}
		t.tbody.AppendChild(row.node)
		t.rows = append(t.rows, row)
	}
}

// OnHeaderClick registers the click handler for all headers
func (t *Table) OnHeaderClick(handler func(sorter.Header)) {
	t.handler = handler
}

// Click dispatches a click on header i
func (t *Table) Click(i int) error {
	if i < 0 || i >= len(t.headers) {
		return fmt.Errorf("%w: %d of %d", ErrBadHeader, i, len(t.headers))
	}
	if t.handler == nil {
		return ErrNoHandler
	}
	t.handler(t.headers[i])
	return nil
}

// Render writes the whole document
func (t *Table) Render(w io.Writer) error {
	return html.Render(w, t.doc)
}
