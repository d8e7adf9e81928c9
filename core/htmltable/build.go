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

package htmltable

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/google/tablesorter/core/sorting"
)

// Record is the raw annotation text of one domain row
type Record struct {
	Name  string
	Date  string
	Price string
}

// Build creates a standalone document holding one table with a sortable
// header per sort type and one row per record, annotated the way Parse
// expects. Rows are emitted in name order, which a sorter bound to the
// table takes as its initial order.
func Build(records []Record, opts Options) *Table {
	sel := opts.Selectors
	title := cases.Title(language.English)

	headRow := element(atom.Tr)
	for _, st := range sorting.Available() {
		cell := element(atom.Td, html.Attribute{Key: sel.SortTypeAttr, Val: st.String()})
		control := element(atom.B)
		control.AppendChild(text(title.String(st.String())))
		cell.AppendChild(control)
		headRow.AppendChild(cell)
	}
	thead := element(atom.Thead)
	thead.AppendChild(headRow)

	projections := make([]sorting.Projection, len(records))
	for i, rec := range records {
		projections[i] = sorting.NewProjection(rec.Name, rec.Date, rec.Price)
	}

	tbody := element(atom.Tbody)
	for _, idx := range sorting.Order(projections, sorting.CompareByName) {
		rec := records[idx]
		tr := element(atom.Tr)
		tr.AppendChild(annotatedCell(sel.NameClass, sel.NameAttr, rec.Name))
		tr.AppendChild(annotatedCell(sel.DateClass, sel.DateAttr, rec.Date))
		tr.AppendChild(annotatedCell(sel.PriceClass, sel.PriceAttr, rec.Price))
		tbody.AppendChild(tr)
	}

	var tableAttrs []html.Attribute
	if opts.TableID != "" {
		tableAttrs = append(tableAttrs, html.Attribute{Key: "id", Val: opts.TableID})
	}
	table := element(atom.Table, tableAttrs...)
	table.AppendChild(thead)
	table.AppendChild(tbody)

	body := element(atom.Body)
	body.AppendChild(table)
	root := element(atom.Html)
	root.AppendChild(element(atom.Head))
	root.AppendChild(body)
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(root)

	t, err := FromDocument(doc, opts)
	if err != nil {
		// The document above always has a table, thead and tbody.
		panic(err)
	}
	return t
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func annotatedCell(class, attr, value string) *html.Node {
	cell := element(atom.Td,
		html.Attribute{Key: "class", Val: class},
		html.Attribute{Key: attr, Val: value},
	)
	cell.AppendChild(text(value))
	return cell
}
