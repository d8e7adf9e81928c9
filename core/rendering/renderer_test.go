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

package rendering

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/safehtml"

	"github.com/google/tablesorter/core/views"
)

func TestRenderTable(t *testing.T) {
	r, err := NewPageRenderer(DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	vm := views.TableViewModel{
		Title:       "Domains",
		TableName:   "domains",
		CurrentSort: "price",
		Redraws:     2,
		ResetURL:    safehtml.URLSanitized("/table?table=domains"),
		RawURL:      safehtml.URLSanitized("/raw?table=domains"),
		Headers: []views.HeaderInfo{
			{Label: "Name", SortType: "name", ClickURL: safehtml.URLSanitized("/table?col=0&table=domains")},
			{Label: "Price", SortType: "price", IsActive: true, ClickURL: safehtml.URLSanitized("/table?col=1&table=domains")},
		},
		Rows: []views.RowInfo{
			{Class: "even", Cells: []string{"<b>a.com</b>", "5"}},
			{Class: "odd", Cells: []string{"b.com", "9"}},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, vm); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<tr class="even">`,
		`<tr class="odd">`,
		`class="sorted"`,
		`/raw?table=domains`,
		`&lt;b&gt;a.com&lt;/b&gt;`,
		`Sorted by <b>price</b>, 2 redraws.`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "<b>a.com</b>") {
		t.Error("Expected cell text to be escaped")
	}
}

func TestRenderLanding(t *testing.T) {
	r, err := NewPageRenderer(DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	var buf bytes.Buffer
	err = r.RenderLanding(&buf, views.LandingViewModel{
		Title: "Tables",
		Tables: []views.TableInfo{
			{Name: "domains", URL: safehtml.URLSanitized("/table?table=domains"), RecordCount: 4},
		},
	})
	if err != nil {
		t.Fatalf("RenderLanding failed: %v", err)
	}
	if !strings.Contains(buf.String(), "domains</a> (4 records)") {
		t.Errorf("Expected table link, got %s", buf.String())
	}

	buf.Reset()
	if err := r.RenderLanding(&buf, views.LandingViewModel{Title: "Tables"}); err != nil {
		t.Fatalf("RenderLanding failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No tables loaded.") {
		t.Error("Expected empty landing message")
	}
}

func TestRenderOptions(t *testing.T) {
	r, err := NewPageRenderer(Options{ActiveClass: "current"})
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	var buf bytes.Buffer
	err = r.Render(&buf, views.TableViewModel{
		Title:   "Domains",
		Redraws: 1,
		Headers: []views.HeaderInfo{
			{Label: "Date", SortType: "date", IsActive: true, ClickURL: safehtml.URLSanitized("/table?col=0&table=domains")},
		},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `class="current"`) {
		t.Errorf("Expected the configured active class, got %s", out)
	}
	if strings.Contains(out, `class="sorted"`) {
		t.Error("Expected the default active class to be replaced")
	}
	if !strings.Contains(out, "1 redraw.") {
		t.Error("Expected singular redraw label")
	}
}

func TestRedrawLabel(t *testing.T) {
	testCases := map[int]string{
		0: "no redraws",
		1: "1 redraw",
		7: "7 redraws",
	}
	for n, want := range testCases {
		if got := redrawLabel(n); got != want {
			t.Errorf("Expected %q for %d, got %q", want, n, got)
		}
	}
}
