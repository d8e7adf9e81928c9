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

package colorize

import "testing"

type testRow struct {
	id     int
	marker Marker
	writes int
}

func (r *testRow) Marker() Marker { return r.marker }

func (r *testRow) SetMarker(m Marker) {
	r.marker = m
	r.writes++
}

func newRows(markers ...Marker) []*testRow {
	rows := make([]*testRow, len(markers))
	for i, m := range markers {
		rows[i] = &testRow{id: i, marker: m}
	}
	return rows
}

func markersOf(rows []*testRow) []Marker {
	result := make([]Marker, len(rows))
	for i, r := range rows {
		result[i] = r.marker
	}
	return result
}

func equalMarkers(a, b []Marker) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestColorizeAlternates(t *testing.T) {
	rows := newRows("", Odd, "highlight", Odd, Even)

	result := Colorize(rows)

	expected := []Marker{Even, Odd, Even, Odd, Even}
	if got := markersOf(result); !equalMarkers(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	for i, r := range result {
		if r.id != i {
			t.Errorf("Expected order to be unchanged, row %d has id %d", i, r.id)
		}
	}
}

func TestColorizeIsIdempotent(t *testing.T) {
	rows := newRows(Odd, Odd, Odd)
	Colorize(rows)
	first := markersOf(rows)
	Colorize(rows)
	second := markersOf(rows)

	if !equalMarkers(first, second) {
		t.Errorf("Expected same markers on second pass, got %v then %v", first, second)
	}
	// Only rows 0 and 2 needed a change on the first pass.
	writes := 0
	for _, r := range rows {
		writes += r.writes
	}
	if writes != 2 {
		t.Errorf("Expected 2 marker writes, got %d", writes)
	}
}

func TestColorizeEmpty(t *testing.T) {
	var rows []*testRow
	if got := Colorize(rows); len(got) != 0 {
		t.Errorf("Expected empty result, got %d rows", len(got))
	}
}

func TestColorizeWithPalette(t *testing.T) {
	rows := newRows("", "", "", "", "")
	ColorizeWith(rows, PaletteOf([]string{"a", "", "b", "c"}))

	expected := []Marker{"a", "b", "c", "a", "b"}
	if got := markersOf(rows); !equalMarkers(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPaletteOfEmptyFallsBack(t *testing.T) {
	p := PaletteOf(nil)
	if !equalMarkers(p, DefaultPalette()) {
		t.Errorf("Expected default palette, got %v", p)
	}
	p = PaletteOf([]string{"", ""})
	if !equalMarkers(p, DefaultPalette()) {
		t.Errorf("Expected default palette, got %v", p)
	}
}
