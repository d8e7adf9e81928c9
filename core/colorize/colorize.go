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

// Package colorize assigns alternating style markers to rows.
package colorize

// Marker is the style class a row is rendered with
type Marker string

const (
	Even Marker = "even"
	Odd  Marker = "odd"
)

// Palette is the rotation of markers applied to consecutive rows
type Palette []Marker

// DefaultPalette alternates even and odd, starting with even
func DefaultPalette() Palette {
	return Palette{Even, Odd}
}

// PaletteOf builds a palette from class names. Empty names are dropped; an
// empty result falls back to the default palette.
func PaletteOf(classes []string) Palette {
	p := make(Palette, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			p = append(p, Marker(c))
		}
	}
	if len(p) == 0 {
		return DefaultPalette()
	}
	return p
}

// Markable is anything carrying a style marker
type Markable interface {
	Marker() Marker
	SetMarker(Marker)
}

// Colorize marks rows even, odd, even, ... in order and returns rows.
func Colorize[R Markable](rows []R) []R {
	return ColorizeWith(rows, DefaultPalette())
}

// ColorizeWith marks rows by cycling through palette, starting from its
// first marker. Rows already carrying the right marker are left untouched.
func ColorizeWith[R Markable](rows []R, palette Palette) []R {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	for i, row := range rows {
		want := palette[i%len(palette)]
		if row.Marker() != want {
			row.SetMarker(want)
		}
	}
	return rows
}
