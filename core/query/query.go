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

package query

import (
	"net/url"
	"strconv"

	"github.com/google/safehtml"
)

// NoColumn is the Column value of a request that clicked no header
const NoColumn = -1

// Query represents the parsed state of a table page URL
type Query struct {
	// Base path (e.g., "/table")
	Path string

	Table  string // The table being viewed
	Column int    // Index of the clicked header, NoColumn if none
}

// NewQuery creates a Query from a URL
func NewQuery(u *url.URL) *Query {
	state := &Query{
		Path:   u.Path,
		Column: NoColumn,
	}

	q := u.Query()
	state.Table = q.Get("table")

	// Extract clicked column; anything that is not a non-negative integer is
	// treated as no click
	if colStr := q.Get("col"); colStr != "" {
		if col, err := strconv.Atoi(colStr); err == nil && col >= 0 {
			state.Column = col
		}
	}

	return state
}

// Clone creates a copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

// HasClick reports whether the request clicked a header
func (s *Query) HasClick() bool {
	return s.Column != NoColumn
}

// WithColumn returns the URL that clicks header col of the same table
func (s *Query) WithColumn(col int) safehtml.URL {
	clone := s.Clone()
	clone.Column = col
	return clone.ToSafeURL()
}

// WithoutClick returns the URL of the table without a click
func (s *Query) WithoutClick() safehtml.URL {
	clone := s.Clone()
	clone.Column = NoColumn
	return clone.ToSafeURL()
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := &url.URL{Path: s.Path}
	q := url.Values{}
	if s.Table != "" {
		q.Set("table", s.Table)
	}
	if s.HasClick() {
		q.Set("col", strconv.Itoa(s.Column))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(s.ToURL())
}
