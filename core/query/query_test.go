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
	"testing"
)

func TestNewQuery(t *testing.T) {
	testCases := []struct {
		raw       string
		wantTable string
		wantCol   int
	}{
		{"/table?table=domains&col=2", "domains", 2},
		{"/table?table=domains", "domains", NoColumn},
		{"/table?table=domains&col=-1", "domains", NoColumn},
		{"/table?table=domains&col=price", "domains", NoColumn},
		{"/table", "", NoColumn},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			u, _ := url.Parse(tc.raw)
			q := NewQuery(u)
			if q.Table != tc.wantTable {
				t.Errorf("Expected table %q, got %q", tc.wantTable, q.Table)
			}
			if q.Column != tc.wantCol {
				t.Errorf("Expected column %d, got %d", tc.wantCol, q.Column)
			}
			if q.Path != u.Path {
				t.Errorf("Expected path %q, got %q", u.Path, q.Path)
			}
		})
	}
}

func TestWithColumn(t *testing.T) {
	u, _ := url.Parse("/table?table=domains&col=0")
	q := NewQuery(u)

	clickURL := q.WithColumn(2).String()
	parsed, _ := url.Parse(clickURL)
	next := NewQuery(parsed)
	if next.Table != "domains" || next.Column != 2 {
		t.Errorf("Expected domains/2, got %s/%d from %s", next.Table, next.Column, clickURL)
	}

	// The original query is unchanged.
	if q.Column != 0 {
		t.Errorf("Expected original column 0, got %d", q.Column)
	}

	plain := q.WithoutClick().String()
	if plain != "/table?table=domains" {
		t.Errorf("Expected /table?table=domains, got %s", plain)
	}
}
