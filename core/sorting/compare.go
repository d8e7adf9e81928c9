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

package sorting

import (
	"sort"
	"strings"
)

// Comparator orders two projections.
// Returns negative if a sorts before b, zero if equal, positive if after.
type Comparator func(a, b *Projection) int

// CompareByName compares names using plain byte order (case-sensitive).
func CompareByName(a, b *Projection) int {
	return strings.Compare(a.Name, b.Name)
}

// CompareByDate compares purchase dates. Unparsable dates sort after all
// valid ones. Equal dates are ordered by name.
func CompareByDate(a, b *Projection) int {
	if cmp := compareValidity(a.Date.Err, b.Date.Err); cmp != 0 {
		return cmp
	}
	if a.Date.Valid() {
		if a.Date.Time.Before(b.Date.Time) {
			return -1
		}
		if a.Date.Time.After(b.Date.Time) {
			return 1
		}
	}
	return CompareByName(a, b)
}

// CompareByPrice compares prices numerically. Unparsable prices sort after
// all valid ones. Equal prices are ordered by name.
func CompareByPrice(a, b *Projection) int {
	if cmp := compareValidity(a.Price.Err, b.Price.Err); cmp != 0 {
		return cmp
	}
	if a.Price.Valid() {
		if a.Price.Value < b.Price.Value {
			return -1
		}
		if a.Price.Value > b.Price.Value {
			return 1
		}
	}
	return CompareByName(a, b)
}

// compareValidity puts values that failed to parse last.
// Returns 0 when both or neither failed.
func compareValidity(errA, errB error) int {
	if (errA == nil) == (errB == nil) {
		return 0
	}
	if errA != nil {
		return 1
	}
	return -1
}

// ComparatorFor returns the comparator for t. Unrecognised types get the
// name comparator.
func ComparatorFor(t SortType) Comparator {
	switch t {
	case ByDate:
		return CompareByDate
	case ByPrice:
		return CompareByPrice
	default:
		return CompareByName
	}
}

// Order returns the row indices of projections sorted with cmp.
// The sort is stable, so rows that compare equal keep their input order.
func Order(projections []Projection, cmp Comparator) []int {
	indices := make([]int, len(projections))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return cmp(&projections[indices[i]], &projections[indices[j]]) < 0
	})
	return indices
}
