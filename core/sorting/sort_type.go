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

// Package sorting holds the pure part of the table sorter: the sort type
// enumeration, the per-row data projection, comparators and the sort cache.
// Nothing in here knows about HTML.
package sorting

// SortType selects the comparator that governs row order
type SortType string

const (
	// ByName orders rows by domain name
	ByName SortType = "name"
	// ByDate orders rows by purchase date, ties broken by name
	ByDate SortType = "date"
	// ByPrice orders rows by price, ties broken by name
	ByPrice SortType = "price"

	// Default is the sort type a table is rendered in before any click
	Default = ByName
)

// numSortTypes is the number of cache slots a Cache needs
const numSortTypes = 3

// availableSorts is the closed set of recognised sort types, in slot order.
var availableSorts = [numSortTypes]SortType{ByName, ByDate, ByPrice}

// Available returns the recognised sort types. The result is a copy.
func Available() []SortType {
	sorts := availableSorts
	return sorts[:]
}

// Normalize maps a raw sort-type label to a SortType.
// Anything that is not a recognised label becomes Default.
func Normalize(raw string) SortType {
	for _, s := range availableSorts {
		if string(s) == raw {
			return s
		}
	}
	return Default
}

// Valid reports whether t is one of the recognised sort types
func (t SortType) Valid() bool {
	return t.slot() >= 0
}

// String returns the label of the sort type
func (t SortType) String() string {
	return string(t)
}

// slot returns the cache slot for t, or -1 if t is not recognised
func (t SortType) slot() int {
	for i, s := range availableSorts {
		if s == t {
			return i
		}
	}
	return -1
}
