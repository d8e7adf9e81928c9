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

// cacheSlot holds one sort type's order
type cacheSlot struct {
	order    []int
	computed bool
}

// Cache memoizes the row order of each sort type. It has one slot per sort
// type; a slot is written at most once and never invalidated.
// The zero value is an empty cache.
type Cache struct {
	slots [numSortTypes]cacheSlot
}

// Get returns the cached order for t and whether it has been computed.
// The returned slice is shared with the cache and must not be modified.
func (c *Cache) Get(t SortType) ([]int, bool) {
	i := t.slot()
	if i < 0 || !c.slots[i].computed {
		return nil, false
	}
	return c.slots[i].order, true
}

// Put stores order for t unless the slot is already filled.
// Returns false if the slot was already computed or t is not recognised.
func (c *Cache) Put(t SortType, order []int) bool {
	i := t.slot()
	if i < 0 || c.slots[i].computed {
		return false
	}
	c.slots[i] = cacheSlot{order: order, computed: true}
	return true
}

// GetOrCompute returns the cached order for t, calling compute and storing
// its result the first time t is requested.
func (c *Cache) GetOrCompute(t SortType, compute func() []int) []int {
	if order, ok := c.Get(t); ok {
		return order
	}
	order := compute()
	c.Put(t, order)
	return order
}

// Computed reports which sort types have a cached order, in slot order
func (c *Cache) Computed() []SortType {
	var computed []SortType
	for i, slot := range c.slots {
		if slot.computed {
			computed = append(computed, availableSorts[i])
		}
	}
	return computed
}
