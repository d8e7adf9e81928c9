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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMissingValue is returned when a row has no value for a sort key
var ErrMissingValue = errors.New("missing value")

// Date is a parsed purchase date together with its source text
type Date struct {
	Text string
	Time time.Time
	Err  error
}

// Valid reports whether the date text parsed
func (d Date) Valid() bool {
	return d.Err == nil
}

// Price is a parsed price together with its source text
type Price struct {
	Text  string
	Value int64
	Err   error
}

// Valid reports whether the price text parsed
func (p Price) Valid() bool {
	return p.Err == nil
}

// Projection is the plain data a row is sorted by. It is extracted once per
// row when a sorter is created and never changes afterwards.
type Projection struct {
	Name  string
	Date  Date
	Price Price
}

// NewProjection parses the raw annotations of a row.
// Parse failures are kept on the projection rather than returned.
func NewProjection(name, date, price string) Projection {
	p := Projection{
		Name:  name,
		Date:  Date{Text: date},
		Price: Price{Text: price},
	}
	p.Date.Time, p.Date.Err = ParseDate(date)
	p.Price.Value, p.Price.Err = ParsePrice(price)
	return p
}

// Valid reports whether both the date and the price parsed
func (p Projection) Valid() bool {
	return p.Date.Valid() && p.Price.Valid()
}

// ParseDate parses day.month.year text such as "01.06.2020" or "1.6.2020".
// The month is one-based. Components that do not form a real calendar date
// (31.02.2020) are rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingValue
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date %q: expected day.month.year", s)
	}

	var fields [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("date %q: %w", s, err)
		}
		fields[i] = n
	}
	day, month, year := fields[0], fields[1], fields[2]

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("date %q: out of range", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so 31.02 would silently become 02.03
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("date %q: out of range", s)
	}
	return t, nil
}

// ParsePrice parses a base-10 integer price
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", s, err)
	}
	return v, nil
}
