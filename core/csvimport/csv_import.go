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

// Package csvimport loads domain records from CSV or YAML files and turns
// them into sortable HTML tables. Annotated HTML pages load directly.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/tablesorter/core/htmltable"
)

// Field identifies which record value a CSV column feeds
type Field int

const (
	// FieldIgnored drops the column
	FieldIgnored Field = iota
	// FieldName is the domain name
	FieldName
	// FieldDate is the purchase date (day.month.year)
	FieldDate
	// FieldPrice is the price
	FieldPrice
)

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers.
	// Without a header the columns are name, date, price in that order.
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// Columns maps additional header names (lower case) to fields
	Columns map[string]Field
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader: true,
		Delimiter: ',',
		Columns:   make(map[string]Field),
	}
}

// defaultColumns are the header names recognised without configuration
var defaultColumns = map[string]Field{
	"name":        FieldName,
	"domain":      FieldName,
	"domain_name": FieldName,
	"date":        FieldDate,
	"bought":      FieldDate,
	"purchased":   FieldDate,
	"price":       FieldPrice,
}

// ImportFromFile loads records from a .csv, .yaml or .yml file
func ImportFromFile(path string, options ImportOptions) ([]htmltable.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ImportFromReader(file, options)
	case ".yaml", ".yml":
		return ImportYAML(file)
	default:
		return nil, fmt.Errorf("unsupported record file extension %q", ext)
	}
}

// IsHTML reports whether path names an HTML page
func IsHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// ImportFromReader reads CSV records from an io.Reader
func ImportFromReader(reader io.Reader, options ImportOptions) ([]htmltable.Record, error) {
	csvReader := csv.NewReader(reader)
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}
	csvReader.TrimLeadingSpace = true

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	var fields []Field
	dataRows := rows
	if options.HasHeader {
		fields = resolveColumns(rows[0], options.Columns)
		dataRows = rows[1:]
	} else {
		fields = []Field{FieldName, FieldDate, FieldPrice}
	}

	hasName := false
	for _, f := range fields {
		if f == FieldName {
			hasName = true
		}
	}
	if !hasName {
		return nil, fmt.Errorf("CSV has no name column")
	}

	records := make([]htmltable.Record, 0, len(dataRows))
	for i, row := range dataRows {
		var rec htmltable.Record
		for col, f := range fields {
			if col >= len(row) {
				break
			}
			value := strings.TrimSpace(row[col])
			switch f {
			case FieldName:
				rec.Name = value
			case FieldDate:
				rec.Date = value
			case FieldPrice:
				rec.Price = value
			}
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("CSV row %d: empty name", i+1)
		}
		records = append(records, rec)
	}
	return records, nil
}

// resolveColumns maps each header to a field; configured names win over the
// defaults. The first column mapped to a field wins.
func resolveColumns(headers []string, configured map[string]Field) []Field {
	fields := make([]Field, len(headers))
	seen := make(map[Field]bool)
	for i, header := range headers {
		key := strings.ToLower(strings.TrimSpace(header))
		f, ok := configured[key]
		if !ok {
			f = defaultColumns[key]
		}
		if f == FieldIgnored || seen[f] {
			continue
		}
		seen[f] = true
		fields[i] = f
	}
	return fields
}

// ImportTable loads a table from path. HTML pages are parsed as they are;
// record files are built into a fresh table.
func ImportTable(path string, options ImportOptions, tableOpts htmltable.Options) (*htmltable.Table, error) {
	if IsHTML(path) {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		table, err := htmltable.Parse(file, tableOpts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return table, nil
	}

	records, err := ImportFromFile(path, options)
	if err != nil {
		return nil, err
	}
	return htmltable.Build(records, tableOpts), nil
}
