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

package csvimport

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/google/tablesorter/core/htmltable"
)

// yamlRecord is one entry of a YAML record list. Values are kept as text so
// that malformed dates and prices reach the sorter unchanged.
type yamlRecord struct {
	Name  string `yaml:"name"`
	Date  string `yaml:"date"`
	Price string `yaml:"price"`
}

// ImportYAML reads a YAML sequence of {name, date, price} mappings
func ImportYAML(reader io.Reader) ([]htmltable.Record, error) {
	var entries []yamlRecord
	if err := yaml.NewDecoder(reader).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("YAML file is empty")
		}
		return nil, fmt.Errorf("failed to read YAML: %w", err)
	}

	records := make([]htmltable.Record, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("YAML entry %d: empty name", i+1)
		}
		records = append(records, htmltable.Record{Name: e.Name, Date: e.Date, Price: e.Price})
	}
	return records, nil
}
