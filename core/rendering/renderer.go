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

package rendering

import (
	"embed"
	"fmt"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/tablesorter/core/views"
)

//go:embed templates/*
var templateFS embed.FS

const (
	tablePage   = "table.html"
	landingPage = "landing.html"
)

// Options configures page rendering
type Options struct {
	// ActiveClass is set on the link of the header the table is sorted by
	ActiveClass string
}

// DefaultOptions matches the first default active class of the table markup
func DefaultOptions() Options {
	return Options{ActiveClass: "sorted"}
}

// PageRenderer renders the demo pages from view models
type PageRenderer struct {
	pages *template.Template
	opts  Options
}

// NewPageRenderer parses all embedded page templates into one set
func NewPageRenderer(opts Options) (*PageRenderer, error) {
	r := &PageRenderer{opts: opts}

	pages, err := template.New("pages").
		Funcs(template.FuncMap{
			"headerClass": r.headerClass,
			"redraws":     redrawLabel,
		}).
		ParseFS(template.TrustedFSFromEmbed(templateFS), "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	for _, name := range []string{tablePage, landingPage} {
		if pages.Lookup(name) == nil {
			return nil, fmt.Errorf("missing page template %s", name)
		}
	}
	r.pages = pages
	return r, nil
}

// headerClass is the class of a header link
func (r *PageRenderer) headerClass(active bool) string {
	if active {
		return r.opts.ActiveClass
	}
	return ""
}

func redrawLabel(n int) string {
	switch n {
	case 0:
		return "no redraws"
	case 1:
		return "1 redraw"
	default:
		return fmt.Sprintf("%d redraws", n)
	}
}

// Render renders a TableViewModel to the provided writer
func (r *PageRenderer) Render(w io.Writer, vm views.TableViewModel) error {
	return r.pages.ExecuteTemplate(w, tablePage, vm)
}

// RenderLanding renders a LandingViewModel to the provided writer
func (r *PageRenderer) RenderLanding(w io.Writer, vm views.LandingViewModel) error {
	return r.pages.ExecuteTemplate(w, landingPage, vm)
}
