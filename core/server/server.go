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

package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/htmltable"
	"github.com/google/tablesorter/core/query"
	"github.com/google/tablesorter/core/rendering"
	"github.com/google/tablesorter/core/sorter"
	"github.com/google/tablesorter/core/views"
)

// ErrDuplicateTable is returned when a table name is registered twice
var ErrDuplicateTable = errors.New("table already registered")

// entry is one served table. mu serializes clicks so that a click and its
// redraw notifications complete before the next request touches the table.
type entry struct {
	mu      sync.Mutex
	table   *htmltable.Table
	sorter  *sorter.Sorter
	records int
	redraws int
}

// Server represents the demo server with all its tables
type Server struct {
	renderer *rendering.PageRenderer
	logger   *slog.Logger
	title    string
	subtitle string

	mu     sync.RWMutex
	tables map[string]*entry
}

// NewServer creates a server without tables
func NewServer(logger *slog.Logger, renderOpts rendering.Options) (*Server, error) {
	renderer, err := rendering.NewPageRenderer(renderOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Server{
		renderer: renderer,
		logger:   logger,
		title:    "Tablesorter",
		subtitle: "Click a column header to sort the table.",
		tables:   make(map[string]*entry),
	}, nil
}

// SetTitle sets the landing page title and subtitle
func (s *Server) SetTitle(title, subtitle string) {
	s.title = title
	s.subtitle = subtitle
}

// AddTable registers table under name and binds a sorter to it
func (s *Server) AddTable(name string, table *htmltable.Table, palette colorize.Palette) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTable, name)
	}

	e := &entry{
		table:   table,
		records: len(table.HTMLRows()),
	}
	e.sorter = sorter.New(table,
		sorter.WithLogger(s.logger.With("table", name)),
		sorter.WithPalette(palette),
	)
	e.sorter.OnRedraw(func(sorter.Table) {
		e.redraws++
		s.logger.Info("table redrawn", "table", name, "sort", e.sorter.Current(), "redraws", e.redraws)
	})
	s.tables[name] = e
	return nil
}

// TableNames returns the registered table names in sorted order
func (s *Server) TableNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) lookup(name string) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables[name]
}

// TableHandlerResult represents the result of handling a table request
type TableHandlerResult struct {
	Error      error
	StatusCode int
	Message    string
}

// resolve validates the table parameter of q
func (s *Server) resolve(q *query.Query) (*entry, *TableHandlerResult) {
	if q.Table == "" {
		return nil, &TableHandlerResult{StatusCode: http.StatusBadRequest, Message: "Table parameter is required"}
	}
	e := s.lookup(q.Table)
	if e == nil {
		return nil, &TableHandlerResult{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("Table '%s' not found", q.Table)}
	}
	return e, nil
}

// HandleTableRequest applies the clicked header, if any, and renders the table page
func (s *Server) HandleTableRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *TableHandlerResult {
	q := query.NewQuery(requestURL)
	e, result := s.resolve(q)
	if result != nil {
		return result
	}

	// Reject a col parameter that is present but unusable
	if requestURL.Query().Has("col") && !q.HasClick() {
		return &TableHandlerResult{StatusCode: http.StatusBadRequest, Message: "Invalid col parameter"}
	}

	e.mu.Lock()
	if q.HasClick() {
		if err := e.table.Click(q.Column); err != nil {
			e.mu.Unlock()
			return &TableHandlerResult{StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
	}
	title := cases.Title(language.English).String(q.Table)
	viewModel := views.BuildViewModel(title, e.table, e.sorter.Current(), e.redraws, q)
	e.mu.Unlock()

	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, viewModel); err != nil {
		s.logger.Error("template rendering error", "err", err)
		return &TableHandlerResult{Error: err}
	}
	return nil
}

// HandleRawRequest writes the current document of a table
func (s *Server) HandleRawRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) *TableHandlerResult {
	e, result := s.resolve(query.NewQuery(requestURL))
	if result != nil {
		return result
	}

	var buf bytes.Buffer
	e.mu.Lock()
	err := e.table.Render(&buf)
	e.mu.Unlock()
	if err != nil {
		return &TableHandlerResult{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return &TableHandlerResult{Error: err}
	}
	return nil
}

// HandleLandingRequest renders the list of tables
func (s *Server) HandleLandingRequest(w io.Writer, setHeader func(key, value string)) error {
	vm := views.LandingViewModel{
		Title:    s.title,
		Subtitle: s.subtitle,
	}
	for _, name := range s.TableNames() {
		q := &query.Query{Path: "/table", Table: name, Column: query.NoColumn}
		vm.Tables = append(vm.Tables, views.TableInfo{
			Name:        name,
			URL:         q.ToSafeURL(),
			RecordCount: s.lookup(name).records,
		})
	}

	setHeader("Content-Type", "text/html; charset=utf-8")
	return s.renderer.RenderLanding(w, vm)
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /table", func(w http.ResponseWriter, r *http.Request) {
		s.writeResult(w, r, s.HandleTableRequest(w, r.URL, w.Header().Set))
	})
	mux.HandleFunc("GET /raw", func(w http.ResponseWriter, r *http.Request) {
		s.writeResult(w, r, s.HandleRawRequest(w, r.URL, w.Header().Set))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if err := s.HandleLandingRequest(w, w.Header().Set); err != nil {
			s.logger.Error("landing page rendering error", "err", err)
		}
	})
	return mux
}

func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, result *TableHandlerResult) {
	if result == nil {
		return
	}
	if result.Error != nil {
		// The page may be partially written already.
		s.logger.Error("request failed", "path", r.URL.Path, "err", result.Error)
		return
	}
	s.logger.Debug("request rejected", "path", r.URL.Path, "status", result.StatusCode, "message", result.Message)
	http.Error(w, result.Message, result.StatusCode)
}
