// Package document provides a designer host backed by a local YAML design
// document, standing in for a live Designer connection.
package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/drewhinkson/stylepanel/internal/designer"
)

// DefaultFileName is the design document looked up in the working directory.
const DefaultFileName = "design.yaml"

// unstylableKinds lists element kinds without a styles collection.
var unstylableKinds = map[string]bool{
	"embed":     true,
	"component": true,
}

// Document is the serialized form of a design document.
type Document struct {
	Name     string          `yaml:"name"`
	Selected string          `yaml:"selected,omitempty"`
	Styles   []StyleRecord   `yaml:"styles,omitempty"`
	Elements []ElementRecord `yaml:"elements,omitempty"`
}

// StyleRecord is a persisted named style.
type StyleRecord struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ElementRecord is a persisted element with its attached style names.
type ElementRecord struct {
	ID     string   `yaml:"id"`
	Kind   string   `yaml:"kind,omitempty"`
	Text   string   `yaml:"text,omitempty"`
	Styles []string `yaml:"styles,omitempty"`
}

// Store implements designer.API on top of a document file. Every Save on a
// style or element rewrites the file, mirroring the host's persistence calls.
type Store struct {
	mu   sync.Mutex
	path string
	doc  *Document
}

// DefaultDocument returns an empty starter document.
func DefaultDocument() *Document {
	return &Document{
		Name: "untitled",
		Elements: []ElementRecord{
			{ID: "body", Kind: "box"},
		},
	}
}

// Open loads a document store from path. A missing file yields the default
// starter document; it is written on first save.
func Open(path string) (*Store, error) {
	doc, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, doc: doc}, nil
}

func load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDocument(), nil
		}
		return nil, fmt.Errorf("reading document: %w", err)
	}

	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Name returns the document name.
func (s *Store) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Name
}

// save writes the document to disk. Callers hold s.mu.
func (s *Store) save() error {
	data, err := yaml.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating document directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Select marks an element as the current selection and persists it. An empty
// id clears the selection.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.findElement(id) == nil {
		return fmt.Errorf("element %q not found", id)
	}
	s.doc.Selected = id
	return s.save()
}

// AddElement appends a new element and persists the document.
func (s *Store) AddElement(id, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findElement(id) != nil {
		return fmt.Errorf("element %q already exists", id)
	}
	if kind == "" {
		kind = "box"
	}
	s.doc.Elements = append(s.doc.Elements, ElementRecord{ID: id, Kind: kind})
	return s.save()
}

// Snapshot returns a deep copy of the current document for read-only use.
func (s *Store) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Document{
		Name:     s.doc.Name,
		Selected: s.doc.Selected,
		Styles:   make([]StyleRecord, len(s.doc.Styles)),
		Elements: make([]ElementRecord, len(s.doc.Elements)),
	}
	for i, st := range s.doc.Styles {
		props := make(map[string]string, len(st.Properties))
		for k, v := range st.Properties {
			props[k] = v
		}
		out.Styles[i] = StyleRecord{Name: st.Name, Properties: props}
	}
	for i, el := range s.doc.Elements {
		out.Elements[i] = ElementRecord{
			ID:     el.ID,
			Kind:   el.Kind,
			Text:   el.Text,
			Styles: append([]string(nil), el.Styles...),
		}
	}
	return out
}

// StyleNames returns all persisted style names, sorted.
func (s *Store) StyleNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.doc.Styles))
	for _, st := range s.doc.Styles {
		names = append(names, st.Name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) findElement(id string) *ElementRecord {
	for i := range s.doc.Elements {
		if s.doc.Elements[i].ID == id {
			return &s.doc.Elements[i]
		}
	}
	return nil
}

func (s *Store) findStyle(name string) *StyleRecord {
	for i := range s.doc.Styles {
		if s.doc.Styles[i].Name == name {
			return &s.doc.Styles[i]
		}
	}
	return nil
}

// SelectedElement implements designer.API.
func (s *Store) SelectedElement(ctx context.Context) (designer.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Selected == "" {
		return nil, nil
	}
	rec := s.findElement(s.doc.Selected)
	if rec == nil {
		return nil, nil
	}
	return &element{store: s, id: rec.ID}, nil
}

// CreateStyle implements designer.API. The style exists only in memory until
// its Save is called.
func (s *Store) CreateStyle(name string) designer.Style {
	return &style{store: s, name: name}
}

type style struct {
	store *Store
	name  string
	props map[string]string
}

func (st *style) Name() string { return st.name }

func (st *style) SetProperties(props map[string]string) {
	st.props = make(map[string]string, len(props))
	for k, v := range props {
		st.props[k] = v
	}
}

func (st *style) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	st.store.mu.Lock()
	defer st.store.mu.Unlock()

	if rec := st.store.findStyle(st.name); rec != nil {
		rec.Properties = st.props
	} else {
		st.store.doc.Styles = append(st.store.doc.Styles, StyleRecord{
			Name:       st.name,
			Properties: st.props,
		})
	}
	return st.store.save()
}

type element struct {
	store   *Store
	id      string
	pending []string // replacement style names staged by SetStyles
	staged  bool
}

func (e *element) ID() string { return e.id }

func (e *element) SupportsStyles() bool {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()

	rec := e.store.findElement(e.id)
	if rec == nil {
		return false
	}
	return !unstylableKinds[rec.Kind]
}

func (e *element) Styles(ctx context.Context) ([]designer.Style, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.store.mu.Lock()
	defer e.store.mu.Unlock()

	rec := e.store.findElement(e.id)
	if rec == nil {
		return nil, fmt.Errorf("element %q no longer exists", e.id)
	}

	styles := make([]designer.Style, 0, len(rec.Styles))
	for _, name := range rec.Styles {
		attached := &style{store: e.store, name: name}
		if def := e.store.findStyle(name); def != nil {
			attached.SetProperties(def.Properties)
		}
		styles = append(styles, attached)
	}
	return styles, nil
}

func (e *element) SetStyles(styles []designer.Style) {
	names := make([]string, len(styles))
	for i, st := range styles {
		names[i] = st.Name()
	}
	e.pending = names
	e.staged = true
}

func (e *element) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.store.mu.Lock()
	defer e.store.mu.Unlock()

	rec := e.store.findElement(e.id)
	if rec == nil {
		return fmt.Errorf("element %q no longer exists", e.id)
	}
	if e.staged {
		rec.Styles = e.pending
	}
	return e.store.save()
}
