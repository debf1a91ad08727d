// Package directory holds the static table of community categories and groups.
//
// The table is parsed once from the embedded groups.yaml and never mutated.
// Accessors hand out copies, so the shared value is safe to read from any
// goroutine without locking.
package directory

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed groups.yaml
var embeddedGroups []byte

// Directory is an immutable, ordered table of categories.
type Directory struct {
	categories []Category
	byID       map[string]Entry
}

// Entry is a group together with the category it is listed under. Category
// carries the header fields only; its Groups slice is nil.
type Entry struct {
	Group    Group
	Category Category
	// Position is the zero-based index across the whole table.
	Position int
}

type document struct {
	Categories []Category `yaml:"categories"`
}

var loadDefault = sync.OnceValues(func() (*Directory, error) {
	return Parse(embeddedGroups)
})

// Default returns the embedded directory. It panics if the embedded document
// is invalid, which the package tests rule out.
func Default() *Directory {
	d, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("directory: embedded groups.yaml is invalid: %v", err))
	}
	return d
}

// Parse decodes and validates a directory document.
func Parse(data []byte) (*Directory, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode directory: %w", err)
	}
	return New(doc.Categories)
}

// New validates categories and builds a Directory. Group identifiers must be
// unique across the whole table.
func New(categories []Category) (*Directory, error) {
	d := &Directory{
		categories: cloneCategories(categories),
		byID:       make(map[string]Entry),
	}
	position := 0
	for ci, c := range d.categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("category %d: name is required", ci)
		}
		if c.Slug() == "" {
			return nil, fmt.Errorf("category %q: name has no slug characters", c.Name)
		}
		header := c
		header.Groups = nil
		for gi, g := range c.Groups {
			if strings.TrimSpace(g.Name) == "" || strings.TrimSpace(g.Description) == "" {
				return nil, fmt.Errorf("category %q group %d: name and description are required", c.Name, gi)
			}
			if g.Link != "" {
				if err := checkLink(g.Link); err != nil {
					return nil, fmt.Errorf("group %q: %w", g.Name, err)
				}
			}
			id := g.ID()
			if id == GroupIDPrefix {
				return nil, fmt.Errorf("group %q: name has no slug characters", g.Name)
			}
			if prev, ok := d.byID[id]; ok {
				return nil, fmt.Errorf("group %q: id %s already used by %q", g.Name, id, prev.Group.Name)
			}
			d.byID[id] = Entry{Group: g, Category: header, Position: position}
			position++
		}
	}
	return d, nil
}

// Categories returns a copy of the ordered category table.
func (d *Directory) Categories() []Category {
	return cloneCategories(d.categories)
}

// Entries returns every group with its category, in table order.
func (d *Directory) Entries() []Entry {
	entries := make([]Entry, 0, len(d.byID))
	for _, c := range d.categories {
		for _, g := range c.Groups {
			entries = append(entries, d.byID[g.ID()])
		}
	}
	return entries
}

// Lookup finds a group by its public identifier.
func (d *Directory) Lookup(id string) (Entry, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// Len returns the number of groups.
func (d *Directory) Len() int {
	return len(d.byID)
}

func checkLink(link string) error {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("link %q is not an absolute http(s) URL", link)
	}
	return nil
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, len(in))
	for i, c := range in {
		out[i] = c
		out[i].Groups = append([]Group(nil), c.Groups...)
	}
	return out
}
