// Package export renders the static directory for machine consumers: the
// neighborhood API listing and the LLM-oriented text document.
package export

import (
	"strings"
	"time"

	"sunsetguide/internal/directory"
)

// CommunityTag is appended to every record's category list.
const CommunityTag = "community"

// Location describes where a group operates.
type Location struct {
	Name         string `json:"name"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

// Source attributes a record to this site.
type Source struct {
	Publisher   string `json:"publisher"`
	CollectedAt string `json:"collected_at"`
	License     string `json:"license"`
}

// Record is one group in the neighborhood API.
type Record struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	Meets       string   `json:"meets,omitempty"`
	Category    []string `json:"category"`
	Location    Location `json:"location"`
	Source      Source   `json:"source"`
}

// Query filters a listing. Empty fields match everything.
type Query struct {
	// Text is a case-insensitive substring matched against name and description.
	Text string
	// Category must equal one of the record's category slugs exactly.
	Category string
}

// Site holds the fixed attribution for this deployment.
type Site struct {
	Name        string
	Description string
	URL         string
	Publisher   string
	License     string
	Version     string
	Location    Location
}

// DefaultSite is the Outer Sunset deployment.
var DefaultSite = Site{
	Name:        "Outer Sunset Community",
	Description: "A neighborhood guide to finding community in the Outer Sunset, San Francisco.",
	URL:         "https://outersunset.us",
	Publisher:   "outersunset.us",
	License:     "CC BY 4.0",
	Version:     "0.1",
	Location: Location{
		Name:         "Outer Sunset",
		Neighborhood: "Outer Sunset",
		City:         "San Francisco",
		Region:       "California",
	},
}

// Listing projects a directory into API records.
type Listing struct {
	dir  *directory.Directory
	site Site
}

// NewListing creates a Listing over dir.
func NewListing(dir *directory.Directory, site Site) *Listing {
	return &Listing{dir: dir, site: site}
}

// Records returns every group as a record, in table order, stamped with now.
func (l *Listing) Records(now time.Time) []Record {
	entries := l.dir.Entries()
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, l.record(e, now))
	}
	return records
}

// Search returns the records matching q, preserving table order. The result
// is never nil so it encodes as an empty JSON array.
func (l *Listing) Search(q Query, now time.Time) []Record {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	category := strings.TrimSpace(q.Category)

	out := make([]Record, 0)
	for _, r := range l.Records(now) {
		if text != "" &&
			!strings.Contains(strings.ToLower(r.Name), text) &&
			!strings.Contains(strings.ToLower(r.Description), text) {
			continue
		}
		if category != "" && !contains(r.Category, category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Find returns the record with the given id.
func (l *Listing) Find(id string, now time.Time) (Record, bool) {
	e, ok := l.dir.Lookup(id)
	if !ok {
		return Record{}, false
	}
	return l.record(e, now), true
}

func (l *Listing) record(e directory.Entry, now time.Time) Record {
	return Record{
		ID:          e.Group.ID(),
		Name:        e.Group.Name,
		Description: e.Group.Description,
		URL:         e.Group.Link,
		Meets:       e.Group.Meets,
		Category:    []string{e.Category.Slug(), CommunityTag},
		Location:    l.site.Location,
		Source: Source{
			Publisher:   l.site.Publisher,
			CollectedAt: now.UTC().Format(time.RFC3339Nano),
			License:     l.site.License,
		},
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
