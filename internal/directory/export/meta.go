package export

import "time"

// Steward is a contact responsible for the data.
type Steward struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Meta describes the neighborhood API itself.
type Meta struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Version     string    `json:"version"`
	Stewards    []Steward `json:"stewards"`
	Resources   []string  `json:"resources"`
	License     string    `json:"license"`
	UpdatedAt   string    `json:"updated_at"`
}

// Endpoints lists the API paths advertised on unknown routes.
var Endpoints = []string{"/meta", "/groups", "/groups/{id}"}

// Describe returns the service descriptor stamped with now.
func (l *Listing) Describe(now time.Time) Meta {
	return Meta{
		Name:        l.site.Name,
		Description: l.site.Description,
		URL:         l.site.URL,
		Version:     l.site.Version,
		Stewards: []Steward{{
			Name:    l.site.Name,
			Contact: l.site.URL + "/#contact",
		}},
		Resources: []string{"groups"},
		License:   l.site.License,
		UpdatedAt: now.UTC().Format(time.RFC3339Nano),
	}
}
