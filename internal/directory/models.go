package directory

// Group is a community organization or recurring activity.
type Group struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link,omitempty" json:"link,omitempty"`
	// Meets is a plain-language schedule such as "Sunday mornings".
	Meets string `yaml:"meets,omitempty" json:"meets,omitempty"`
}

// Category groups Groups for display. Order of Groups is display order.
type Category struct {
	Name      string  `yaml:"name" json:"name"`
	BgColor   string  `yaml:"bg_color" json:"bg_color"`
	TextColor string  `yaml:"text_color" json:"text_color"`
	Groups    []Group `yaml:"groups" json:"groups"`
}

// Slug returns the category's URL-safe identifier.
func (c Category) Slug() string {
	return Slugify(c.Name)
}

// ID returns the group's stable public identifier.
func (g Group) ID() string {
	return GroupIDPrefix + Slugify(g.Name)
}
