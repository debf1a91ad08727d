package directory

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DirectorySuite struct {
	suite.Suite
	dir *Directory
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.dir = Default()
}

// TestEmbeddedTable verifies the embedded document loads with its ordering intact.
func (s *DirectorySuite) TestEmbeddedTable() {
	categories := s.dir.Categories()
	s.Require().Len(categories, 6)
	s.Equal("outdoors & movement", categories[0].Name)
	s.Equal("food & gathering", categories[5].Name)
	s.Equal("bg-ocean", categories[0].BgColor)
	s.Equal(24, s.dir.Len())

	entries := s.dir.Entries()
	s.Require().Len(entries, 24)
	s.Equal("Surf Spots", entries[0].Group.Name)
	s.Equal("Woods Outbound Community Nights", entries[23].Group.Name)
	for i, e := range entries {
		s.Equal(i, e.Position)
		s.Nil(e.Category.Groups, "entries carry the category header only")
	}
}

// TestLookupRoundTrip verifies every group is found again by its derived id.
func (s *DirectorySuite) TestLookupRoundTrip() {
	seen := make(map[string]bool)
	for _, e := range s.dir.Entries() {
		id := e.Group.ID()
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true

		found, ok := s.dir.Lookup(id)
		s.Require().True(ok, "lookup %s", id)
		s.Equal(e.Group, found.Group)
		s.Equal(e.Category.Name, found.Category.Name)
	}

	s.Run("lions club keeps its category and description", func() {
		found, ok := s.dir.Lookup("grp_lions-club-sf-parkside-sunset")
		s.Require().True(ok)
		s.Equal("neighborhood & civic life", found.Category.Name)
		s.Equal("Service club for community projects and fellowship.", found.Group.Description)
	})

	s.Run("unknown id is not found", func() {
		_, ok := s.dir.Lookup("grp_does-not-exist")
		s.False(ok)
	})
}

// TestAccessorsReturnCopies verifies callers cannot mutate the shared table.
func (s *DirectorySuite) TestAccessorsReturnCopies() {
	categories := s.dir.Categories()
	categories[0].Name = "mutated"
	categories[0].Groups[0].Name = "mutated"

	fresh := s.dir.Categories()
	s.Equal("outdoors & movement", fresh[0].Name)
	s.Equal("Surf Spots", fresh[0].Groups[0].Name)
}

// TestValidation verifies the load-time invariants.
func (s *DirectorySuite) TestValidation() {
	s.Run("duplicate slugs are rejected", func() {
		_, err := New([]Category{{
			Name: "one",
			Groups: []Group{
				{Name: "Run Club", Description: "a"},
				{Name: "run-club!", Description: "b"},
			},
		}})
		s.Require().Error(err)
		s.Contains(err.Error(), "grp_run-club")
	})

	s.Run("relative links are rejected", func() {
		_, err := New([]Category{{
			Name:   "one",
			Groups: []Group{{Name: "A", Description: "a", Link: "/groups/a"}},
		}})
		s.Require().Error(err)
		s.Contains(err.Error(), "not an absolute http(s) URL")
	})

	s.Run("names without slug characters are rejected", func() {
		_, err := New([]Category{{
			Name:   "one",
			Groups: []Group{{Name: "–––", Description: "a"}},
		}})
		s.Require().Error(err)
	})

	s.Run("malformed yaml is rejected", func() {
		_, err := Parse([]byte("categories: [unterminated"))
		s.Require().Error(err)
	})
}
