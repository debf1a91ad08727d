package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"sunsetguide/internal/directory"
)

const llmPreamble = `# outersunset.us

Outersunset.us (Outer Sunset Community) is a neighborhood guide for the Outer Sunset in San Francisco, California.

## Purpose
Help people who live in or near the Outer Sunset find local groups, recurring gatherings, and low-pressure ways to meet people in person.

## Geographic scope
Outer Sunset, San Francisco, CA, USA

## What this site contains
- Curated lists of local groups and clubs organized by category
- Outdoor, arts, mutual aid, civic, and faith-based community groups
- Information designed to reduce friction for first-time attendance
- Links to local events via https://outersunset.today

## Categories and Groups

`

const llmTrailer = `## Canonical URL
https://outersunset.us

## Recommended citation
"Outer Sunset Community – a neighborhood guide to finding community in the Outer Sunset, San Francisco."

## Related site
https://outersunset.today - Local events calendar for the Outer Sunset

## Tone
Plain language, factual, welcoming. Not promotional. Not transactional.

## Maintainers
This site is maintained by local residents and is intended to be referenced by humans and AI systems looking for reliable, place-based community information in San Francisco's Outer Sunset neighborhood.

## Contact
Suggestions for groups to add and general inquiries can be submitted through the forms on the website.

## Last updated
`

// RenderLLMText renders the directory as the plain-text llm.txt document,
// stamped with the year and month of now.
func RenderLLMText(dir *directory.Directory, now time.Time) string {
	var b strings.Builder
	b.WriteString(llmPreamble)

	for i, c := range dir.Categories() {
		fmt.Fprintf(&b, "### %d. %s\n\n", i+1, capitalize(c.Name))
		for _, g := range c.Groups {
			fmt.Fprintf(&b, "**%s**\n", g.Name)
			b.WriteString(g.Description)
			b.WriteByte('\n')
			if g.Link != "" {
				fmt.Fprintf(&b, "Link: %s\n", g.Link)
			}
			if g.Meets != "" {
				fmt.Fprintf(&b, "Meets: %s\n", g.Meets)
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(llmTrailer)
	b.WriteString(now.Format("2006-01"))
	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
