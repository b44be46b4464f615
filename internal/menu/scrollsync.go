package menu

// Sticky-header heights in pixels. The compact layout is the phone-width
// header; wide is everything else. Section tops and scroll offsets are
// measured from the top of the document.
const (
	HeaderOffsetCompact = 56
	HeaderOffsetWide    = 72

	// A section counts as "in view" once its top is within this distance
	// below the sticky header's bottom edge.
	activationThreshold = 24
)

// Section is one category anchor on the menu page.
type Section struct {
	ID  string
	Top int
}

// ActiveSection maps a scroll offset onto the category currently in view:
// the last section whose top has passed the activation line just under the
// sticky header. Sections must be given in document order. Before the first
// section activates, the first section id is returned so the navigation bar
// always highlights something; an empty section list yields "".
func ActiveSection(scrollOffset int, sections []Section, headerOffset int) string {
	if len(sections) == 0 {
		return ""
	}

	line := scrollOffset + headerOffset + activationThreshold

	active := sections[0].ID
	for _, s := range sections {
		if s.Top <= line {
			active = s.ID
		}
	}

	return active
}

// AnchorTarget is the scroll offset that places a section's title just below
// the sticky header, used when a category label is clicked.
func AnchorTarget(section Section, headerOffset int) int {
	target := section.Top - headerOffset
	if target < 0 {
		return 0
	}
	return target
}
