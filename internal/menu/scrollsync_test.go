package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sections = []Section{
	{ID: "promotions", Top: 0},
	{ID: "drinks", Top: 600},
	{ID: "shawarma", Top: 1400},
}

func TestActiveSectionFollowsScrollPosition(t *testing.T) {
	assert.Equal(t, "promotions", ActiveSection(0, sections, HeaderOffsetWide))
	assert.Equal(t, "drinks", ActiveSection(600, sections, HeaderOffsetWide))
	assert.Equal(t, "shawarma", ActiveSection(2000, sections, HeaderOffsetWide))
}

func TestActiveSectionAccountsForHeaderOffset(t *testing.T) {
	// The drinks section top (600) crosses the activation line while the
	// scroll offset is still above 600, because the line sits below the
	// sticky header.
	scroll := 600 - HeaderOffsetWide - activationThreshold

	assert.Equal(t, "drinks", ActiveSection(scroll, sections, HeaderOffsetWide))
	assert.Equal(t, "promotions", ActiveSection(scroll-1, sections, HeaderOffsetWide))
}

func TestActiveSectionDefaultsToFirst(t *testing.T) {
	far := []Section{{ID: "drinks", Top: 5000}}

	assert.Equal(t, "drinks", ActiveSection(0, far, HeaderOffsetCompact))
	assert.Equal(t, "", ActiveSection(0, nil, HeaderOffsetCompact))
}

func TestAnchorTargetClearsStickyHeader(t *testing.T) {
	assert.Equal(t, 600-HeaderOffsetWide, AnchorTarget(sections[1], HeaderOffsetWide))
	assert.Equal(t, 600-HeaderOffsetCompact, AnchorTarget(sections[1], HeaderOffsetCompact))

	// A section near the document top never produces a negative target.
	assert.Equal(t, 0, AnchorTarget(sections[0], HeaderOffsetWide))
}
