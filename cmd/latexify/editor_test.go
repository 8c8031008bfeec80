package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_ToggleMarkAnchorsAtCursorLine(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb\nc") // cursor ends up on the last line

	assert.False(t, ed.selecting())

	ed.toggleMark()
	require.True(t, ed.selecting())

	reg, ok := ed.selectionRegion()
	require.True(t, ok)
	assert.Equal(t, region{start: 2, end: 2}, reg)

	ed.toggleMark()
	assert.False(t, ed.selecting())
}

func TestEditor_SelectionRegionNormalizesOrder(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb\nc")

	// Anchor above the cursor: the region is normalized.
	ed.mark = 0

	reg, ok := ed.selectionRegion()
	require.True(t, ok)
	assert.Equal(t, region{start: 0, end: 2}, reg)
}

func TestEditor_RegionText(t *testing.T) {
	ed := newEditor()
	ed.setContent("first\nsecond\nthird")

	assert.Equal(t, "second", ed.regionText(region{start: 1, end: 1}))
	assert.Equal(t, "first\nsecond\nthird", ed.regionText(region{start: 0, end: 2}))
	assert.Equal(t, "third", ed.regionText(region{start: 2, end: 9}), "end is clamped to the buffer")
	assert.Empty(t, ed.regionText(region{start: 9, end: 9}))
}

func TestEditor_ReplaceRegionSplicesLines(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb\nc")

	ed.replaceRegion(region{start: 1, end: 1}, "$$x$$")
	assert.Equal(t, "a\n$$x$$\nc", ed.content())
}

func TestEditor_ReplaceRegionMultiline(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb\nc\nd")

	ed.replaceRegion(region{start: 1, end: 2}, "X\nY\nZ")
	assert.Equal(t, "a\nX\nY\nZ\nd", ed.content())
}

func TestEditor_ReplaceRegionClearsMark(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb")
	ed.mark = 0

	ed.replaceRegion(region{start: 0, end: 1}, "x")

	assert.False(t, ed.selecting())
	assert.Equal(t, "x", ed.content())
}

func TestEditor_ReplaceRegionOutOfRangeIsIgnored(t *testing.T) {
	ed := newEditor()
	ed.setContent("a\nb")

	ed.replaceRegion(region{start: 5, end: 7}, "x")
	assert.Equal(t, "a\nb", ed.content())
}
