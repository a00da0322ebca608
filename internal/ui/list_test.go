package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStartsUnselected(t *testing.T) {
	l := NewList[string]()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.SelectedIndex())

	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestSetItemsSelectsFirst(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a", "b", "c"})

	assert.Equal(t, 0, l.SelectedIndex())

	item, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", item)
}

func TestSetItemsEmptyClearsSelection(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a"})
	l.SetItems(nil)

	assert.Equal(t, -1, l.SelectedIndex())
}

func TestNextWrapsToFirst(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a", "b", "c"})
	l.Select(2)

	l.Next()

	assert.Equal(t, 0, l.SelectedIndex())
}

func TestPreviousWrapsToLast(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a", "b", "c"})

	l.Previous()

	assert.Equal(t, 2, l.SelectedIndex())
}

func TestNavigationOnEmptyListIsNoOp(t *testing.T) {
	l := NewList[string]()

	l.Next()
	l.Previous()
	l.First()
	l.Last()

	assert.Equal(t, -1, l.SelectedIndex())
}

func TestFirstAndLast(t *testing.T) {
	l := NewList[int]()
	l.SetItems([]int{10, 20, 30})

	l.Last()
	assert.Equal(t, 2, l.SelectedIndex())

	l.First()
	assert.Equal(t, 0, l.SelectedIndex())
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a", "b"})

	l.Select(5)
	assert.Equal(t, 0, l.SelectedIndex())

	l.Select(-1)
	assert.Equal(t, 0, l.SelectedIndex())
}

func TestClearDropsItemsAndSelection(t *testing.T) {
	l := NewList[string]()
	l.SetItems([]string{"a", "b"})
	l.Select(1)

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.SelectedIndex())
}
