package ui

// List is a cursor over an ordered collection with wraparound navigation.
// A selected index of -1 means nothing is selected, which is the only
// possible state for an empty list.
type List[T any] struct {
	items    []T
	selected int
}

// NewList returns an empty list with no selection.
func NewList[T any]() List[T] {
	return List[T]{selected: -1}
}

// SetItems replaces the collection and selects the first item, if any.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	if len(items) > 0 {
		l.selected = 0
	} else {
		l.selected = -1
	}
}

// Clear drops all items and the selection.
func (l *List[T]) Clear() {
	l.items = nil
	l.selected = -1
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns the underlying collection.
func (l *List[T]) Items() []T {
	return l.items
}

// SelectedIndex returns the selected index, or -1 when nothing is selected.
func (l *List[T]) SelectedIndex() int {
	return l.selected
}

// Selected returns the selected item, if any.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.items) {
		return zero, false
	}
	return l.items[l.selected], true
}

// Select sets the selection to i when i is in range.
func (l *List[T]) Select(i int) {
	if i >= 0 && i < len(l.items) {
		l.selected = i
	}
}

// Next advances the selection, wrapping from the last item to the first.
// No-op on an empty list.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	current := l.selected
	if current < 0 {
		current = 0
	}
	if current >= len(l.items)-1 {
		l.selected = 0
	} else {
		l.selected = current + 1
	}
}

// Previous retreats the selection, wrapping from the first item to the last.
// No-op on an empty list.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	current := l.selected
	if current < 0 {
		current = 0
	}
	if current == 0 {
		l.selected = len(l.items) - 1
	} else {
		l.selected = current - 1
	}
}

// First selects the first item. No-op on an empty list.
func (l *List[T]) First() {
	if len(l.items) > 0 {
		l.selected = 0
	}
}

// Last selects the last item. No-op on an empty list.
func (l *List[T]) Last() {
	if len(l.items) > 0 {
		l.selected = len(l.items) - 1
	}
}
