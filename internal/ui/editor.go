package ui

// Editor is a single-line text buffer addressed by character, not by byte,
// so multi-byte runes insert, delete, and move as single units. The cursor
// is a character index in [0, len].
type Editor struct {
	runes  []rune
	cursor int
}

// Reset clears the buffer and moves the cursor to the start.
func (e *Editor) Reset() {
	e.runes = e.runes[:0]
	e.cursor = 0
}

// Insert places r at the cursor and advances the cursor past it.
func (e *Editor) Insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

// Backspace removes the character before the cursor. No-op at the start.
func (e *Editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
}

// CursorLeft moves the cursor one character left, clamped at 0.
func (e *Editor) CursorLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// CursorRight moves the cursor one character right, clamped at the end.
func (e *Editor) CursorRight() {
	if e.cursor < len(e.runes) {
		e.cursor++
	}
}

// Value returns the buffer contents.
func (e *Editor) Value() string {
	return string(e.runes)
}

// Cursor returns the cursor position as a character index.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Len returns the buffer length in characters.
func (e *Editor) Len() int {
	return len(e.runes)
}
