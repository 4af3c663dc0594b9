package board

// EditBuffer holds the text of a task being composed and a caret column.
// The column is counted in runes and always stays within [0, len(text)].
type EditBuffer struct {
	text   []rune
	column int
}

// NewEditBuffer returns an empty buffer with the caret at the start
func NewEditBuffer() *EditBuffer {
	return &EditBuffer{}
}

// Text returns the current contents
func (e *EditBuffer) Text() string {
	return string(e.text)
}

// Column returns the caret position
func (e *EditBuffer) Column() int {
	return e.column
}

// Len returns the text length in runes
func (e *EditBuffer) Len() int {
	return len(e.text)
}

// InsertChar inserts r at the caret and advances the caret past it.
func (e *EditBuffer) InsertChar(r rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.column+1:], e.text[e.column:])
	e.text[e.column] = r
	e.column = min(e.column+1, len(e.text))
}

// DeleteBackward removes the rune before the caret. Does nothing at column 0.
func (e *EditBuffer) DeleteBackward() {
	if e.column == 0 {
		return
	}
	e.text = append(e.text[:e.column-1], e.text[e.column:]...)
	e.column--
}

// MoveLeft moves the caret one rune left
func (e *EditBuffer) MoveLeft() {
	if e.column > 0 {
		e.column--
	}
}

// MoveRight moves the caret one rune right, never past the end of the text
func (e *EditBuffer) MoveRight() {
	if e.column < len(e.text) {
		e.column++
	}
}

// Home moves the caret to the start of the text
func (e *EditBuffer) Home() {
	e.column = 0
}

// End moves the caret past the last rune
func (e *EditBuffer) End() {
	e.column = len(e.text)
}

// Commit returns the composed text. The buffer should be dropped afterwards.
func (e *EditBuffer) Commit() string {
	return string(e.text)
}
