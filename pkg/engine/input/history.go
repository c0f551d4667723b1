package input

// noEntry is the history index when the player is not browsing
const noEntry = -1

// History is the list of submitted lines plus a browsing cursor.
// The zero value is not ready for use; call NewHistory.
type History struct {
	lines []string
	index int
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{index: noEntry}
}

// Add appends a submitted line and stops browsing
func (h *History) Add(line string) {
	h.lines = append(h.lines, line)
	h.index = noEntry
}

// Lines returns a copy of the submitted lines, oldest first
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Len returns the number of submitted lines
func (h *History) Len() int {
	return len(h.lines)
}

// Index returns the browsing cursor, or -1 when not browsing
func (h *History) Index() int {
	return h.index
}

// Prev moves the cursor one entry back. From "none" it jumps to the newest
// line; at the oldest line it stays put. Reports false when history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	if h.index == noEntry {
		h.index = len(h.lines) - 1
	} else if h.index > 0 {
		h.index--
	}
	return h.lines[h.index], true
}

// Next moves the cursor one entry forward. Stepping past the newest line
// returns to "none" with an empty line. Reports false when not browsing.
func (h *History) Next() (string, bool) {
	if h.index == noEntry {
		return "", false
	}
	h.index++
	if h.index >= len(h.lines) {
		h.index = noEntry
		return "", true
	}
	return h.lines[h.index], true
}
