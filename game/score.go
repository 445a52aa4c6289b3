package game

import "strconv"

// Scoreboard holds the score and its HUD text. The text is rebuilt on
// every change so readers never see a stale projection.
type Scoreboard struct {
	label string
	value int
	text  string
}

// NewScoreboard creates a zero score with the given label.
func NewScoreboard(label string) Scoreboard {
	s := Scoreboard{label: label}
	s.refresh()
	return s
}

// Add increases the score by points.
func (s *Scoreboard) Add(points int) {
	s.value += points
	s.refresh()
}

// Reset sets the score back to zero.
func (s *Scoreboard) Reset() {
	s.value = 0
	s.refresh()
}

// Value returns the score.
func (s Scoreboard) Value() int { return s.value }

// Text returns the HUD text, e.g. "Score: 10".
func (s Scoreboard) Text() string { return s.text }

func (s *Scoreboard) refresh() {
	s.text = s.label + ": " + strconv.Itoa(s.value)
}
