package race

import "time"

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	Screen      Screen
	Started     bool
	Countdown   int
	Input       string
	Words       []string
	Score       int
	Percent     int
	SecondsLeft int
}

// Counting reports whether the pre-race countdown is showing.
func (s Snapshot) Counting() bool {
	return s.Screen == ScreenHome && s.Started && s.Countdown > 0
}

// Snapshot captures the session at the current clock reading.
func (s *Session) Snapshot() Snapshot {
	now := s.clock.Now()
	snap := Snapshot{
		Screen:    s.screen,
		Started:   s.started,
		Countdown: s.countdown,
		Input:     string(s.input),
		Words:     s.queue.Words(),
		Score:     s.score,
	}
	if s.screen == ScreenGame {
		snap.Percent = s.percentAt(now)
		left := int(Length/time.Second) - s.elapsedSeconds(now)
		if left < 0 {
			left = 0
		}
		snap.SecondsLeft = left
	}
	return snap
}
