package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is the target spacing between ticks.
const DefaultTickRate = 200 * time.Millisecond

// TickMsg is delivered to the program when a tick fires.
type TickMsg time.Time

// Pacer spaces ticks by Rate measured from the previous emission.
type Pacer struct {
	Rate time.Duration
}

// NewPacer returns a Pacer with the default tick rate.
func NewPacer() Pacer {
	return Pacer{Rate: DefaultTickRate}
}

// Next returns how long to wait before the next tick given the last emission.
// Work done since last eats into the wait; a late tick is scheduled at once.
func (p Pacer) Next(last, now time.Time) time.Duration {
	wait := p.Rate - now.Sub(last)
	if wait < 0 {
		return 0
	}
	return wait
}

// Schedule returns a command that emits a TickMsg after the paced delay.
func (p Pacer) Schedule(last, now time.Time) tea.Cmd {
	return tea.Tick(p.Next(last, now), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
