// Package race implements the typing race session and its state machine.
package race

import (
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/typerace/internal/clock"
	"github.com/verte-zerg/typerace/internal/event"
	"github.com/verte-zerg/typerace/internal/model"
)

const (
	// Length is the wall time of one race measured from its start.
	Length = 60 * time.Second
	// CountdownFrom is the first number shown before a race.
	CountdownFrom = 3
	// QueueSize is how many words a fresh race starts with.
	QueueSize = 100
)

// Screen is the active screen.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenGame
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Supplier delivers fresh random words.
type Supplier interface {
	NextWords(n int) []string
}

// Action tells the caller what to do after a step.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
)

// Session is the race state. It is owned by a single goroutine and only
// mutated through Step.
type Session struct {
	clock    clock.Clock
	supplier Supplier

	screen  Screen
	started bool

	countdown      int
	countdownStart time.Time

	gameStart    time.Time
	hasGameStart bool

	input []rune
	queue WordQueue
	score int

	last    model.RaceResult
	hasLast bool
}

// NewSession returns a session on the idle Home screen with a full word queue.
func NewSession(supplier Supplier, clk clock.Clock) (*Session, error) {
	words := supplier.NextWords(QueueSize)
	if len(words) == 0 {
		return nil, fmt.Errorf("word supplier returned no words")
	}
	return &Session{
		clock:     clk,
		supplier:  supplier,
		screen:    ScreenHome,
		countdown: CountdownFrom,
		queue:     NewWordQueue(words),
	}, nil
}

// Step applies one event and then re-evaluates the time and input driven
// transitions: countdown, word completion and race timeout.
func (s *Session) Step(ev event.Event) Action {
	if ev.Kind == event.KindKey {
		if s.handleKey(ev.Key) == ActionQuit {
			return ActionQuit
		}
	}
	s.advance()
	return ActionNone
}

func (s *Session) handleKey(k event.Key) Action {
	if k == event.Ctrl('c') {
		return ActionQuit
	}
	if !s.started {
		switch {
		case k.IsChar('q'):
			return ActionQuit
		case k.IsChar('s'), k.IsChar('r'):
			s.begin()
		}
		return ActionNone
	}
	if s.screen != ScreenGame {
		return ActionNone
	}
	switch {
	case k.Code == event.KeyBackspace && k.Mod == event.ModNone:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case k.Code == event.KeyChar && k.Mod == event.ModNone:
		s.input = append(s.input, k.Rune)
	case k == event.Ctrl('a'):
		s.input = s.input[:0]
	}
	return ActionNone
}

// begin arms the countdown. From GameOver it also resets the board.
func (s *Session) begin() {
	if s.screen == ScreenGameOver {
		s.screen = ScreenHome
		s.queue.Reset(s.supplier.NextWords(QueueSize))
	}
	s.started = true
	s.countdown = CountdownFrom
	s.countdownStart = s.clock.Now()
	s.gameStart = time.Time{}
	s.hasGameStart = false
	s.input = s.input[:0]
	s.score = 0
}

func (s *Session) advance() {
	switch s.screen {
	case ScreenHome:
		if !s.started {
			return
		}
		left := CountdownFrom - int(s.clock.Since(s.countdownStart)/time.Second)
		if left < 0 {
			left = 0
		}
		s.countdown = left
		if left == 0 {
			s.screen = ScreenGame
			s.gameStart = s.clock.Now()
			s.hasGameStart = true
			s.input = s.input[:0]
		}
	case ScreenGame:
		s.matchHead()
		if s.percentAt(s.clock.Now()) <= 0 {
			s.screen = ScreenGameOver
			s.started = false
			s.last = model.RaceResult{
				StartedAt: s.gameStart,
				EndedAt:   s.gameStart.Add(Length),
				Score:     s.score,
			}
			s.hasLast = true
		}
	}
}

func (s *Session) matchHead() {
	head, ok := s.queue.Head()
	if !ok || strings.TrimSpace(string(s.input)) != head {
		return
	}
	next := s.supplier.NextWords(1)
	if len(next) == 0 {
		return
	}
	s.queue.Advance(next[0])
	s.input = s.input[:0]
	s.score++
}

func (s *Session) elapsedSeconds(now time.Time) int {
	if !s.hasGameStart {
		return 0
	}
	return int(now.Sub(s.gameStart) / time.Second)
}

// percentAt is the share of race time left, in whole percent, floored at 0.
func (s *Session) percentAt(now time.Time) int {
	secs := s.elapsedSeconds(now)
	p := 100 - (100*secs)/int(Length/time.Second)
	if p < 0 {
		return 0
	}
	return p
}

// Screen returns the active screen.
func (s *Session) Screen() Screen { return s.screen }

// Started reports whether a race has been requested and not yet finished.
func (s *Session) Started() bool { return s.started }

// Countdown returns the last evaluated countdown value.
func (s *Session) Countdown() int { return s.countdown }

// GameStart returns when the current race began.
func (s *Session) GameStart() (time.Time, bool) { return s.gameStart, s.hasGameStart }

// Input returns the typed text for the current word.
func (s *Session) Input() string { return string(s.input) }

// Words returns the queued words.
func (s *Session) Words() []string { return s.queue.Words() }

// Score returns the number of completed words in the current race.
func (s *Session) Score() int { return s.score }

// LastResult returns the most recently finished race.
func (s *Session) LastResult() (model.RaceResult, bool) { return s.last, s.hasLast }
