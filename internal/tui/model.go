// Package tui provides the Bubble Tea typing race interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerace/internal/clock"
	"github.com/verte-zerg/typerace/internal/event"
	"github.com/verte-zerg/typerace/internal/race"
	"github.com/verte-zerg/typerace/internal/view"
)

// Model implements the Bubble Tea race UI. It is the only owner of the
// session; every key and tick goes through Session.Step before the next View.
type Model struct {
	session *race.Session
	clock   clock.Clock
	pacer   event.Pacer
	log     zerolog.Logger
	bar     progress.Model

	width  int
	height int
}

// NewModel constructs a race TUI model.
func NewModel(session *race.Session, clk clock.Clock, logger zerolog.Logger) *Model {
	return &Model{
		session: session,
		clock:   clk,
		pacer:   event.NewPacer(),
		log:     logger,
		bar:     progress.New(progress.WithSolidFill(gaugeFill)),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	now := m.clock.Now()
	return m.pacer.Schedule(now, now)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		for _, ev := range event.FromKeyMsg(msg) {
			if m.step(ev) == race.ActionQuit {
				m.log.Info().Msg("quit")
				return m, tea.Quit
			}
		}
		return m, nil
	case event.TickMsg:
		m.step(event.Tick())
		return m, m.pacer.Schedule(time.Time(msg), m.clock.Now())
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	frame := view.Project(m.session.Snapshot())
	return renderFrame(frame, m.width, m.height, m.bar)
}

func (m *Model) step(ev event.Event) race.Action {
	before := m.session.Screen()
	action := m.session.Step(ev)
	after := m.session.Screen()
	if before == after {
		return action
	}
	switch after {
	case race.ScreenGame:
		m.log.Info().Int("words", len(m.session.Words())).Msg("race started")
	case race.ScreenGameOver:
		if res, ok := m.session.LastResult(); ok {
			m.log.Info().
				Int("score", res.Score).
				Float64("wpm", res.WordsPerMinute()).
				Msg("race finished")
		}
	case race.ScreenHome:
		m.log.Debug().Msg("race restarting")
	}
	return action
}
