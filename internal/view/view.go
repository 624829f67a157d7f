// Package view projects race state into a passive description of the screen.
package view

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/typerace/internal/race"
)

// WordsPerLine is how many queued words share a line on the Game screen.
const WordsPerLine = 10

// TopKind selects what the top pane shows.
type TopKind int

const (
	TopMenu TopKind = iota
	TopInput
	TopBanner
)

// Tab is a menu entry split at its hotkey.
type Tab struct {
	Hotkey string
	Rest   string
}

// Top is the fixed-height header pane.
type Top struct {
	Kind  TopKind
	Title string
	Tabs  []Tab
	Text  string
}

// Middle is the flexible body pane. Accent is the index of an emphasised
// line, or -1.
type Middle struct {
	Title    string
	Lines    []string
	Centered bool
	Accent   int
}

// Gauge is the time-remaining bar.
type Gauge struct {
	Title   string
	Percent int
}

// Frame describes all three panes. Bottom is nil when no gauge is shown.
type Frame struct {
	Top    Top
	Middle Middle
	Bottom *Gauge
}

var menuTabs = []Tab{
	{Hotkey: "S", Rest: "tart"},
	{Hotkey: "Q", Rest: "uit"},
}

// Project builds the frame for a snapshot.
func Project(s race.Snapshot) Frame {
	switch s.Screen {
	case race.ScreenGame:
		return Frame{
			Top:    Top{Kind: TopInput, Title: "Input", Text: s.Input},
			Middle: Middle{Lines: WordLines(s.Words, WordsPerLine), Accent: -1},
			Bottom: &Gauge{
				Title:   fmt.Sprintf("Time Remaining: %d", s.SecondsLeft),
				Percent: s.Percent,
			},
		}
	case race.ScreenGameOver:
		return Frame{
			Top: Top{
				Kind: TopBanner,
				Text: fmt.Sprintf("Game Over | Press 'r' to restart race | Score: %d", s.Score),
			},
			Middle: Middle{Accent: -1},
		}
	default:
		return Frame{
			Top:    Top{Kind: TopMenu, Title: "Menu", Tabs: menuTabs},
			Middle: homeMiddle(s),
		}
	}
}

func homeMiddle(s race.Snapshot) Middle {
	lines := []string{"", "Welcome", "", "to", "", "Typing Game", ""}
	if s.Counting() {
		lines = append(lines, fmt.Sprintf("Starting race in %d", s.Countdown))
	}
	return Middle{Title: "Home", Lines: lines, Centered: true, Accent: 5}
}

// WordLines joins words into lines of at most perLine words.
func WordLines(words []string, perLine int) []string {
	if perLine <= 0 {
		perLine = WordsPerLine
	}
	lines := make([]string, 0, (len(words)+perLine-1)/perLine)
	for start := 0; start < len(words); start += perLine {
		end := start + perLine
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, strings.Join(words[start:end], " "))
	}
	return lines
}
