package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typerace/internal/view"
)

const (
	outerMargin   = 2
	topHeight     = 3
	bottomHeight  = 3
	minBodyHeight = 2

	fallbackWidth  = 80
	fallbackHeight = 24

	gaugeFill = "#F0F0F0"
)

var (
	paneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	hotkeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")).Underline(true)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#61AFEF"))
	borderColor = lipgloss.Color("#8C8C8C")
)

func renderFrame(f view.Frame, width, height int, bar progress.Model) string {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	innerWidth := maxInt(width-2*outerMargin, 4)
	bodyHeight := maxInt(height-2*outerMargin-topHeight-bottomHeight, minBodyHeight)

	top := renderTop(f.Top, innerWidth)
	body := renderMiddle(f.Middle, innerWidth, bodyHeight)
	bottom := blank(innerWidth, bottomHeight)
	if f.Bottom != nil {
		bottom = renderGauge(*f.Bottom, innerWidth, bar)
	}
	page := lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
	return lipgloss.NewStyle().Margin(outerMargin).Render(page)
}

func renderTop(t view.Top, width int) string {
	inner := width - 2
	var content string
	switch t.Kind {
	case view.TopMenu:
		parts := make([]string, 0, len(t.Tabs))
		for _, tab := range t.Tabs {
			parts = append(parts, hotkeyStyle.Render(tab.Hotkey)+tabStyle.Render(tab.Rest))
		}
		content = " " + strings.Join(parts, tabStyle.Render(" | "))
	default:
		content = paneStyle.Render(runewidth.Truncate(t.Text, inner, ""))
	}
	return box(t.Title, content, width, topHeight, lipgloss.Left)
}

func renderMiddle(m view.Middle, width, height int) string {
	bordered := m.Title != ""
	inner := width
	rows := height
	if bordered {
		inner -= 2
		rows -= 2
	}
	lines := make([]string, 0, len(m.Lines))
	for i, line := range m.Lines {
		if len(lines) >= rows {
			break
		}
		line = runewidth.Truncate(line, inner, "")
		if i == m.Accent {
			lines = append(lines, accentStyle.Render(line))
			continue
		}
		lines = append(lines, paneStyle.Render(line))
	}
	content := strings.Join(lines, "\n")
	align := lipgloss.Left
	if m.Centered {
		align = lipgloss.Center
	}
	if !bordered {
		return lipgloss.NewStyle().Width(inner).Height(rows).Align(align).Render(content)
	}
	return box(m.Title, content, width, height, align)
}

func renderGauge(g view.Gauge, width int, bar progress.Model) string {
	bar.Width = width - 2
	content := bar.ViewAs(float64(g.Percent) / 100)
	return box(g.Title, content, width, bottomHeight, lipgloss.Left)
}

// box draws content inside a single-line border with title set into the top
// edge. width and height include the border.
func box(title, content string, width, height int, align lipgloss.Position) string {
	inner := maxInt(width-2, 1)
	rows := maxInt(height-2, 1)
	border := lipgloss.NormalBorder()

	title = runewidth.Truncate(title, inner, "")
	fill := inner - runewidth.StringWidth(title)
	topLine := lipgloss.NewStyle().Foreground(borderColor).Render(border.TopLeft) +
		paneStyle.Render(title) +
		lipgloss.NewStyle().Foreground(borderColor).Render(strings.Repeat(border.Top, fill)+border.TopRight)

	body := lipgloss.NewStyle().
		Width(inner).
		Height(rows).
		MaxHeight(rows).
		Align(align).
		Render(content)
	framed := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(borderColor).
		Render(body)
	return topLine + "\n" + framed
}

func blank(width, height int) string {
	return lipgloss.NewStyle().Width(width).Height(height).Render("")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
