package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typefast/internal/game"
	"github.com/verte-zerg/typefast/internal/model"
	"github.com/verte-zerg/typefast/internal/stats"
)

const (
	trendWindow     = 5
	maxRecordRows   = 10
	minContentWidth = 20
)

var (
	typedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	itemStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Padding(0, 1)
	activeItemStyle  = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

var menuItems = []string{"Start", "Records"}

// Renderer paints session state with lipgloss. The zero size renders
// unplaced content, which is what tests and pipes see.
type Renderer struct {
	width  int
	height int
	bar    progress.Model
}

// NewRenderer constructs a renderer with no known terminal size.
func NewRenderer() *Renderer {
	return &Renderer{
		bar: progress.New(
			progress.WithSolidFill("#C89A3A"),
			progress.WithoutPercentage(),
		),
	}
}

// SetSize records the terminal size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.bar.Width = r.contentWidth()
}

// Render implements game.Renderer.
func (r *Renderer) Render(w io.Writer, s game.State) error {
	_, err := io.WriteString(w, r.view(s))
	return err
}

func (r *Renderer) view(s game.State) string {
	var content, legend string
	switch s.Page {
	case game.PageMenu:
		content, legend = renderMenu(s.MenuIndex), "↑/↓: move  enter: select  esc: quit"
	case game.PageCountDown:
		content, legend = renderCountDown(s.Remaining), "esc: menu"
	case game.PageGame:
		content, legend = r.renderGame(s), "esc: menu"
	case game.PageGameResult:
		content, legend = renderResult(s), "enter: menu"
	case game.PageRecords:
		content, legend = r.renderRecords(s.Records), "esc: menu"
	}
	footer := footerStyle.Render(legend)
	if !s.Error.IsZero() {
		footer = lipgloss.JoinVertical(lipgloss.Center, errorStyle.Render(s.Error.Message()), footer)
	}
	if r.width == 0 || r.height == 0 {
		return content + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	if r.height <= footerHeight {
		return fitLines(content, r.width, r.height)
	}
	body := lipgloss.Place(r.width, r.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerLines := lipgloss.Place(r.width, footerHeight, lipgloss.Center, lipgloss.Center, footer)
	return fitLines(body+"\n"+footerLines, r.width, r.height)
}

func (r *Renderer) contentWidth() int {
	w := int(float64(r.width) * 0.70)
	return max(w, minContentWidth)
}

func renderMenu(selected int) string {
	items := make([]string, 0, len(menuItems))
	for i, label := range menuItems {
		if i == selected {
			items = append(items, activeItemStyle.Render(label))
			continue
		}
		items = append(items, itemStyle.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("typefast"),
		"",
		lipgloss.JoinVertical(lipgloss.Center, items...),
	)
}

func renderCountDown(remaining int) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		"Get ready!",
		countStyle.Render(fmt.Sprintf("%ds", remaining)),
	)
}

func (r *Renderer) renderGame(s game.State) string {
	styled := buildStyledRunes([]rune(s.Passage), s.Position)
	passage := renderStyledRunes(styled)
	if r.width > 0 {
		passage = wrapStyledRunes(styled, r.contentWidth())
	}
	elapsed := float64(game.GameSeconds-s.Remaining) / float64(game.GameSeconds)
	elapsed = max(0, min(elapsed, 1))
	metrics := footerStyle.Render(fmt.Sprintf("time %ds  wpm %d  cpm %d", s.Remaining, s.WordSpeed, s.CharSpeed))
	return lipgloss.JoinVertical(lipgloss.Left,
		passage,
		"",
		r.bar.ViewAs(elapsed),
		metrics,
	)
}

func renderResult(s game.State) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("WPM", fmt.Sprintf("%d", s.WordSpeed)),
		metricCard("CPM", fmt.Sprintf("%d", s.CharSpeed)),
	)
}

func (r *Renderer) renderRecords(records []model.Record) string {
	if len(records) == 0 {
		return "No records yet."
	}
	summary := stats.Summarize(records)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Games", fmt.Sprintf("%d", summary.Count)),
		metricCard("Best WPM", fmt.Sprintf("%d", summary.BestWPM)),
		metricCard("Avg WPM", fmt.Sprintf("%.1f", summary.AvgWPM)),
		metricCard("Avg CPM", fmt.Sprintf("%.1f", summary.AvgCPM)),
	)
	trend := stats.Sparkline(stats.MovingAverage(stats.WPMSeries(records), trendWindow))
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		recordTable(records).View(),
		"",
		cardTitleStyle.Render("Trend ")+trend,
	)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// recordTable lists the most recent records, newest first.
func recordTable(records []model.Record) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "WPM", Width: 5},
		{Title: "CPM", Width: 5},
		{Title: "Date", Width: 25},
	}
	rows := make([]table.Row, 0, min(len(records), maxRecordRows))
	for i := len(records) - 1; i >= 0 && len(rows) < maxRecordRows; i-- {
		rec := records[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.ID),
			fmt.Sprintf("%d", rec.WPM),
			fmt.Sprintf("%d", rec.CPM),
			rec.Date,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(recordTableStyles())
	return t
}

func recordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell
	return styles
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}
