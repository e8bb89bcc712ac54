package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const (
	lineColumnWidth     = 6
	decisionColumnWidth = 16
)

// Simple delegate for literal list items.
type scanDelegate struct {
	offset int
}

func (d scanDelegate) Height() int  { return 1 }
func (d scanDelegate) Spacing() int { return 0 }
func (d scanDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d scanDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	lit, ok := item.(literalItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	width := m.Width() - lineColumnWidth - decisionColumnWidth - 4

	var lineStyle, decisionStyle, textStyle lipgloss.Style

	var displayText string

	if isSelected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		lineStyle = base.Width(lineColumnWidth).Align(lipgloss.Right)
		decisionStyle = base.Width(decisionColumnWidth)
		textStyle = base

		displayText = animateScroll(lit.text, width, d.offset)
	} else {
		decisionColor := lipgloss.Color("8")
		if lit.eligible {
			decisionColor = lipgloss.Color("2")
		}

		lineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(lineColumnWidth).
			Align(lipgloss.Right)
		decisionStyle = lipgloss.NewStyle().
			Foreground(decisionColor).
			Width(decisionColumnWidth)
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayText = truncateToWidth(lit.text, width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		lineStyle.Render(fmt.Sprintf("%d", lit.line)),
		decisionStyle.Render(lit.decision),
		textStyle.Render(displayText),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling starts.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// scanModel browses the literal decisions of one document.
type scanModel struct {
	width        int
	height       int
	literals     list.Model
	delegate     scanDelegate
	source       string
	total        int
	translated   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newScanModel() scanModel {
	delegate := scanDelegate{}
	literals := list.New([]list.Item{}, delegate, 80, 20)
	literals.SetShowPagination(false)
	literals.SetShowFilter(true)
	literals.SetShowHelp(false)
	literals.SetShowTitle(false)
	literals.SetShowStatusBar(false)
	literals.FilterInput.Placeholder = "Filter by name or text…"

	return scanModel{
		literals:     literals,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m scanModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.literals.SetWidth(m.width)

	case tickMsg:
		if m.literals.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.literals.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.literals.Update(msg)
			m.literals = newList

			if m.literals.Index() != m.lastSelected {
				m.lastSelected = m.literals.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.literals.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case scanMsg:
		m = m.handleScanMsg(msg)
	}

	return m, cmd
}

func (m scanModel) handleScanMsg(msg scanMsg) scanModel {
	m.source = msg.source
	m.total = len(msg.changes)
	m.translated, _ = countChanges(msg.changes)

	items := make([]list.Item, 0, len(msg.changes))
	for _, change := range msg.changes {
		items = append(items, newLiteralItem(change))
	}

	m.literals.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m scanModel) View() string {
	if !m.rendered {
		return "Scanning literals…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Glossa Literal Scan: " + m.source)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Literals: %s   To translate: %s   Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.translated)),
		accentStyle.Render(fmt.Sprintf("%d", m.total-m.translated)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m scanModel) renderTable() string {
	// Title, summary, footer, border and header take nine rows.
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take six columns.
	listWidth := m.width - 6

	m.literals.SetHeight(listHeight)
	m.literals.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %-*s  %s",
		lineColumnWidth, "Line", decisionColumnWidth, "Decision", "Text"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.literals.View(),
		),
	)
}
