package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/leetcode-tui/internal/format/table"
	"github.com/atomicstack/leetcode-tui/internal/model"
	"github.com/atomicstack/leetcode-tui/internal/notification"
	"github.com/atomicstack/leetcode-tui/internal/widget"
)

const (
	appTitle       = "leetcode-tui"
	topicPaneMin   = 16
	topicPaneShare = 4 // topic pane takes 1/topicPaneShare of the width
	ellipsis       = "…"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	cols := m.screen.Cols()
	body := m.viewPanes(cols)
	if top, ok := m.app.TopPopup(); ok && top.IsActive() {
		body = m.viewPopup(top, cols, lipgloss.Height(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(cols),
		body,
		m.viewHelp(cols),
	)
}

func (m *Model) viewHeader(cols int) string {
	segments := []string{styles.Header.Render(appTitle)}
	if ql, ok := m.questionList(); ok {
		segments = append(segments, styles.PaneTitle.Render(ql.Topic().String()))
	}
	if v, ok := m.app.Widget(notification.Stats); ok {
		if st, ok := v.Stats(); ok {
			c := st.Counts()
			segments = append(segments,
				styles.Info.Render(fmt.Sprintf("%d questions", c.Total)),
				styles.Easy.Render(fmt.Sprintf("easy %d", c.Easy)),
				styles.Medium.Render(fmt.Sprintf("medium %d", c.Medium)),
				styles.Hard.Render(fmt.Sprintf("hard %d", c.Hard)),
				styles.Accepted.Render(fmt.Sprintf("✓ %d", c.Accepted)),
			)
		}
	}
	return truncateText(strings.Join(segments, "  "), cols)
}

func (m *Model) viewPanes(cols int) string {
	topicWidth := cols / topicPaneShare
	if topicWidth < topicPaneMin {
		topicWidth = topicPaneMin
	}
	questionWidth := cols - topicWidth
	if questionWidth < topicPaneMin {
		questionWidth = topicPaneMin
	}
	rows := m.screen.ListRows()
	var current notification.WidgetName
	if len(m.app.Popups()) == 0 {
		current = m.app.Current().Name()
	}

	var topicLines, questionLines []string
	questionTitle := "Questions"
	if v, ok := m.app.Widget(notification.TopicList); ok {
		if tl, ok := v.TopicList(); ok {
			topicLines = topicRows(tl, topicWidth-2)
		}
	}
	if ql, ok := m.questionList(); ok {
		if ql.Searching() || ql.Query() != "" {
			questionTitle = styles.FilterPrompt.Render(ql.SearchView())
		} else {
			questionTitle = fmt.Sprintf("Questions (%d)", ql.Paginator().Len())
		}
		questionLines = questionRows(ql, questionWidth-2)
	}

	left := pane("Topics", topicLines, topicWidth, rows, current == notification.TopicList)
	right := pane(questionTitle, questionLines, questionWidth, rows, current == notification.QuestionList)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) questionList() (*widget.QuestionList, bool) {
	v, ok := m.app.Widget(notification.QuestionList)
	if !ok {
		return nil, false
	}
	return v.QuestionList()
}

func pane(title string, lines []string, width, rows int, active bool) string {
	style := styles.Pane
	if active {
		style = styles.ActivePane
	}
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	body := make([]string, 0, rows+1)
	body = append(body, truncateText(styles.PaneTitle.Render(title), inner))
	for i := 0; i < rows; i++ {
		if i < len(lines) {
			body = append(body, lines[i])
			continue
		}
		body = append(body, "")
	}
	return style.Width(inner).Render(strings.Join(body, "\n"))
}

func topicRows(tl *widget.TopicList, width int) []string {
	p := tl.Paginator()
	window := p.Window()
	out := make([]string, len(window))
	for i, t := range window {
		text := truncateText(t.String(), width)
		if i == p.Cursor() {
			out[i] = styles.SelectedItem.Render(text)
			continue
		}
		out[i] = styles.Item.Render(text)
	}
	return out
}

func questionRows(ql *widget.QuestionList, width int) []string {
	p := ql.Paginator()
	window := p.Window()
	if len(window) == 0 {
		msg := "(no questions)"
		if q := ql.Query(); q != "" {
			msg = fmt.Sprintf("No matches for %q", q)
		}
		return []string{styles.Info.Render(truncateText(msg, width))}
	}
	plain := make([][]string, len(window))
	styled := make([][]string, len(window))
	for i, q := range window {
		marker, markerStyle := statusMarker(q, ql.HasLocalSolution(q.FrontendID))
		id := strconv.Itoa(q.FrontendID)
		title := q.Title
		if q.PaidOnly {
			title += " $"
		}
		diff := string(q.Difficulty)
		plain[i] = []string{marker, id, title, diff}
		styled[i] = []string{
			markerStyle.Render(marker),
			styles.Item.Render(id),
			styles.Item.Render(title),
			styles.Difficulty(q.Difficulty).Render(diff),
		}
	}
	align := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignLeft}
	plainLines := table.Format(plain, align)
	styledLines := table.Format(styled, align)
	out := make([]string, len(window))
	for i := range window {
		if i == p.Cursor() {
			out[i] = styles.SelectedItem.Render(truncateText(plainLines[i], width))
			continue
		}
		out[i] = truncateText(styledLines[i], width)
	}
	return out
}

func statusMarker(q model.Question, local bool) (string, lipgloss.Style) {
	switch {
	case q.Solved():
		return "✓", *styles.Accepted
	case q.Status == model.StatusAttempted:
		return "~", *styles.Attempted
	case local:
		return "*", *styles.LocalSolution
	}
	return " ", *styles.Item
}

func (m *Model) viewPopup(p *widget.Popup, cols, height int) string {
	width := cols * 3 / 5
	if width < 24 {
		width = 24
	}
	// border and padding take two columns on each side
	inner := width - 4
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	style := styles.Popup
	if p.MessageKind() == notification.Failure {
		style = styles.ErrorPopup
	}
	lines := []string{truncateText(styles.PopupTitle.Render(p.Title()), inner), ""}
	if msg, ok := p.Message(); ok {
		content := msg.Lines()
		start := msg.Scroll()
		end := start + visible - 2
		if end > len(content) {
			end = len(content)
		}
		text := styles.Info
		if p.MessageKind() == notification.Failure {
			text = styles.Error
		}
		for _, line := range content[start:end] {
			lines = append(lines, text.Render(truncateText(line, inner)))
		}
	}
	if sel, ok := p.Selection(); ok {
		idx, has := sel.Selected()
		for i, item := range sel.Items() {
			text := truncateText(item, inner)
			if has && i == idx {
				lines = append(lines, styles.SelectedItem.Render(text))
				continue
			}
			lines = append(lines, styles.Item.Render(text))
		}
	}
	box := style.Width(inner + 2).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(cols, height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) viewHelp(cols int) string {
	v, ok := m.app.Widget(notification.HelpBar)
	if !ok {
		return ""
	}
	hb, ok := v.HelpBar()
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(hb.Entries()))
	for _, e := range hb.Entries() {
		parts = append(parts, styles.HelpKey.Render(e.Key)+" "+styles.HelpDesc.Render(e.Desc))
	}
	return truncateText(strings.Join(parts, styles.HelpDesc.Render(" · ")), cols)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), ellipsis)
}
