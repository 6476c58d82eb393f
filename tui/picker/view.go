package picker

import (
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-pick/git"
	"github.com/mattsolo1/grove-pick/source"
)

// View renders the picker.
func (m Model) View() string {
	switch m.mode {
	case modePreview:
		return m.viewPreview()
	default:
		return m.viewList()
	}
}

func (m Model) viewPreview() string {
	var b strings.Builder
	b.WriteString(m.theme.Info.Render(m.previewTitle))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("q/esc to close"))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder

	switch m.mode {
	case modeCommit:
		b.WriteString(m.commitInput.View())
		if len(m.commitFiles) > 0 {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf("  (%d files)", len(m.commitFiles))))
		}
	case modeReset:
		b.WriteString(m.theme.Warning.Render("staged and modified: (r)eset, (c)heckout, esc to cancel"))
	default:
		b.WriteString(m.filterInput.View())
	}
	b.WriteString("\n\n")

	visible := m.listHeight()
	start, end := windowAround(m.cursor, len(m.filtered), visible)

	for i := start; i < end; i++ {
		c := m.all[m.filtered[i]]
		isSelected := i == m.cursor

		if isSelected {
			b.WriteString(m.theme.Cursor.Render("▶ "))
		} else {
			b.WriteString("  ")
		}
		if m.marked[c.Ref()] {
			b.WriteString(m.theme.Marked.Render("* "))
		} else {
			b.WriteString("  ")
		}

		line := m.renderCandidate(c, m.filtered[i])
		if isSelected {
			line = m.theme.Selected.Render(c.Display)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		if len(m.all) == 0 {
			b.WriteString(m.theme.Muted.Render("  no candidates"))
		} else {
			b.WriteString(m.theme.Muted.Render("  no matches"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	counter := fmt.Sprintf("%d/%d", len(m.filtered), len(m.all))
	if len(m.marked) > 0 {
		counter += fmt.Sprintf(" (%d marked)", len(m.marked))
	}
	b.WriteString(m.theme.Muted.Render(counter))
	b.WriteString("\n")

	if m.status != "" {
		if m.statusIsErr {
			b.WriteString(m.theme.Error.Render(m.status))
		} else {
			b.WriteString(m.theme.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Muted.Render(
		"enter open • tab mark • ctrl+v preview • ctrl+x diff • ctrl+a stage • ctrl+r reset • ctrl+o commit • esc quit"))
	return b.String()
}

// renderCandidate colors a candidate line: the status symbol for files, the
// whole subject by conventional-commit type for commits.
func (m Model) renderCandidate(c source.Candidate, idx int) string {
	display := c.Display
	if offsets, ok := m.matches[idx]; ok {
		return m.highlightMatches(display, offsets)
	}

	switch c.Kind {
	case source.KindFile:
		if len(c.Code) > 0 {
			symbol := git.StatusSymbol(c.Code[0])
			if strings.HasPrefix(display, symbol) {
				return m.theme.StatusStyle(symbol).Render(symbol) + display[len(symbol):]
			}
		}
	case source.KindCommit:
		if c.CommitType != "" {
			return m.theme.CommitTypeStyle(c.CommitType).Render(display)
		}
	}
	return display
}

// highlightMatches renders the fuzzy-matched runes in the match style.
func (m Model) highlightMatches(s string, offsets []int) string {
	matched := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		matched[o] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if matched[i] {
			b.WriteString(m.theme.Match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// listHeight is the number of candidate rows that fit the terminal.
func (m Model) listHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// windowAround centers the cursor in a window of the given size.
func windowAround(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}

	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
