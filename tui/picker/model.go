// Package picker is the interactive fuzzy finder over source candidates:
// filter input, ranked list, multi-select and action dispatch.
package picker

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-pick/logging"
	"github.com/mattsolo1/grove-pick/source"
	"github.com/mattsolo1/grove-pick/tui/theme"
)

type mode int

const (
	modeList mode = iota
	modePreview
	modeCommit
	modeReset
)

// Outcome is what the picker session resolved to: an action to perform on the
// selected candidates after the UI has been torn down. Nil means the user
// quit without selecting.
type Outcome struct {
	Action     string
	Candidates []source.Candidate
}

// Model is the picker component model.
type Model struct {
	ctx     context.Context
	env     *source.Env
	src     source.Source
	actions *source.Actions
	keys    KeyMap
	theme   *theme.Theme
	log     *logrus.Entry

	filterInput textinput.Model
	commitInput textinput.Model
	preview     viewport.Model

	all      []source.Candidate
	filtered []int         // indices into all, in rank order
	matches  map[int][]int // matched rune offsets per index, for highlighting
	cursor   int
	marked   map[string]bool // keyed by Candidate.Ref()

	width  int
	height int
	mode   mode

	previewTitle string
	resetPending []source.Candidate
	commitFiles  []source.Candidate
	status       string
	statusIsErr  bool

	outcome  *Outcome
	fatalErr error
}

type candidatesMsg struct {
	candidates []source.Candidate
	err        error
}

type previewMsg struct {
	title   string
	content string
	err     error
}

type actionDoneMsg struct {
	name string
	err  error
}

// New creates a picker over the given source and action set.
func New(ctx context.Context, env *source.Env, src source.Source, actions *source.Actions) Model {
	th := theme.NewTheme(env.Cfg.Theme)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = th.Prompt
	ti.PlaceholderStyle = th.Placeholder
	ti.Placeholder = "type to filter"
	ti.CharLimit = 256
	ti.Focus()

	ci := textinput.New()
	ci.Prompt = "commit: "
	ci.PromptStyle = th.Prompt
	ci.CharLimit = 256

	return Model{
		ctx:         ctx,
		env:         env,
		src:         src,
		actions:     actions,
		keys:        newKeyMap(env.Cfg.Keybindings),
		theme:       th,
		log:         logging.NewLogger("picker"),
		filterInput: ti,
		commitInput: ci,
		preview:     viewport.New(0, 0),
		marked:      make(map[string]bool),
	}
}

// Init triggers the initial candidate gathering.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.gatherCmd())
}

func (m Model) gatherCmd() tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.src.Gather(m.ctx)
		return candidatesMsg{candidates: candidates, err: err}
	}
}

func (m Model) previewCmd(action, title string, candidates []source.Candidate) tea.Cmd {
	return func() tea.Msg {
		res, err := m.actions.Invoke(m.ctx, m.env, action, source.ActionRequest{Candidates: candidates})
		if err != nil {
			return previewMsg{err: err}
		}
		return previewMsg{title: title, content: res.Output}
	}
}

func (m Model) invokeCmd(action string, req source.ActionRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := m.actions.Invoke(m.ctx, m.env, action, req)
		return actionDoneMsg{name: action, err: err}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = msg.Width - 4
		m.preview.Height = msg.Height - 4
		return m, nil

	case candidatesMsg:
		if msg.err != nil {
			// Nothing to pick from; surface the error to the caller
			m.fatalErr = msg.err
			return m, tea.Quit
		}
		m.all = msg.candidates
		m.pruneMarks()
		m.refilter()
		m.clampCursor()
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.previewTitle = msg.title
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		m.mode = modePreview
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.status = msg.name + ": done"
		m.statusIsErr = false
		m.marked = make(map[string]bool)
		return m, m.gatherCmd()

	case tea.KeyMsg:
		switch m.mode {
		case modePreview:
			return m.updatePreview(msg)
		case modeCommit:
			return m.updateCommit(msg)
		case modeReset:
			return m.updateReset(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) || msg.String() == "q" {
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) updateCommit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.commitInput.Blur()
		m.filterInput.Focus()
		return m, nil
	case tea.KeyEnter:
		message := strings.TrimSpace(m.commitInput.Value())
		if message == "" {
			m.status = "commit message required"
			m.statusIsErr = true
			return m, nil
		}
		m.mode = modeList
		m.commitInput.Blur()
		m.commitInput.SetValue("")
		m.filterInput.Focus()
		return m, m.invokeCmd("commit", source.ActionRequest{
			Candidates: m.commitFiles,
			Message:    message,
		})
	}
	var cmd tea.Cmd
	m.commitInput, cmd = m.commitInput.Update(msg)
	return m, cmd
}

func (m Model) updateReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.mode = modeList
		return m, m.invokeCmd("reset", source.ActionRequest{
			Candidates: m.resetPending,
			ResetMode:  source.ResetModeReset,
		})
	case "c":
		m.mode = modeList
		return m, m.invokeCmd("reset", source.ActionRequest{
			Candidates: m.resetPending,
			ResetMode:  source.ResetModeCheckout,
		})
	case "esc":
		m.mode = modeList
		m.resetPending = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.pageSize()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.pageSize()
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.GotoTop):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.GotoEnd):
		m.cursor = len(m.filtered) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSelect):
		if c, ok := m.current(); ok {
			ref := c.Ref()
			if m.marked[ref] {
				delete(m.marked, ref)
			} else {
				m.marked[ref] = true
			}
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		selection := m.selection()
		if len(selection) == 0 {
			return m, nil
		}
		m.outcome = &Outcome{Action: "open", Candidates: selection}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Preview):
		if c, ok := m.current(); ok {
			return m, m.previewCmd("preview", c.Display, []source.Candidate{c})
		}
		return m, nil

	case key.Matches(msg, m.keys.Diff):
		if c, ok := m.current(); ok {
			return m, m.previewCmd("delete", c.Display, []source.Candidate{c})
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		selection := m.selection()
		if len(selection) == 0 {
			return m, nil
		}
		return m, m.invokeCmd("add", source.ActionRequest{Candidates: selection})

	case key.Matches(msg, m.keys.Reset):
		selection := m.selection()
		if len(selection) == 0 {
			return m, nil
		}
		for _, c := range selection {
			if c.Staged && c.Worktree {
				// Ambiguous; ask before touching anything
				m.resetPending = selection
				m.mode = modeReset
				return m, nil
			}
		}
		return m, m.invokeCmd("reset", source.ActionRequest{Candidates: selection})

	case key.Matches(msg, m.keys.Commit):
		selection := m.selection()
		if len(selection) == 0 {
			return m, nil
		}
		m.commitFiles = selection
		m.mode = modeCommit
		m.filterInput.Blur()
		m.commitInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, m.gatherCmd()
	}

	prev := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != prev {
		m.refilter()
		m.cursor = 0
	}
	return m, cmd
}

// current returns the candidate under the cursor.
func (m Model) current() (source.Candidate, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return source.Candidate{}, false
	}
	return m.all[m.filtered[m.cursor]], true
}

// selection returns the marked candidates, or the one under the cursor when
// nothing is marked.
func (m Model) selection() []source.Candidate {
	if len(m.marked) == 0 {
		if c, ok := m.current(); ok {
			return []source.Candidate{c}
		}
		return nil
	}
	var selection []source.Candidate
	for _, c := range m.all {
		if m.marked[c.Ref()] {
			selection = append(selection, c)
		}
	}
	return selection
}

type displayList []source.Candidate

func (d displayList) Len() int            { return len(d) }
func (d displayList) String(i int) string { return d[i].Display }

// refilter re-ranks candidates against the filter input.
func (m *Model) refilter() {
	query := m.filterInput.Value()
	m.matches = nil

	if query == "" {
		m.filtered = make([]int, len(m.all))
		for i := range m.all {
			m.filtered[i] = i
		}
		return
	}

	ranked := fuzzy.FindFrom(query, displayList(m.all))
	m.filtered = make([]int, len(ranked))
	m.matches = make(map[int][]int, len(ranked))
	for i, match := range ranked {
		m.filtered[i] = match.Index
		m.matches[match.Index] = match.MatchedIndexes
	}
}

// pruneMarks drops marks whose candidates no longer exist after a refresh.
func (m *Model) pruneMarks() {
	live := make(map[string]bool, len(m.all))
	for _, c := range m.all {
		live[c.Ref()] = true
	}
	for ref := range m.marked {
		if !live[ref] {
			delete(m.marked, ref)
		}
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) pageSize() int {
	size := m.listHeight()
	if size < 1 {
		return 10
	}
	return size
}

// Outcome returns what the session resolved to; nil when the user quit.
func (m Model) Outcome() *Outcome {
	return m.outcome
}

func (m *Model) setError(err error) {
	m.log.WithError(err).Debug("action failed")
	m.status = err.Error()
	m.statusIsErr = true
}
