package picker

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattsolo1/grove-pick/source"
)

// Run executes a picker session and returns what it resolved to. A nil
// outcome with a nil error means the user quit without selecting.
func Run(ctx context.Context, env *source.Env, src source.Source, actions *source.Actions) (*Outcome, error) {
	p := tea.NewProgram(New(ctx, env, src, actions), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(Model)
	if m.fatalErr != nil {
		return nil, m.fatalErr
	}
	return m.outcome, nil
}
