package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danrus1100/walcord/pkg/palette"
)

// Run launches the interactive palette viewer. Blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, reg *palette.Registry) error {
	program := tea.NewProgram(newModel(reg), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	reg      *palette.Registry
	viewport viewport.Model
	ready    bool
}

func newModel(reg *palette.Registry) model {
	vp := viewport.New(0, 0)
	return model{reg: reg, viewport: vp}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // leave room for the footer
		m.viewport.SetContent(Render(m.reg, DefaultStyles()))
		m.ready = true
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

func (m model) View() string {
	if !m.ready {
		return "loading palette..."
	}
	return m.viewport.View() + "\n" + footerStyle.Render("q to quit, arrows to scroll")
}
