// Package tui provides the interactive chat session for a space.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tutorwise/tutorwise-cli/internal/adapters/driving/tui/styles"
	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
	"github.com/tutorwise/tutorwise-cli/internal/core/ports/driving"
)

// answerReceived carries the outcome of an async send.
type answerReceived struct {
	answer domain.ChatMessage
	err    error
}

// App is the bubbletea model for an interactive chat session.
type App struct {
	styles *styles.Styles
	chat   driving.ChatService
	ctx    context.Context

	spaceID    string
	spaceTitle string

	viewport viewport.Model
	input    textinput.Model

	transcript []domain.ChatMessage
	width      int
	height     int
	ready      bool
	waiting    bool
	err        error

	// fatalErr ends the session, set when the backend rejects the
	// session mid-chat.
	fatalErr error
}

// NewApp creates the chat session model. The existing transcript for the
// space is loaded so the conversation continues where it left off.
func NewApp(chat driving.ChatService, spaceID, spaceTitle string, s *styles.Styles) (*App, error) {
	if chat == nil {
		return nil, fmt.Errorf("chat service is required")
	}
	if spaceID == "" {
		return nil, fmt.Errorf("space ID is required")
	}
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Ask a question..."
	input.Focus()

	return &App{
		styles:     s,
		chat:       chat,
		ctx:        context.Background(),
		spaceID:    spaceID,
		spaceTitle: spaceTitle,
		input:      input,
		transcript: chat.History(spaceID),
		width:      80,
		height:     24,
	}, nil
}

// WithContext sets the context used for backend calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case answerReceived:
		a.waiting = false
		if msg.err != nil {
			if domain.IsUnauthorized(msg.err) {
				// Session torn down server-side; nothing left to chat with.
				a.fatalErr = msg.err
				return a, tea.Quit
			}
			a.err = msg.err
		} else {
			a.err = nil
			a.transcript = append(a.transcript, msg.answer)
		}
		a.refreshViewport()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(a.input.Value())
		if text == "" || a.waiting {
			return a, nil
		}
		a.input.SetValue("")
		a.waiting = true
		a.err = nil
		a.transcript = append(a.transcript, domain.ChatMessage{
			Role:    domain.RoleUser,
			Content: text,
		})
		a.refreshViewport()
		return a, a.send(text)

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// send runs the chat turn off the UI loop.
func (a *App) send(text string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.chat.Send(a.ctx, a.spaceID, text)
		return answerReceived{answer: answer, err: err}
	}
}

// setDimensions lays the components out for a new terminal size.
func (a *App) setDimensions(width, height int) {
	a.width = width
	a.height = height

	// Reserve rows for the header, input box, and help line.
	viewportHeight := height - 7
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !a.ready {
		a.viewport = viewport.New(width, viewportHeight)
		a.ready = true
	} else {
		a.viewport.Width = width
		a.viewport.Height = viewportHeight
	}
	a.input.Width = width - 6

	a.refreshViewport()
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (a *App) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(a.renderTranscript())
	a.viewport.GotoBottom()
}

// renderTranscript renders all turns, citations under each answer.
func (a *App) renderTranscript() string {
	if len(a.transcript) == 0 {
		return a.styles.Muted.Render("Ask a question about the documents in this space.")
	}

	var b strings.Builder
	for i := range a.transcript {
		m := a.transcript[i]
		switch m.Role {
		case domain.RoleUser:
			b.WriteString(a.styles.You.Render("You"))
		case domain.RoleAssistant:
			b.WriteString(a.styles.Tutor.Render("Tutor"))
		default:
			b.WriteString(a.styles.Muted.Render(m.Role))
		}
		b.WriteString("\n")
		b.WriteString(a.styles.Normal.Render(m.Content))
		b.WriteString("\n")
		for j := range m.Context {
			c := m.Context[j]
			if c.Page > 0 {
				b.WriteString(a.styles.Citation.Render(
					fmt.Sprintf("  [%d] %s, page %d", j+1, c.Source, c.Page)))
			} else {
				b.WriteString(a.styles.Citation.Render(
					fmt.Sprintf("  [%d] %s", j+1, c.Source)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if a.waiting {
		b.WriteString(a.styles.Muted.Render("Thinking..."))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the chat session.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	title := a.spaceTitle
	if title == "" {
		title = a.spaceID
	}
	header := a.styles.Title.Render("Tutorwise") +
		a.styles.Muted.Render(" · "+title)

	sections := []string{
		header,
		"",
		a.viewport.View(),
	}

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()))
	}

	sections = append(sections,
		a.styles.InputField.Width(a.width-2).Render(a.input.View()),
		a.styles.Help.Render("enter send · ↑/↓ scroll · esc quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Err returns the error that ended the session, if any.
func (a *App) Err() error {
	return a.fatalErr
}

// Transcript returns the turns currently displayed.
func (a *App) Transcript() []domain.ChatMessage {
	return a.transcript
}

// Waiting reports whether a send is in flight.
func (a *App) Waiting() bool {
	return a.waiting
}
