// internal/tui/app.go
//
// This is the main TUI for gemflow. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/caiomarinho/gemflow/internal/service"
)

const inputHeight = 3

// streamEventMsg carries one service event into the update loop. ok is
// false when the stream has ended and the channel closed.
type streamEventMsg struct {
	event service.Event
	ok    bool
}

// App is the main application model. In bubbletea, this holds ALL your
// state.
type App struct {
	svc *service.Service
	log *zap.Logger

	viewport viewport.Model
	input    textarea.Model

	// transcript holds rendered chat turns; partial holds the reply
	// being streamed right now.
	transcript []string
	partial    string

	// progress is the last journey snapshot, refreshed when a stream
	// ends. View renders this copy, never live journey state.
	progress service.Progress

	streaming bool
	events    <-chan service.Event

	statusMsg string
	width     int
	height    int
	ready     bool
}

// NewApp creates the chat screen over the interaction service.
func NewApp(svc *service.Service, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}

	input := textarea.New()
	input.Placeholder = "Digite sua mensagem (ou 'ajuda')..."
	input.ShowLineNumbers = false
	input.SetHeight(inputHeight)
	input.Focus()

	vp := viewport.New(0, 0)

	app := &App{
		svc:       svc,
		log:       log,
		viewport:  vp,
		input:     input,
		statusMsg: "Enter envia · Ctrl+C sai",
	}
	app.transcript = append(app.transcript, svc.WelcomeMessage())
	app.progress = svc.Progress()
	return app
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		a.ready = true
		a.refreshViewport(true)
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return a, tea.Quit
		case tea.KeyEnter:
			return a.submit()
		}

	case streamEventMsg:
		return a.handleStreamEvent(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// submit sends the typed message to the service and starts relaying its
// stream into the update loop.
func (a *App) submit() (tea.Model, tea.Cmd) {
	if a.streaming {
		return a, nil
	}
	text := strings.TrimSpace(a.input.Value())
	if text == "" {
		return a, nil
	}
	a.input.Reset()

	a.transcript = append(a.transcript, userStyle.Render("Você: ")+text)
	a.partial = ""
	a.streaming = true
	a.statusMsg = "Pensando..."
	a.events = a.svc.ProcessStream(context.Background(), text)
	a.refreshViewport(true)
	return a, waitForEvent(a.events)
}

// waitForEvent reads the next stream event. The command re-issues
// itself from handleStreamEvent until the channel closes.
func waitForEvent(events <-chan service.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return streamEventMsg{event: ev, ok: ok}
	}
}

func (a *App) handleStreamEvent(msg streamEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		a.streaming = false
		a.partial = ""
		a.statusMsg = "Enter envia · Ctrl+C sai"
		a.progress = a.svc.Progress()
		a.refreshViewport(false)
		return a, nil
	}

	switch msg.event.Type {
	case service.EventChunk:
		a.partial = msg.event.Accumulated
	case service.EventDone:
		a.transcript = append(a.transcript, speakerLine(msg.event)+msg.event.Answer)
		a.partial = ""
	case service.EventError:
		a.log.Error("stream event failed", zap.Error(msg.event.Err))
		// Keep whatever arrived before the failure.
		if a.partial != "" {
			a.transcript = append(a.transcript, gemStyle.Render("💬 ")+a.partial)
		}
		a.transcript = append(a.transcript, errorStyle.Render(fmt.Sprintf("⚠ %v", msg.event.Err)))
		a.partial = ""
	}
	a.refreshViewport(true)
	return a, waitForEvent(a.events)
}

// speakerLine labels a finished reply with who produced it.
func speakerLine(ev service.Event) string {
	if ev.IsOrchestrator || ev.GemName == "" {
		return gemStyle.Render("🧭 Orquestrador:\n")
	}
	return gemStyle.Render(fmt.Sprintf("💎 %s:\n", ev.GemName))
}

func (a *App) resize() {
	rightWidth := progressWidth(a.width)
	chatWidth := a.width - rightWidth - 6
	if chatWidth < 20 {
		chatWidth = a.width - 4
	}
	a.viewport.Width = max(20, chatWidth)
	a.viewport.Height = max(5, a.height-inputHeight-7)
	a.input.SetWidth(max(20, chatWidth))
}

func progressWidth(width int) int {
	w := width / 3
	if w < 30 {
		w = 30
	}
	if w > 44 {
		w = 44
	}
	if width-w < 46 {
		return 0
	}
	return w
}

func (a *App) refreshViewport(gotoBottom bool) {
	sections := append([]string(nil), a.transcript...)
	if a.partial != "" {
		sections = append(sections, gemStyle.Render("💬 ")+a.partial)
	}
	a.viewport.SetContent(strings.Join(sections, "\n\n"))
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C792EA")).
			MarginBottom(1)
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	gemStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C3E88D"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// View renders the current state to a string.
func (a *App) View() string {
	if !a.ready {
		return "Carregando..."
	}

	header := headerStyle.Render("💎 GEMFLOW · SAC Learning GEMS")

	chat := lipgloss.JoinVertical(lipgloss.Left,
		a.viewport.View(),
		"",
		a.input.View(),
	)
	chatBox := boxStyle.Width(a.viewport.Width + 2).Render(chat)

	var body string
	if rightWidth := progressWidth(a.width); rightWidth > 0 {
		progressBox := boxStyle.Width(rightWidth).Render(a.renderProgress(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, chatBox, progressBox)
	} else {
		body = chatBox
	}

	footer := footerStyle.Render(a.statusMsg)
	return strings.Join([]string{header, body, footer}, "\n")
}

// renderProgress paints the journey roster from the last snapshot:
// done, active and waiting gems.
func (a *App) renderProgress(width int) string {
	lines := []string{gemStyle.Render("JORNADA")}
	for i, def := range a.svc.Orchestrator().Gems().All() {
		marker := "⭕"
		switch {
		case a.progress.IsCompleted(def.ID):
			marker = "✅"
		case a.progress.CurrentGem == def.ID:
			marker = "🔄"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s %s", marker, i+1, def.Emoji, def.Name))
	}

	lines = append(lines, "", fmt.Sprintf("Progresso: %d/%d", a.progress.Done(), a.progress.Total))
	return lipgloss.NewStyle().Width(max(20, width)).Render(strings.Join(lines, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
