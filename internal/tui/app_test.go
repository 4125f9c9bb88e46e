package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiomarinho/gemflow/internal/gem"
	"github.com/caiomarinho/gemflow/internal/journey"
	"github.com/caiomarinho/gemflow/internal/llm"
	"github.com/caiomarinho/gemflow/internal/orchestrator"
	"github.com/caiomarinho/gemflow/internal/service"
)

type cannedModel struct {
	reply string
}

func (m cannedModel) Invoke(ctx context.Context, msgs []llm.Message) (string, error) {
	return m.reply, nil
}

// brokenStreamer fails mid-stream after emitting its fragments.
type brokenStreamer struct {
	cannedModel
	fragments []string
	err       error
}

func (m brokenStreamer) Stream(ctx context.Context, msgs []llm.Message) (<-chan string, <-chan error) {
	contentCh := make(chan string, len(m.fragments))
	errCh := make(chan error, 1)
	go func() {
		defer close(contentCh)
		defer close(errCh)
		for _, fragment := range m.fragments {
			contentCh <- fragment
		}
		errCh <- m.err
	}()
	return contentCh, errCh
}

func newTestApp(t *testing.T, reply string) (*App, *orchestrator.Orchestrator) {
	t.Helper()
	return newTestAppModel(t, cannedModel{reply: reply})
}

func newTestAppModel(t *testing.T, model llm.Invoker) (*App, *orchestrator.Orchestrator) {
	t.Helper()
	ctx := context.Background()
	store := journey.NewFileStore(filepath.Join(t.TempDir(), "journey.json"), nil)
	orc, err := orchestrator.New(ctx, gem.Catalog(), store, nil)
	require.NoError(t, err)
	svc := service.New(orc, model, nil)
	return NewApp(svc, nil), orc
}

func drainStream(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	for app.streaming {
		require.NotNil(t, cmd)
		msg := cmd()
		var model tea.Model
		model, cmd = app.Update(msg)
		var ok bool
		app, ok = model.(*App)
		require.True(t, ok)
	}
}

func TestAppOpensWithWelcome(t *testing.T) {
	app, _ := newTestApp(t, "oi")
	require.NotEmpty(t, app.transcript)
	assert.Contains(t, app.transcript[0], "SAC LEARNING GEMS")
}

func TestSubmitCommand(t *testing.T) {
	app, orc := newTestApp(t, "oi")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	app.input.SetValue("iniciar")
	model, cmd := app.submit()
	app = model.(*App)
	require.True(t, app.streaming)
	drainStream(t, app, cmd)

	joined := strings.Join(app.transcript, "\n")
	assert.Contains(t, joined, "Você: ")
	assert.Contains(t, joined, "JORNADA INICIADA")
	assert.Equal(t, "gem1_mestre_mapeamento", orc.State().CurrentGem)
}

func TestSubmitGemTurn(t *testing.T) {
	app, orc := newTestApp(t, "Me conte sobre seus papéis.")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, _, err := orc.StartJourney(context.Background())
	require.NoError(t, err)

	app.input.SetValue("olá")
	model, cmd := app.submit()
	app = model.(*App)
	drainStream(t, app, cmd)

	joined := strings.Join(app.transcript, "\n")
	assert.Contains(t, joined, "Mestre do Mapeamento")
	assert.Contains(t, joined, "Me conte sobre seus papéis.")
}

func TestSubmitIgnoredWhileStreaming(t *testing.T) {
	app, _ := newTestApp(t, "oi")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app.streaming = true

	app.input.SetValue("mensagem")
	_, cmd := app.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, "mensagem", app.input.Value())
}

func TestRenderProgress(t *testing.T) {
	app, _ := newTestApp(t, "Seu mapa está pronto.\n📋 ID DO MAPEAMENTO: MAPA-2026-08-001")
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	app.input.SetValue("iniciar")
	model, cmd := app.submit()
	app = model.(*App)
	drainStream(t, app, cmd)

	app.input.SetValue("quero meu mapa")
	model, cmd = app.submit()
	app = model.(*App)
	drainStream(t, app, cmd)

	panel := app.renderProgress(40)
	assert.Contains(t, panel, "✅ 1. 🗺️ Mestre do Mapeamento")
	assert.Contains(t, panel, "🔄 2. 🔍 Diagnosticador F.O.C.O.")
	assert.Contains(t, panel, "⭕ 3.")
	assert.Contains(t, panel, "Progresso: 1/7")
}

func TestStreamErrorKeepsPartialReply(t *testing.T) {
	app, orc := newTestAppModel(t, brokenStreamer{
		fragments: []string{"Vamos mapear ", "seus papéis"},
		err:       errors.New("conexão perdida"),
	})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, _, err := orc.StartJourney(context.Background())
	require.NoError(t, err)

	app.input.SetValue("olá")
	model, cmd := app.submit()
	app = model.(*App)
	drainStream(t, app, cmd)

	joined := strings.Join(app.transcript, "\n")
	assert.Contains(t, joined, "Vamos mapear seus papéis")
	assert.Contains(t, joined, "erro durante o streaming")
	assert.Contains(t, joined, "conexão perdida")
	assert.Empty(t, app.partial)
}
