package orchestrator

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiomarinho/gemflow/internal/gem"
	"github.com/caiomarinho/gemflow/internal/journey"
)

func newTestOrchestrator(t *testing.T) (*Orchestrator, *journey.FileStore) {
	t.Helper()
	store := journey.NewFileStore(filepath.Join(t.TempDir(), "journey.json"), nil)
	o, err := New(context.Background(), gem.Catalog(), store, nil)
	require.NoError(t, err)
	return o, store
}

func TestStartJourney(t *testing.T) {
	ctx := context.Background()
	o, store := newTestOrchestrator(t)

	msg, gemID, err := o.StartJourney(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gem1_mestre_mapeamento", gemID)
	assert.Contains(t, msg, "JORNADA INICIADA")
	assert.NotNil(t, o.State().StartedAt)

	// The start timestamp survives a second start.
	first := *o.State().StartedAt
	_, _, err = o.StartJourney(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, *o.State().StartedAt)

	// State is persisted.
	st, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gem1_mestre_mapeamento", st.CurrentGem)
}

func TestCompleteGemAdvances(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)
	_, _, err := o.StartJourney(ctx)
	require.NoError(t, err)

	msg, nextID, err := o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-001")
	require.NoError(t, err)
	assert.Equal(t, "gem2_diagnosticador_foco", nextID)
	assert.Contains(t, msg, "GEM COMPLETADO")
	assert.True(t, o.State().IsCompleted("gem1_mestre_mapeamento"))
	assert.Equal(t, "MAPA-2026-03-001", o.State().GemOutputs["gem1_mestre_mapeamento"].Output)
}

func TestCompleteGemIdempotent(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	_, _, err := o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-001")
	require.NoError(t, err)
	_, _, err = o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-002")
	require.NoError(t, err)

	assert.Equal(t, []string{"gem1_mestre_mapeamento"}, o.State().CompletedGems)
	assert.Equal(t, "MAPA-2026-03-002", o.State().GemOutputs["gem1_mestre_mapeamento"].Output)
}

func TestCompleteLastGemEndsJourney(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	msg, nextID, err := o.CompleteGem(ctx, "gem7_construtor_sistemas", "KBF-2026-03-001")
	require.NoError(t, err)
	assert.Empty(t, nextID)
	assert.Contains(t, msg, "JORNADA COMPLETADA")
	_, active := o.CurrentGem()
	assert.False(t, active)
}

func TestCompleteGemUnknown(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	_, _, err := o.CompleteGem(context.Background(), "gem99", "X-001")
	assert.Error(t, err)
}

func TestHandleCommandVocabulary(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	tests := []struct {
		input    string
		contains string
	}{
		{"iniciar", "JORNADA INICIADA"},
		{"START", "JORNADA INICIADA"},
		{"  status  ", "SEU PROGRESSO"},
		{"progresso", "SEU PROGRESSO"},
		{"listar", "TODOS OS 7 GEMs"},
		{"gems", "TODOS OS 7 GEMs"},
		{"ajuda", "SAC LEARNING GEMS"},
		{"?", "SAC LEARNING GEMS"},
	}
	for _, tt := range tests {
		res, ok, err := o.HandleCommand(ctx, tt.input)
		require.NoError(t, err)
		require.True(t, ok, "input %q should be a command", tt.input)
		assert.Contains(t, res.Response, tt.contains, "input %q", tt.input)
	}

	_, ok, err := o.HandleCommand(ctx, "me conta sobre meus papéis")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandleCommandContinue(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	res, ok, err := o.HandleCommand(ctx, "continuar")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, res.GemID)
	assert.Contains(t, res.Response, "não iniciou")

	_, _, err = o.StartJourney(ctx)
	require.NoError(t, err)

	res, ok, err = o.HandleCommand(ctx, "continuar")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "gem1_mestre_mapeamento", res.GemID)
	assert.Contains(t, res.Response, "Continuando com")
}

func TestStatusBeforeStart(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	assert.Contains(t, o.StatusMessage(), "ainda não iniciou")
}

func TestResetJourneyBacksUp(t *testing.T) {
	ctx := context.Background()
	store := journey.NewFileStore(filepath.Join(t.TempDir(), "journey.json"), nil)
	o, err := New(ctx, gem.Catalog(), store, nil)
	require.NoError(t, err)

	_, _, err = o.StartJourney(ctx)
	require.NoError(t, err)
	_, _, err = o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-001")
	require.NoError(t, err)

	msg, err := o.ResetJourney(ctx)
	require.NoError(t, err)
	assert.Contains(t, msg, "JORNADA REINICIADA")
	assert.Nil(t, o.State().StartedAt)
	assert.Empty(t, o.State().CompletedGems)

	// The previous journey survives in the backup.
	backup := journey.NewFileStore(store.Path()+".backup", nil)
	old, err := backup.Load(ctx)
	require.NoError(t, err)
	assert.True(t, old.IsCompleted("gem1_mestre_mapeamento"))
}

func TestSharedContext(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	assert.Empty(t, o.SharedContext())

	require.NoError(t, o.SaveConversation(ctx, "gem1_mestre_mapeamento", []journey.Message{
		{Role: journey.RoleSystem, Content: "instructions"},
		{Role: journey.RoleUser, Content: "tenho três papéis: pai, engenheiro e corredor"},
		{Role: journey.RoleAssistant, Content: "Seu papel prioritário é engenheiro. MAPA-2026-03-001"},
		{Role: journey.RoleUser, Content: strings.Repeat("x", 500)},
	}))
	_, _, err := o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-001")
	require.NoError(t, err)

	sc := o.SharedContext()
	assert.Contains(t, sc, "CONTEXTO DA SUA JORNADA")
	assert.Contains(t, sc, "Mestre do Mapeamento")
	assert.Contains(t, sc, "MAPA-2026-03-001")
	assert.Contains(t, sc, "pai, engenheiro e corredor")
	assert.Contains(t, sc, "IMPORTANTE")
	// System turns never leak into the carry-forward block.
	assert.NotContains(t, sc, "instructions")
	// Long turns are truncated.
	assert.Contains(t, sc, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, sc, strings.Repeat("x", 201))
}

func TestSharedContextGrowsPerGem(t *testing.T) {
	ctx := context.Background()
	o, _ := newTestOrchestrator(t)

	_, _, err := o.CompleteGem(ctx, "gem1_mestre_mapeamento", "MAPA-2026-03-001")
	require.NoError(t, err)
	one := o.SharedContext()

	_, _, err = o.CompleteGem(ctx, "gem2_diagnosticador_foco", "FOCO-2026-03-001")
	require.NoError(t, err)
	two := o.SharedContext()

	assert.Greater(t, len(two), len(one))
	assert.Contains(t, two, "FOCO-2026-03-001")
}
