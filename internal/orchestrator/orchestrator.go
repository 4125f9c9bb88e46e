// Package orchestrator drives the traveler through the gem sequence:
// it owns the journey state, answers journey commands, and builds the
// shared context handed from completed gems to the next one.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/caiomarinho/gemflow/internal/gem"
	"github.com/caiomarinho/gemflow/internal/journey"
)

// Orchestrator mediates between the traveler and the gem sequence. It
// never talks to the language model itself; gem conversations belong to
// the interaction service.
type Orchestrator struct {
	gems  *gem.Sequence
	store journey.Store
	state *journey.State
	log   *zap.Logger
}

// New loads persisted journey state and returns an orchestrator over
// the given sequence.
func New(ctx context.Context, gems *gem.Sequence, store journey.Store, log *zap.Logger) (*Orchestrator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: loading journey: %w", err)
	}
	return &Orchestrator{gems: gems, store: store, state: state, log: log}, nil
}

// Gems returns the sequence being orchestrated.
func (o *Orchestrator) Gems() *gem.Sequence {
	return o.gems
}

// State exposes the journey document for read-only rendering.
func (o *Orchestrator) State() *journey.State {
	return o.state
}

// CurrentGem returns the active gem, if any.
func (o *Orchestrator) CurrentGem() (gem.Definition, bool) {
	if o.state.CurrentGem == "" {
		return gem.Definition{}, false
	}
	return o.gems.ByID(o.state.CurrentGem)
}

// StartJourney activates the first gem. The start timestamp is set only
// once, so restarting an in-flight journey keeps the original date.
func (o *Orchestrator) StartJourney(ctx context.Context) (string, string, error) {
	if o.state.StartedAt == nil {
		now := time.Now().UTC()
		o.state.StartedAt = &now
	}
	first := o.gems.First()
	o.state.CurrentGem = first.ID
	if err := o.store.Save(ctx, o.state); err != nil {
		return "", "", err
	}
	o.log.Info("journey started", zap.String("gem", first.ID))
	return startMessage(first), first.ID, nil
}

// ActivateGem makes gemID the active gem.
func (o *Orchestrator) ActivateGem(ctx context.Context, gemID string) (string, error) {
	def, ok := o.gems.ByID(gemID)
	if !ok {
		return "", fmt.Errorf("orchestrator: unknown gem %s", gemID)
	}
	o.state.CurrentGem = gemID
	if err := o.store.Save(ctx, o.state); err != nil {
		return "", err
	}
	return fmt.Sprintf("Ativado: %s (%s)", def.Name, def.Emoji), nil
}

// CompleteGem records gemID as done with its structured output and
// advances to the positional successor. The returned next id is empty
// when the journey is finished. Completing an already-completed gem
// does not duplicate it in the completed list.
func (o *Orchestrator) CompleteGem(ctx context.Context, gemID, output string) (string, string, error) {
	completed, ok := o.gems.ByID(gemID)
	if !ok {
		return "", "", fmt.Errorf("orchestrator: unknown gem %s", gemID)
	}
	o.state.MarkCompleted(gemID, output, time.Now().UTC())

	next, hasNext := o.gems.Next(gemID)
	if !hasNext {
		o.state.CurrentGem = ""
		if err := o.store.Save(ctx, o.state); err != nil {
			return "", "", err
		}
		o.log.Info("journey completed", zap.String("gem", gemID))
		return journeyCompleteMessage(), "", nil
	}

	o.state.CurrentGem = next.ID
	if err := o.store.Save(ctx, o.state); err != nil {
		return "", "", err
	}
	o.log.Info("gem completed",
		zap.String("gem", gemID),
		zap.String("next", next.ID))
	return gemCompleteMessage(completed, next), next.ID, nil
}

// GemInstructions returns the system prompt for gemID.
func (o *Orchestrator) GemInstructions(gemID string) string {
	def, ok := o.gems.ByID(gemID)
	if !ok {
		return ""
	}
	return def.Instructions
}

// SaveConversation persists the full transcript of a gem session.
func (o *Orchestrator) SaveConversation(ctx context.Context, gemID string, msgs []journey.Message) error {
	o.state.SetConversation(gemID, msgs)
	return o.store.Save(ctx, o.state)
}

// ResetJourney backs up the current state and starts over. The backup
// is best effort: a failed copy is logged but never blocks the reset.
func (o *Orchestrator) ResetJourney(ctx context.Context) (string, error) {
	if err := o.store.Backup(ctx); err != nil {
		o.log.Warn("journey backup failed", zap.Error(err))
	}
	o.state = journey.NewState()
	if err := o.store.Save(ctx, o.state); err != nil {
		return "", err
	}
	o.log.Info("journey reset")
	return resetMessage(), nil
}

// CommandResult is the orchestrator's answer to a journey command.
// GemID is set when the command activates or resumes a gem.
type CommandResult struct {
	Response string
	GemID    string
}

// HandleCommand interprets user input as a journey command. ok is false
// when the input is not a command and should go to the active gem
// instead. Commands are accepted in Portuguese and English.
func (o *Orchestrator) HandleCommand(ctx context.Context, input string) (CommandResult, bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "iniciar", "start", "começar":
		msg, gemID, err := o.StartJourney(ctx)
		if err != nil {
			return CommandResult{}, true, err
		}
		return CommandResult{Response: msg, GemID: gemID}, true, nil

	case "status", "progresso", "progress":
		return CommandResult{Response: o.StatusMessage()}, true, nil

	case "listar", "list", "gems":
		return CommandResult{Response: o.ListGems()}, true, nil

	case "continuar", "continue", "próximo", "next":
		def, active := o.CurrentGem()
		if !active {
			return CommandResult{Response: "Você ainda não iniciou ou já completou todos os GEMs."}, true, nil
		}
		return CommandResult{
			Response: fmt.Sprintf("Continuando com %s %s...", def.Emoji, def.Name),
			GemID:    def.ID,
		}, true, nil

	case "reiniciar", "reset":
		msg, err := o.ResetJourney(ctx)
		if err != nil {
			return CommandResult{}, true, err
		}
		return CommandResult{Response: msg}, true, nil

	case "ajuda", "help", "?":
		return CommandResult{Response: o.WelcomeMessage()}, true, nil
	}

	return CommandResult{}, false, nil
}
