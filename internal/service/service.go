// Package service routes traveler messages: journey commands go to the
// orchestrator, everything else becomes a turn in the active gem's
// conversation with the language model.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caiomarinho/gemflow/internal/gem"
	"github.com/caiomarinho/gemflow/internal/journey"
	"github.com/caiomarinho/gemflow/internal/llm"
	"github.com/caiomarinho/gemflow/internal/orchestrator"
)

// Response is the system's answer to one traveler message.
type Response struct {
	Answer         string
	GemID          string
	GemName        string
	IsOrchestrator bool
	Err            error
}

// EventType discriminates streaming events.
type EventType string

const (
	EventChunk EventType = "chunk"
	EventDone  EventType = "done"
	EventError EventType = "error"
)

// Event is one streaming update. Chunk events carry the new fragment
// and the text accumulated so far; the done event carries the final
// answer including any journey transition appended to it.
type Event struct {
	Type           EventType
	Content        string
	Accumulated    string
	Message        string
	Answer         string
	GemID          string
	GemName        string
	IsOrchestrator bool
	Err            error
}

// forceCompletionCommands close the active gem on demand, accepted in
// Portuguese and English.
var forceCompletionCommands = map[string]bool{
	"/concluir":  true,
	"/finalizar": true,
	"/finalize":  true,
	"/finish":    true,
	"/complete":  true,
	"/done":      true,
}

// Service owns the in-flight gem conversations. Histories live in
// memory during a session and are persisted through the orchestrator
// when a gem completes.
type Service struct {
	orc *orchestrator.Orchestrator
	llm llm.Invoker
	log *zap.Logger

	mu        sync.Mutex
	histories map[string][]journey.Message
}

// New returns a service over the orchestrator and model. log may be
// nil.
func New(orc *orchestrator.Orchestrator, model llm.Invoker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		orc:       orc,
		llm:       model,
		log:       log,
		histories: map[string][]journey.Message{},
	}
}

// Orchestrator exposes the underlying orchestrator for rendering.
func (s *Service) Orchestrator() *orchestrator.Orchestrator {
	return s.orc
}

// WelcomeMessage returns the system introduction.
func (s *Service) WelcomeMessage() string {
	return s.orc.WelcomeMessage()
}

// Status returns the journey progress report.
func (s *Service) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orc.StatusMessage()
}

// Progress is a point-in-time view of the journey, safe to render while
// a turn is in flight.
type Progress struct {
	CurrentGem string
	Completed  []string
	Total      int
}

// IsCompleted reports whether the gem was closed at snapshot time.
func (p Progress) IsCompleted(gemID string) bool {
	for _, id := range p.Completed {
		if id == gemID {
			return true
		}
	}
	return false
}

// Done returns how many gems were closed at snapshot time.
func (p Progress) Done() int {
	return len(p.Completed)
}

// Progress snapshots the journey under the service lock. Callers render
// the snapshot instead of reading journey state directly, since a
// streaming turn may be rewriting that state on its own goroutine.
func (s *Service) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.orc.State()
	return Progress{
		CurrentGem: state.CurrentGem,
		Completed:  append([]string(nil), state.CompletedGems...),
		Total:      s.orc.Gems().Len(),
	}
}

// ActivateGem switches the active gem, dropping any other gem's
// in-memory history.
func (s *Service) ActivateGem(ctx context.Context, gemID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if def, active := s.orc.CurrentGem(); active && def.ID != gemID {
		delete(s.histories, def.ID)
	}
	return s.orc.ActivateGem(ctx, gemID)
}

// Reset restarts the journey and clears all session histories.
func (s *Service) Reset(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.histories = map[string][]journey.Message{}
	return s.orc.ResetJourney(ctx)
}

// Process answers one traveler message synchronously.
func (s *Service) Process(ctx context.Context, userMessage string) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	interactionID := uuid.NewString()
	s.log.Debug("processing message", zap.String("interaction", interactionID))

	res, isCommand, err := s.orc.HandleCommand(ctx, userMessage)
	if err != nil {
		s.log.Error("command failed", zap.String("interaction", interactionID), zap.Error(err))
		return Response{Answer: "Desculpe, ocorreu um erro. Tente novamente.", IsOrchestrator: true, Err: err}
	}
	if isCommand {
		return Response{Answer: res.Response, GemID: res.GemID, IsOrchestrator: true}
	}

	def, active := s.orc.CurrentGem()
	if !active {
		return Response{Answer: s.orc.WelcomeMessage(), IsOrchestrator: true}
	}

	return s.converse(ctx, def, userMessage, interactionID)
}

// converse runs one turn of the active gem's conversation. Caller holds
// the lock.
func (s *Service) converse(ctx context.Context, def gem.Definition, userMessage, interactionID string) Response {
	force := isForceCompletion(userMessage)
	s.ensureHistory(def)
	s.appendUserMessage(def, userMessage, force)

	answer, err := s.invoke(ctx, def.ID)
	if err != nil {
		s.log.Error("gem turn failed",
			zap.String("interaction", interactionID),
			zap.String("gem", def.ID),
			zap.Error(err))
		return Response{
			Answer:  fmt.Sprintf("Erro ao processar com %s: %v", def.Name, err),
			GemID:   def.ID,
			GemName: def.Name,
			Err:     err,
		}
	}
	s.appendAssistant(def.ID, answer)

	final, completed, err := s.finalize(ctx, def, answer, force)
	if err != nil {
		return Response{Answer: fmt.Sprintf("Erro ao processar com %s: %v", def.Name, err), GemID: def.ID, GemName: def.Name, Err: err}
	}
	if completed {
		s.log.Info("gem closed",
			zap.String("interaction", interactionID),
			zap.String("gem", def.ID))
	}
	return Response{Answer: final, GemID: def.ID, GemName: def.Name}
}

// ProcessStream answers one traveler message as a stream of events.
// The channel is closed after the done or error event.
func (s *Service) ProcessStream(ctx context.Context, userMessage string) <-chan Event {
	events := make(chan Event, 16)
	go func() {
		defer close(events)
		s.mu.Lock()
		defer s.mu.Unlock()

		interactionID := uuid.NewString()

		res, isCommand, err := s.orc.HandleCommand(ctx, userMessage)
		if err != nil {
			events <- Event{Type: EventError, Err: err}
			return
		}
		if isCommand {
			events <- Event{Type: EventChunk, Content: res.Response, Accumulated: res.Response, GemID: res.GemID, IsOrchestrator: true}
			events <- Event{Type: EventDone, Message: userMessage, Answer: res.Response, GemID: res.GemID, IsOrchestrator: true}
			return
		}

		def, active := s.orc.CurrentGem()
		if !active {
			welcome := s.orc.WelcomeMessage()
			events <- Event{Type: EventChunk, Content: welcome, Accumulated: welcome, IsOrchestrator: true}
			events <- Event{Type: EventDone, Message: userMessage, Answer: welcome, IsOrchestrator: true}
			return
		}

		s.streamConverse(ctx, def, userMessage, interactionID, events)
	}()
	return events
}

// streamConverse runs one gem turn, relaying model fragments as chunk
// events. Caller holds the lock.
func (s *Service) streamConverse(ctx context.Context, def gem.Definition, userMessage, interactionID string, events chan<- Event) {
	force := isForceCompletion(userMessage)
	s.ensureHistory(def)
	s.appendUserMessage(def, userMessage, force)

	streamer, ok := s.llm.(llm.Streamer)
	if !ok {
		// Model cannot stream: answer in a single chunk.
		answer, err := s.invoke(ctx, def.ID)
		if err != nil {
			events <- Event{Type: EventError, Err: err}
			return
		}
		s.appendAssistant(def.ID, answer)
		final, _, err := s.finalize(ctx, def, answer, force)
		if err != nil {
			events <- Event{Type: EventError, Err: err}
			return
		}
		events <- Event{Type: EventChunk, Content: final, Accumulated: final, GemID: def.ID, GemName: def.Name}
		events <- Event{Type: EventDone, Message: userMessage, Answer: final, GemID: def.ID, GemName: def.Name}
		return
	}

	contentCh, errCh := streamer.Stream(ctx, toModelMessages(s.histories[def.ID]))
	var accumulated strings.Builder
	for fragment := range contentCh {
		accumulated.WriteString(fragment)
		events <- Event{
			Type:        EventChunk,
			Content:     fragment,
			Accumulated: accumulated.String(),
			GemID:       def.ID,
			GemName:     def.Name,
		}
	}
	if err := <-errCh; err != nil {
		// Surface whatever arrived before the failure, then the error.
		if accumulated.Len() > 0 {
			events <- Event{
				Type:        EventChunk,
				Content:     accumulated.String(),
				Accumulated: accumulated.String(),
				GemID:       def.ID,
				GemName:     def.Name,
			}
		}
		s.log.Error("stream failed",
			zap.String("interaction", interactionID),
			zap.String("gem", def.ID),
			zap.Error(err))
		events <- Event{Type: EventError, Err: fmt.Errorf("erro durante o streaming: %w", err)}
		return
	}

	answer := strings.TrimSpace(accumulated.String())
	s.appendAssistant(def.ID, answer)

	final, _, err := s.finalize(ctx, def, answer, force)
	if err != nil {
		events <- Event{Type: EventError, Err: err}
		return
	}
	events <- Event{Type: EventDone, Message: userMessage, Answer: final, GemID: def.ID, GemName: def.Name}
}

// ensureHistory seeds or rehydrates the gem's conversation. A saved
// transcript from a previous session takes precedence; otherwise the
// history opens with the gem's system message carrying the journey's
// shared context.
func (s *Service) ensureHistory(def gem.Definition) {
	if _, ok := s.histories[def.ID]; ok {
		return
	}
	if saved := s.orc.State().Conversation(def.ID); len(saved) > 0 {
		s.histories[def.ID] = append([]journey.Message(nil), saved...)
		return
	}
	s.histories[def.ID] = []journey.Message{{
		Role:    journey.RoleSystem,
		Content: systemMessage(def, s.orc.SharedContext()),
	}}
}

func (s *Service) appendUserMessage(def gem.Definition, userMessage string, force bool) {
	s.histories[def.ID] = append(s.histories[def.ID], journey.Message{
		Role:    journey.RoleUser,
		Content: userMessage,
	})
	if force {
		s.histories[def.ID] = append(s.histories[def.ID], journey.Message{
			Role:    journey.RoleSystem,
			Content: forceCompletionPrompt(def),
		})
	}
}

func (s *Service) appendAssistant(gemID, answer string) {
	s.histories[gemID] = append(s.histories[gemID], journey.Message{
		Role:    journey.RoleAssistant,
		Content: answer,
	})
}

// invoke runs the model over the gem's current history.
func (s *Service) invoke(ctx context.Context, gemID string) (string, error) {
	reply, err := s.llm.Invoke(ctx, toModelMessages(s.histories[gemID]))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// finalize closes the gem when its reply signals completion or the
// traveler forced it. The transition message is appended to the answer,
// mirrored into the last history entry, and the transcript is persisted
// before the in-memory history is dropped.
func (s *Service) finalize(ctx context.Context, def gem.Definition, answer string, force bool) (string, bool, error) {
	if needsOutputNudge(def, answer) {
		s.histories[def.ID] = append(s.histories[def.ID], journey.Message{
			Role:    journey.RoleSystem,
			Content: outputNudgePrompt(def),
		})
		regenerated, err := s.invoke(ctx, def.ID)
		if err != nil {
			return "", false, err
		}
		s.appendAssistant(def.ID, regenerated)
		answer = regenerated
	}

	if !force && !detectorFor(def).complete(answer, s.assistantTurns(def.ID)) {
		return answer, false, nil
	}

	output := extractOutput(answer, def.ID, s.orc.Gems().MarkerPrefixes())
	transition, _, err := s.orc.CompleteGem(ctx, def.ID, output)
	if err != nil {
		return "", false, err
	}

	final := strings.TrimSpace(answer + "\n\n" + transition)
	history := s.histories[def.ID]
	if len(history) > 0 && history[len(history)-1].Role == journey.RoleAssistant {
		history[len(history)-1].Content = final
	}
	if err := s.orc.SaveConversation(ctx, def.ID, history); err != nil {
		return "", false, err
	}
	delete(s.histories, def.ID)
	return final, true, nil
}

func (s *Service) assistantTurns(gemID string) int {
	n := 0
	for _, msg := range s.histories[gemID] {
		if msg.Role == journey.RoleAssistant {
			n++
		}
	}
	return n
}

func isForceCompletion(userMessage string) bool {
	return forceCompletionCommands[strings.ToLower(strings.TrimSpace(userMessage))]
}

func toModelMessages(msgs []journey.Message) []llm.Message {
	out := make([]llm.Message, len(msgs))
	for i, msg := range msgs {
		out[i] = llm.Message{Role: msg.Role, Content: msg.Content}
	}
	return out
}
