// Package journey persists the traveler's progress through the gem
// sequence: which gem is active, which are done, their structured
// outputs and the transcripts that produced them.
package journey

import (
	"context"
	"time"
)

// Message roles as stored in conversation transcripts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a gem conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Output is the structured result a gem produced on completion.
type Output struct {
	CompletedAt time.Time `json:"completed_at"`
	Output      string    `json:"output"`
}

// State is the whole journey document. A zero CurrentGem means the
// journey has not started yet.
type State struct {
	CurrentGem    string               `json:"current_gem"`
	CompletedGems []string             `json:"completed_gems"`
	GemOutputs    map[string]Output    `json:"gem_outputs"`
	Conversations map[string][]Message `json:"gem_conversations"`
	StartedAt     *time.Time           `json:"started_at"`
	LastUpdated   time.Time            `json:"last_updated"`
}

// NewState returns an empty journey document.
func NewState() *State {
	return &State{
		CompletedGems: []string{},
		GemOutputs:    map[string]Output{},
		Conversations: map[string][]Message{},
	}
}

// IsCompleted reports whether gemID has already been completed.
func (s *State) IsCompleted(gemID string) bool {
	for _, id := range s.CompletedGems {
		if id == gemID {
			return true
		}
	}
	return false
}

// MarkCompleted records gemID as done with the given output. Completing
// an already-completed gem is a no-op for the completed list but still
// refreshes the stored output.
func (s *State) MarkCompleted(gemID, output string, at time.Time) {
	if !s.IsCompleted(gemID) {
		s.CompletedGems = append(s.CompletedGems, gemID)
	}
	if s.GemOutputs == nil {
		s.GemOutputs = map[string]Output{}
	}
	s.GemOutputs[gemID] = Output{CompletedAt: at, Output: output}
}

// SetConversation stores the full transcript for gemID, replacing any
// previous one.
func (s *State) SetConversation(gemID string, msgs []Message) {
	if s.Conversations == nil {
		s.Conversations = map[string][]Message{}
	}
	s.Conversations[gemID] = msgs
}

// Conversation returns the saved transcript for gemID, or nil.
func (s *State) Conversation(gemID string) []Message {
	return s.Conversations[gemID]
}

// Store persists journey state. Save is expected to stamp LastUpdated.
type Store interface {
	// Load returns the persisted state, or a fresh document when none
	// exists yet.
	Load(ctx context.Context) (*State, error)
	// Save writes the state, stamping LastUpdated.
	Save(ctx context.Context, st *State) error
	// Backup preserves the current persisted state so a reset is
	// recoverable. Absent state is not an error.
	Backup(ctx context.Context) error
}
