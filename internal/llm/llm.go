// Package llm abstracts the language model behind small invoke and
// stream interfaces so the interaction service never depends on a
// concrete backend.
package llm

import "context"

// Message is one chat turn sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Invoker produces a complete reply for a conversation.
type Invoker interface {
	Invoke(ctx context.Context, msgs []Message) (string, error)
}

// Streamer produces a reply incrementally. The content channel carries
// text fragments in order and is closed when the reply ends; the error
// channel reports at most one failure. A mid-stream failure may arrive
// after some fragments were already delivered.
type Streamer interface {
	Stream(ctx context.Context, msgs []Message) (<-chan string, <-chan error)
}
