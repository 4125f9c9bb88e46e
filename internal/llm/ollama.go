package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.1"
	defaultTimeout = 5 * time.Minute

	maxRetries = 3
)

// OllamaConfig configures the Ollama chat client.
type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OllamaClient talks to a local Ollama server over its /api/chat
// endpoint. It implements both Invoker and Streamer.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewOllamaClient returns a client with defaults applied for any unset
// config field. log may be nil.
func NewOllamaClient(cfg OllamaConfig, log *zap.Logger) *OllamaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OllamaClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// Model returns the configured model name.
func (c *OllamaClient) Model() string {
	return c.model
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Error   string  `json:"error,omitempty"`
}

// Invoke sends the conversation and waits for the complete reply.
// Rate-limited and transport-failed requests are retried with
// exponential backoff.
func (c *OllamaClient) Invoke(ctx context.Context, msgs []Message) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	start := time.Now()
	body, err := json.Marshal(chatRequest{Model: c.model, Messages: msgs})
	if err != nil {
		return "", fmt.Errorf("llm: encoding request: %w", err)
	}

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(time.Duration(1<<uint(i-1)) * time.Second):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("llm: building request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("llm: request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("llm: reading response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("llm: rate limit exceeded (429)")
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("llm: chat request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}

		var chat chatResponse
		if err := json.Unmarshal(respBody, &chat); err != nil {
			return "", fmt.Errorf("llm: decoding response: %w", err)
		}
		if chat.Error != "" {
			return "", fmt.Errorf("llm: server error: %s", chat.Error)
		}

		reply := strings.TrimSpace(chat.Message.Content)
		c.log.Debug("chat completed",
			zap.String("model", c.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("reply_len", len(reply)))
		return reply, nil
	}

	return "", fmt.Errorf("llm: max retries exceeded: %w", lastErr)
}

// Stream sends the conversation and relays the reply as it is
// generated. Ollama streams newline-delimited JSON objects, one content
// fragment each, with done=true on the final object.
func (c *OllamaClient) Stream(ctx context.Context, msgs []Message) (<-chan string, <-chan error) {
	contentCh := make(chan string, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(contentCh)
		defer close(errCh)

		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
			defer cancel()
		}

		body, err := json.Marshal(chatRequest{Model: c.model, Messages: msgs, Stream: true})
		if err != nil {
			errCh <- fmt.Errorf("llm: encoding request: %w", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
		if err != nil {
			errCh <- fmt.Errorf("llm: building request: %w", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			errCh <- fmt.Errorf("llm: request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			errCh <- fmt.Errorf("llm: chat request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var chunk chatResponse
			if err := json.Unmarshal([]byte(line), &chunk); err != nil {
				errCh <- fmt.Errorf("llm: decoding stream line: %w", err)
				return
			}
			if chunk.Error != "" {
				errCh <- fmt.Errorf("llm: server error: %s", chunk.Error)
				return
			}
			if chunk.Message.Content != "" {
				select {
				case contentCh <- chunk.Message.Content:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if chunk.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errCh <- fmt.Errorf("llm: reading stream: %w", err)
		}
	}()

	return contentCh, errCh
}
