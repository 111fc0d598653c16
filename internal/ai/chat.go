// ABOUTME: Stateful mentor chat session over the provider streaming API
// ABOUTME: History grows only on completed turns; cancellation drops fragments
package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/oniromante/oniromante/internal/models"
)

type chatSession struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	now     func() time.Time

	mu         sync.Mutex
	messages   []openai.ChatCompletionMessage
	transcript []models.Message
}

// Send exchanges one turn and returns the full reply. The turn is appended
// to the history only when the provider answers.
func (s *chatSession) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.snapshot(), openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: history,
	})
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("chat turn: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return "", &DecodeError{Err: errors.New("chat turn: no completion choices returned")}
	}

	reply := resp.Choices[0].Message.Content
	s.commit(text, reply)
	return reply, nil
}

// SendStream exchanges one turn, yielding the reply as ordered fragments.
// The fragment channel closes when the reply completes; at most one error is
// sent. A cancelled context stops delivery and the turn never enters the
// history.
func (s *chatSession) SendStream(ctx context.Context, text string) (<-chan string, <-chan error) {
	fragments := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(fragments)
		defer close(errs)

		s.mu.Lock()
		defer s.mu.Unlock()

		history := append(s.snapshot(), openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: text,
		})

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		stream, err := s.client.CreateChatCompletionStream(callCtx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: history,
			Stream:   true,
		})
		if err != nil {
			errs <- &TransportError{Err: fmt.Errorf("chat stream: %w", err)}
			return
		}
		defer stream.Close()

		var full string
		for {
			chunk, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				errs <- &TransportError{Err: fmt.Errorf("chat stream: %w", err)}
				return
			}
			if len(chunk.Choices) == 0 {
				continue
			}

			fragment := chunk.Choices[0].Delta.Content
			if fragment == "" {
				continue
			}
			full += fragment

			select {
			case fragments <- fragment:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}

		s.commit(text, full)
	}()

	return fragments, errs
}

// snapshot copies the history so the request slice never aliases it.
func (s *chatSession) snapshot() []openai.ChatCompletionMessage {
	history := make([]openai.ChatCompletionMessage, len(s.messages), len(s.messages)+1)
	copy(history, s.messages)
	return history
}

// commit records a completed turn. Callers hold s.mu.
func (s *chatSession) commit(userText, reply string) {
	s.messages = append(s.messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userText},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
	)
	now := s.now()
	s.transcript = append(s.transcript,
		models.NewMessage(models.RoleUser, userText, now),
		models.NewMessage(models.RoleModel, reply, now),
	)
}

// History returns the transcript of completed turns.
func (s *chatSession) History() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.Message, len(s.transcript))
	copy(history, s.transcript)
	return history
}
