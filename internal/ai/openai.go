// ABOUTME: OpenAI-backed implementation of the generative contract
// ABOUTME: JSON-mode completions with timeout, bounded retries and backoff
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/oniromante/oniromante/internal/config"
	"github.com/oniromante/oniromante/internal/models"
	"github.com/oniromante/oniromante/internal/util"
)

const systemInstruction = "Você é o Oniromante, um intérprete de sonhos místico e empático."

// Client implements Generator against the OpenAI API.
type Client struct {
	client     *openai.Client
	chatModel  string
	imageModel string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &Client{
		client:     openai.NewClient(cfg.OpenAIKey),
		chatModel:  cfg.ChatModel,
		imageModel: cfg.ImageModel,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

// generateJSON runs a JSON-mode completion and decodes the payload into
// dest. Retries with backoff; the returned error wraps the typed failure
// of the last attempt.
func (c *Client) generateJSON(ctx context.Context, prompt string, temperature float32, dest interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: temperature,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		})
		cancel()

		if err != nil {
			lastErr = &TransportError{Err: fmt.Errorf("attempt %d: %w", attempt+1, err)}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = &DecodeError{Err: fmt.Errorf("attempt %d: no completion choices returned", attempt+1)}
			continue
		}

		if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), dest); err != nil {
			lastErr = &DecodeError{Err: fmt.Errorf("attempt %d: %w", attempt+1, err)}
			continue
		}
		return nil
	}

	return fmt.Errorf("generation failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// GenerateDailyInsights produces the mystical daily content.
func (c *Client) GenerateDailyInsights(ctx context.Context) (*models.DailyInsights, error) {
	var insights models.DailyInsights
	if err := c.generateJSON(ctx, insightsPrompt(), 1.0, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

// AnalyzeDream structures raw dream text into an analysis result.
func (c *Client) AnalyzeDream(ctx context.Context, rawText string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	if err := c.generateJSON(ctx, dreamPrompt(rawText), 0.5, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateDreamImage renders the summary in the given style and returns an
// inline data-URL payload.
func (c *Client) GenerateDreamImage(ctx context.Context, summary string, style models.ArtStyle) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(util.CalculateBackoff(c.retryDelay, attempt))
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateImage(callCtx, openai.ImageRequest{
			Prompt:         imagePrompt(summary, style),
			Model:          c.imageModel,
			N:              1,
			Size:           openai.CreateImageSize1024x1024,
			ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		})
		cancel()

		if err != nil {
			lastErr = &TransportError{Err: fmt.Errorf("attempt %d: %w", attempt+1, err)}
			continue
		}
		if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
			lastErr = &DecodeError{Err: fmt.Errorf("attempt %d: no image payload returned", attempt+1)}
			continue
		}

		return "data:image/png;base64," + resp.Data[0].B64JSON, nil
	}

	return "", fmt.Errorf("image generation failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// LookupSymbol explains the dream symbolism of a term.
func (c *Client) LookupSymbol(ctx context.Context, term string) (*models.SymbolDefinition, error) {
	var def models.SymbolDefinition
	if err := c.generateJSON(ctx, symbolPrompt(term), 0.7, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// GenerateNightEnergy produces a pre-sleep ritual tuned to a mood.
func (c *Client) GenerateNightEnergy(ctx context.Context, mood string) (*models.NightEnergy, error) {
	var energy models.NightEnergy
	if err := c.generateJSON(ctx, nightPrompt(mood), 0.7, &energy); err != nil {
		return nil, err
	}
	return &energy, nil
}

// NewChatSession opens a mentor session seeded with the persona preamble
// and, when the status carries any signal, one silent priming message. The
// priming message enters the history without a provider round-trip; the
// model sees it alongside the first user-visible turn.
func (c *Client) NewChatSession(status *models.UserStatus) ChatSession {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: chatSystemInstruction},
	}
	if priming := contextPrimingMessage(status); priming != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: priming,
		})
	}

	return &chatSession{
		client:   c.client,
		model:    c.chatModel,
		timeout:  c.timeout,
		now:      time.Now,
		messages: messages,
	}
}
