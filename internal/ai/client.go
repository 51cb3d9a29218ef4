// Package ai wraps the external text-generation service used for coaching
// replies and journal summaries. Callers treat it as an opaque collaborator.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Message is one turn of a coaching conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	Coach(ctx context.Context, mood, message string, history []Message) (string, error)
	Summarize(ctx context.Context, title, mood string, history []Message) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) Coach(ctx context.Context, mood, message string, history []Message) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "You are a supportive mental-health coach."},
	}
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf("Mood: %s\nMessage: %s", mood, message),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   350,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "I'm here.", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) Summarize(ctx context.Context, title, mood string, history []Message) (string, error) {
	var transcript strings.Builder
	for _, turn := range history {
		speaker := "Guide"
		if turn.Role == openai.ChatMessageRoleUser {
			speaker = "User"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", speaker, turn.Content)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Summarize the mental-health chat in 4-6 bullets: key feelings, triggers, coping ideas, and a gentle next step.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Mood: %s\n\nTranscript:\n%s", mood, transcript.String()),
			},
		},
		Temperature: 0.4,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "No summary.", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
