package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a helpful second brain assistant that helps users remember " +
	"important information and manage their daily life. Be concise, helpful, " +
	"and try to assist the user with their needs."

const reminderPrompt = "You are a helpful AI assistant analyzing a conversation to identify " +
	"if a reminder should be created. If you identify a need for a reminder, " +
	"extract the reminder content and the time it should be scheduled. " +
	"Format your response as a valid JSON object with 'content' and 'scheduledTime' properties. " +
	"Example: { \"content\": \"Take medication\", \"scheduledTime\": \"2023-06-01T09:00:00Z\" }"

// Turn is one prior turn of a conversation, role "user" or "assistant"
type Turn struct {
	Role    string
	Content string
}

// ExtractedReminder is a reminder the model identified in a conversation
type ExtractedReminder struct {
	Content       string
	ScheduledTime time.Time
}

// LLMProvider defines the interface for the language-model provider
type LLMProvider interface {
	// GenerateReply produces the assistant's answer to a message given the
	// recent conversation.
	GenerateReply(ctx context.Context, history []Turn, message string) (string, error)
	// ExtractReminder inspects a conversation for an implied reminder.
	// Returns nil when none is found.
	ExtractReminder(ctx context.Context, history []Turn) (*ExtractedReminder, error)
}

// noOpLLMProvider echoes a canned reply (for local environment)
type noOpLLMProvider struct{}

func (n *noOpLLMProvider) GenerateReply(ctx context.Context, history []Turn, message string) (string, error) {
	fmt.Printf("[LLM NoOp] Echoing message: %s\n", message)
	return "I heard: " + message, nil
}

func (n *noOpLLMProvider) ExtractReminder(ctx context.Context, history []Turn) (*ExtractedReminder, error) {
	return nil, nil
}

// NewNoOpLLMProvider creates a no-op language-model provider
func NewNoOpLLMProvider() LLMProvider {
	return &noOpLLMProvider{}
}

// openAIProvider implements LLMProvider on the OpenAI chat completions API
type openAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI language-model provider
func NewOpenAIProvider(apiKey, model string) LLMProvider {
	return &openAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *openAIProvider) GenerateReply(ctx context.Context, history []Turn, message string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	messages = append(messages, toParams(history)...)
	messages = append(messages, openai.UserMessage(message))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(p.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(500),
		Temperature:         openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I'm sorry, I couldn't generate a response.", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAIProvider) ExtractReminder(ctx context.Context, history []Turn) (*ExtractedReminder, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(reminderPrompt),
	}
	messages = append(messages, toParams(history)...)

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(p.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(250),
		Temperature:         openai.Float(0.2),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract reminder: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	var payload struct {
		Content       string    `json:"content"`
		ScheduledTime time.Time `json:"scheduledTime"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return nil, nil
	}
	if payload.Content == "" || payload.ScheduledTime.IsZero() {
		return nil, nil
	}

	return &ExtractedReminder{
		Content:       payload.Content,
		ScheduledTime: payload.ScheduledTime,
	}, nil
}

func toParams(history []Turn) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, turn := range history {
		if turn.Role == "assistant" {
			params = append(params, openai.AssistantMessage(turn.Content))
			continue
		}
		params = append(params, openai.UserMessage(turn.Content))
	}
	return params
}
