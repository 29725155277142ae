package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ManhwaCatalog/internal/entity"
	"ManhwaCatalog/pkg/extraction"

	"github.com/sashabaranov/go-openai"
)

type chatGPTExtractor struct {
	client *openai.Client
	model  string
}

func NewChatGPT() (extraction.IListExtractor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}

	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &chatGPTExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *chatGPTExtractor) ExtractList(ctx context.Context, text string) (entity.ExtractedList, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: extraction.SystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: text,
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.2,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return entity.ExtractedList{}, fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return entity.ExtractedList{}, fmt.Errorf("no response from ChatGPT")
	}

	list, err := extraction.ParseList(resp.Choices[0].Message.Content)
	if err != nil {
		return entity.ExtractedList{}, fmt.Errorf("failed to parse extracted list: %w", err)
	}

	return list, nil
}
