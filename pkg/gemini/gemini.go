package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"ManhwaCatalog/internal/entity"
	"ManhwaCatalog/pkg/extraction"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (extraction.IListExtractor, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// listSchema mirrors entity.ExtractedList so the model is constrained to that shape.
var listSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"manhwas": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"title", "description", "manhwas"},
}

func (g *geminiClient) ExtractList(ctx context.Context, text string) (entity.ExtractedList, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(extraction.SystemPrompt)}}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = listSchema
	model.SetTemperature(0.2)

	res, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return entity.ExtractedList{}, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return entity.ExtractedList{}, errors.New("no response from Gemini API")
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if sb.Len() == 0 {
		return entity.ExtractedList{}, errors.New("unexpected response format from Gemini API")
	}

	list, err := extraction.ParseList(sb.String())
	if err != nil {
		return entity.ExtractedList{}, fmt.Errorf("failed to parse extracted list: %w", err)
	}

	return list, nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
