package extraction

import (
	"context"
	"errors"
	"strings"

	"ManhwaCatalog/internal/entity"

	jsoniter "github.com/json-iterator/go"
)

const SystemPrompt = `You turn a reader's free-form request into a curated manhwa list.

Return ONLY valid JSON, nothing else, in exactly this shape:
{
  "title": "short list title",
  "description": "one or two sentences describing the list",
  "manhwas": ["Exact Title One", "Exact Title Two"]
}

Rules:
- "manhwas" holds the manhwa titles mentioned or implied by the text, using their official English titles.
- Keep the order in which the titles appear in the text.
- If the text names no titles, return an empty "manhwas" array.`

var ErrNoJSON = errors.New("cannot find valid JSON in extraction response")

// IListExtractor maps free text to a structured list request.
type IListExtractor interface {
	ExtractList(ctx context.Context, text string) (entity.ExtractedList, error)
}

// ParseList decodes the first JSON object found in raw. Models sometimes wrap the
// object in prose or code fences, so everything outside the outermost braces is dropped.
func ParseList(raw string) (entity.ExtractedList, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return entity.ExtractedList{}, ErrNoJSON
	}

	var list entity.ExtractedList
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(raw[start:end+1]), &list); err != nil {
		return entity.ExtractedList{}, err
	}
	if list.Manhwas == nil {
		list.Manhwas = []string{}
	}

	return list, nil
}
