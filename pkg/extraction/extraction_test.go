package extraction

import (
	"testing"

	"ManhwaCatalog/internal/entity"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected entity.ExtractedList
	}{
		{
			name: "bare object",
			raw:  `{"title":"My Picks","description":"desc","manhwas":["Solo Leveling","Tower of God"]}`,
			expected: entity.ExtractedList{
				Title:       "My Picks",
				Description: "desc",
				Manhwas:     []string{"Solo Leveling", "Tower of God"},
			},
		},
		{
			name: "code fence with prose",
			raw:  "Sure!\n```json\n{\"title\":\"Dark Fantasy\",\"description\":\"\",\"manhwas\":[\"Omniscient Reader\"]}\n```",
			expected: entity.ExtractedList{
				Title:   "Dark Fantasy",
				Manhwas: []string{"Omniscient Reader"},
			},
		},
		{
			name:     "missing members become empty",
			raw:      `{"title":"","description":""}`,
			expected: entity.ExtractedList{Manhwas: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseList(tt.raw)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseListWithoutJSON(t *testing.T) {
	_, err := ParseList("I could not find any titles.")
	assert.ErrorIs(t, err, ErrNoJSON)
}
