package analyst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitydesk/callinsight/internal/analyst"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
		found bool
	}{
		{
			name:  "surrounded by prose",
			reply: `Some preamble {"management_tone":"positive"} trailing text`,
			want:  `{"management_tone":"positive"}`,
			found: true,
		},
		{
			name:  "bare object",
			reply: `{"a":1}`,
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "nested objects stay balanced",
			reply: `x {"a":{"b":{"c":1}}} y`,
			want:  `{"a":{"b":{"c":1}}}`,
			found: true,
		},
		{
			name:  "braces inside strings are ignored",
			reply: `{"note":"uses { and } freely"} {"second":2}`,
			want:  `{"note":"uses { and } freely"}`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			reply: `{"note":"she said \"hi {\" there"}`,
			want:  `{"note":"she said \"hi {\" there"}`,
			found: true,
		},
		{
			name:  "first of multiple objects wins",
			reply: `{"first":1} and later {"second":2}`,
			want:  `{"first":1}`,
			found: true,
		},
		{
			name:  "no braces",
			reply: "I'm sorry, I cannot produce that.",
			found: false,
		},
		{
			name:  "unbalanced open brace",
			reply: `{"never": "closes"`,
			found: false,
		},
		{
			name:  "empty reply",
			reply: "",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := analyst.ExtractJSONObject(tt.reply)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
