package analyst

import (
	"strings"
	"unicode/utf8"
)

// MaxTranscriptBytes caps how much transcript text is embedded in the prompt.
// It is a length guard, not a semantic boundary; the cut may land mid-sentence.
const MaxTranscriptBytes = 8000

const promptTemplate = `You are an equity research analyst.

STRICT RULES:
- Use only information explicitly mentioned.
- Do NOT assume or invent data.
- If something is not mentioned, return: "Not mentioned in transcript".
- Return ONLY raw JSON.
- Do NOT wrap JSON in markdown.
- No commentary.

JSON format:
{
  "management_tone": "",
  "confidence_level": "",
  "key_positives": [],
  "key_concerns": [],
  "forward_guidance": "",
  "capacity_utilization": "",
  "growth_initiatives": []
}

Transcript:
`

// BuildPrompt embeds the (truncated) transcript into the fixed analyst
// instruction template.
func BuildPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString(promptTemplate)
	b.WriteString(TruncateTranscript(transcript))
	return b.String()
}

// TruncateTranscript returns the first MaxTranscriptBytes of the text,
// backing off to the previous rune boundary so a multi-byte character is
// never split.
func TruncateTranscript(s string) string {
	if len(s) <= MaxTranscriptBytes {
		return s
	}
	cut := MaxTranscriptBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
