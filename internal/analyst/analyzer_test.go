package analyst_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equitydesk/callinsight/internal/analyst"
)

// fixedCompleter returns a canned reply and records the prompt it was given.
type fixedCompleter struct {
	reply  string
	err    error
	prompt string
}

func (f *fixedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

const validReply = `Some preamble {"management_tone":"positive","confidence_level":"high",` +
	`"key_positives":["strong revenue"],"key_concerns":[],"forward_guidance":"optimistic",` +
	`"capacity_utilization":"Not mentioned in transcript","growth_initiatives":[]} trailing text`

func TestAnalyzeParsesEmbeddedObject(t *testing.T) {
	c := &fixedCompleter{reply: validReply}
	a := analyst.NewAnalyzer(c, nil)

	res, err := a.Analyze(context.Background(), "Revenue grew 10%.")
	require.NoError(t, err)

	assert.Equal(t, "positive", res.ManagementTone)
	assert.Equal(t, "high", res.ConfidenceLevel)
	assert.Equal(t, []string{"strong revenue"}, res.KeyPositives)
	assert.Empty(t, res.KeyConcerns)
	assert.Equal(t, "optimistic", res.ForwardGuidance)
	assert.Equal(t, analyst.Sentinel, res.CapacityUtilization)
	assert.Empty(t, res.GrowthInitiatives)
}

func TestAnalyzeTruncatesTranscriptInPrompt(t *testing.T) {
	c := &fixedCompleter{reply: validReply}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), strings.Repeat("z", 9000))
	require.NoError(t, err)

	assert.Contains(t, c.prompt, strings.Repeat("z", 8000))
	assert.NotContains(t, c.prompt, strings.Repeat("z", 8001))
}

func TestAnalyzeNoJSONInReply(t *testing.T) {
	c := &fixedCompleter{reply: "I could not analyze this transcript."}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, analyst.ErrNoJSONFound)
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	c := &fixedCompleter{reply: "{not valid json}"}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, analyst.ErrMalformedJSON)
}

func TestAnalyzeMissingFieldIsDescriptive(t *testing.T) {
	// capacity_utilization and growth_initiatives omitted despite instructions
	c := &fixedCompleter{reply: `{"management_tone":"neutral","confidence_level":"low",` +
		`"key_positives":[],"key_concerns":["margin pressure"],"forward_guidance":"cautious"}`}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, analyst.ErrMissingField)
	assert.Contains(t, err.Error(), "capacity_utilization")
	assert.Contains(t, err.Error(), "growth_initiatives")
}

func TestAnalyzeWrongFieldTypeIsMalformed(t *testing.T) {
	c := &fixedCompleter{reply: `{"management_tone":"ok","confidence_level":"ok",` +
		`"key_positives":"not a list","key_concerns":[],"forward_guidance":"ok",` +
		`"capacity_utilization":"ok","growth_initiatives":[]}`}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, analyst.ErrMalformedJSON)
}

func TestAnalyzeExtraFieldsArePermitted(t *testing.T) {
	reply := `{"management_tone":"positive","confidence_level":"high",` +
		`"key_positives":[],"key_concerns":[],"forward_guidance":"ok",` +
		`"capacity_utilization":"ok","growth_initiatives":[],"extra_commentary":"ignored"}`
	c := &fixedCompleter{reply: reply}
	a := analyst.NewAnalyzer(c, nil)

	res, err := a.Analyze(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "positive", res.ManagementTone)
}

func TestAnalyzeCompleterErrorPropagates(t *testing.T) {
	c := &fixedCompleter{err: context.DeadlineExceeded}
	a := analyst.NewAnalyzer(c, nil)

	_, err := a.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
