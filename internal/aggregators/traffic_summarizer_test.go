package aggregators

import (
	"testing"

	"weblog-analytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTrafficSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	summarizer := NewTrafficSummarizer()

	weblogEvents := []*models.LogEvent{
		{UserAgent: "Mozilla/5.0 (Windows NT 6.1; rv:39.0) Gecko/20100101 Firefox/39.0"},
		{UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:123.0) Gecko/20100101 Firefox/123.0"},
		{UserAgent: "Chrome/90.0.0.0 Safari/537.36"},
		{UserAgent: "curl/7.68.0"},
	}

	counts := summarizer.Summarize(weblogEvents)

	expected := map[string]int64{
		"Firefox": 2,
		"Chrome":  1,
		"curl":    1,
	}
	assert.Equal(t, expected, counts)
}

func TestTrafficSummarizer_Summarize_UnknownUserAgent(t *testing.T) {
	t.Parallel()

	summarizer := NewTrafficSummarizer()

	// Unrecognized products still carry a name token; only a UA with no
	// parseable name falls back to the original string.
	counts := summarizer.Summarize([]*models.LogEvent{
		{UserAgent: "SomeUnknownUserAgent/1.0"},
		{UserAgent: ""},
	})

	expected := map[string]int64{
		"SomeUnknownUserAgent": 1,
		"":                     1,
	}
	assert.Equal(t, expected, counts)
}

func TestTrafficSummarizer_Summarize_Empty(t *testing.T) {
	t.Parallel()

	summarizer := NewTrafficSummarizer()

	counts := summarizer.Summarize(nil)

	assert.Empty(t, counts)
	assert.NotNil(t, counts)
}
