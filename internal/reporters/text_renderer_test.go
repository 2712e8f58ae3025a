package reporters

import (
	"bytes"
	"strings"
	"testing"

	"weblog-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *models.SessionReport {
	return &models.SessionReport{
		CustomerID:   "customer1",
		BatchID:      "batch-1",
		TotalEvents:  5,
		SkippedLines: 1,
		SessionHits: []models.SessionHitCount{
			{IP: "10.0.0.1", SessionID: "20150722-06-0015-10-0-0-1", TotalHits: 3},
			{IP: "10.0.0.2", SessionID: "20150722-06-0015-10-0-0-2", TotalHits: 2},
		},
		AvgSessionTimes: []models.IPSessionDuration{
			{IP: "10.0.0.1", TotalSessions: 1, TotalDurationSec: 300, AvgSessionTimeMin: 5},
			{IP: "10.0.0.2", TotalSessions: 1, TotalDurationSec: 60, AvgSessionTimeMin: 1},
		},
		UniqueURLCounts: []models.SessionUniqueURLs{
			{SessionID: "20150722-06-0015-10-0-0-1", NumUniqueHits: 2},
			{SessionID: "20150722-06-0015-10-0-0-2", NumUniqueHits: 1},
		},
		Engagements: []models.UserEngagement{
			{User: "10.0.0.1_2c26b46b68ffc68ff99b453c1d304134", SessionID: "20150722-06-0015-10-0-0-1", DurationMin: 5},
			{User: "10.0.0.2_fcde2b2edba56bf408601fb721fe9b5c", SessionID: "20150722-06-0015-10-0-0-2", DurationMin: 1},
		},
		RequestsByUserAgent: map[string]int64{
			"Chrome": 3,
			"curl":   2,
		},
	}
}

func TestTextRenderer_Render_AllTables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewTextRenderer(0)

	require.NoError(t, renderer.Render(&buf, testReport()))
	output := buf.String()

	assert.Contains(t, output, "batch batch-1  events 5  skipped 1")

	titles := []string{
		"Hits per session",
		"Average session time per IP",
		"Unique URL visits per session",
		"Most engaged users",
		"Requests by user agent",
	}
	lastIdx := -1
	for _, title := range titles {
		idx := strings.Index(output, title)
		require.GreaterOrEqual(t, idx, 0, "missing table %q", title)
		assert.Greater(t, idx, lastIdx, "table %q out of order", title)
		lastIdx = idx
	}

	headers := []string{
		"total_hits",
		"total_sessions",
		"total_duration_sec",
		"avg_session_time_in_min",
		"num_unique_hits",
		"duration_min",
		"user_agent",
	}
	for _, header := range headers {
		assert.Contains(t, output, header)
	}

	// Rows keep the aggregator ranking, metric descending.
	assert.Less(t,
		strings.Index(output, "20150722-06-0015-10-0-0-1"),
		strings.Index(output, "20150722-06-0015-10-0-0-2"),
	)

	// Fractions render with two decimals.
	assert.Contains(t, output, "5.00")
	assert.Contains(t, output, "1.00")
}

func TestTextRenderer_Render_UserAgentsRankedByHits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewTextRenderer(0)

	require.NoError(t, renderer.Render(&buf, testReport()))
	output := buf.String()

	uaIdx := strings.Index(output, "Requests by user agent")
	require.GreaterOrEqual(t, uaIdx, 0)
	uaSection := output[uaIdx:]
	assert.Less(t, strings.Index(uaSection, "Chrome"), strings.Index(uaSection, "curl"),
		"Chrome has more hits and must come first")
}

func TestTextRenderer_Render_TopNCapsEveryTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewTextRenderer(1)

	require.NoError(t, renderer.Render(&buf, testReport()))
	output := buf.String()

	// Second-ranked rows are cut from every table.
	assert.NotContains(t, output, "10.0.0.2")
	assert.NotContains(t, output, "curl")
	assert.Contains(t, output, "10.0.0.1")
	assert.Contains(t, output, "Chrome")
}

func TestTextRenderer_Render_Deterministic(t *testing.T) {
	t.Parallel()

	renderer := NewTextRenderer(0)

	var first, second bytes.Buffer
	require.NoError(t, renderer.Render(&first, testReport()))
	require.NoError(t, renderer.Render(&second, testReport()))

	assert.Equal(t, first.String(), second.String())
}

func TestTextRenderer_Render_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewTextRenderer(0)

	require.NoError(t, renderer.Render(&buf, &models.SessionReport{BatchID: "batch-1"}))
	output := buf.String()

	assert.Contains(t, output, "Hits per session")
	assert.Contains(t, output, "Requests by user agent")
	assert.NotContains(t, output, "10.0.0.1")
}
