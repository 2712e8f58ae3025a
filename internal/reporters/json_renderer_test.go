package reporters

import (
	"bytes"
	"strings"
	"testing"

	"weblog-analytics/internal/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRenderer_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewJSONRenderer()

	require.NoError(t, renderer.Render(&buf, testReport()))

	var decoded models.SessionReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, testReport(), &decoded)
}

func TestJSONRenderer_Render_IndentedOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewJSONRenderer()

	require.NoError(t, renderer.Render(&buf, testReport()))
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "{\n  \"customerId\""))
	assert.Contains(t, output, "\"customerId\": \"customer1\"")
	assert.Contains(t, output, "\"avgSessionTimeInMin\": 5")
}
