package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"weblog-analytics/internal/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logFileContent = `2015-07-22T09:00:28.019143Z lb 10.0.0.1:54635 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET http://example.com/a HTTP/1.1" "curl/7.38.0" - -
2015-07-22T09:05:28.000000Z lb 10.0.0.1:54636 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET http://example.com/b HTTP/1.1" "curl/7.38.0" - -
not an elb line
2015-07-22T09:00:30.000000Z lb 10.0.0.2:54637 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET http://example.com/a HTTP/1.1" "curl/7.38.0" - -
`

func writeLogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReportCommand_JSONOutput(t *testing.T) {
	path := writeLogFile(t, "access.log", logFileContent)

	var out bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--format", "json", "--customer", "cus-test"})

	require.NoError(t, cmd.Execute())

	var report models.SessionReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, "cus-test", report.CustomerID)
	assert.Len(t, report.BatchID, 26)
	assert.Equal(t, int64(3), report.TotalEvents)
	assert.Equal(t, int64(1), report.SkippedLines)
	require.Len(t, report.SessionHits, 2)
	assert.Equal(t, "10.0.0.1", report.SessionHits[0].IP)
	assert.Equal(t, int64(2), report.SessionHits[0].TotalHits)
	assert.Equal(t, map[string]int64{"curl": 3}, report.RequestsByUserAgent)
}

func TestReportCommand_TextOutput(t *testing.T) {
	path := writeLogFile(t, "access.log", logFileContent)

	var out bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	output := out.String()

	assert.Contains(t, output, "events 3  skipped 1")
	assert.Contains(t, output, "Hits per session")
	assert.Contains(t, output, "Requests by user agent")
	assert.Contains(t, output, "10.0.0.1")
}

func TestReportCommand_MergesMultipleFiles(t *testing.T) {
	first := writeLogFile(t, "first.log", logFileContent)
	second := writeLogFile(t, "second.log",
		`2015-07-22T09:00:31.000000Z lb 10.0.0.3:54638 10.0.6.158:80 0.000022 0.026109 0.00002 200 200 0 699 "GET http://example.com/c HTTP/1.1" "curl/7.38.0" - -`+"\n")

	var out bytes.Buffer
	cmd := newReportCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{first, second, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var report models.SessionReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))

	assert.Equal(t, int64(4), report.TotalEvents)
	assert.Equal(t, int64(1), report.SkippedLines)
	assert.Len(t, report.SessionHits, 3)
}

func TestReportCommand_UnsupportedFormat(t *testing.T) {
	path := writeLogFile(t, "access.log", logFileContent)

	cmd := newReportCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--format", "yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestReportCommand_MissingFile(t *testing.T) {
	cmd := newReportCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.log")})

	require.Error(t, cmd.Execute())
}

func TestReportCommand_RequiresAtLeastOneFile(t *testing.T) {
	cmd := newReportCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
