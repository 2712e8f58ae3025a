package ingestors

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"weblog-analytics/internal/models"
)

const (
	// elbFieldCount is the number of space-separated fields in one ELB
	// access log line.
	elbFieldCount = 15

	// maxLineBytes caps a single log line. Lines beyond this abort the scan.
	maxLineBytes = 1024 * 1024
)

// ParseResult carries the events recovered from a payload plus the number of
// non-blank lines that had to be dropped.
type ParseResult struct {
	Events       []*models.LogEvent
	SkippedLines int64
}

//go:generate mockgen -source=weblog_parser.go -destination=./mocks/weblog_parser_mock.go -package=mocks
type WeblogParser interface {
	// Parse reads ELB access log lines from r. Blank lines are ignored.
	// Non-blank lines with the wrong field count, an unparseable timestamp
	// or an empty client host are dropped and counted in SkippedLines; the
	// remaining fields are parsed leniently, falling back to zero values.
	Parse(r io.Reader) (*ParseResult, error)
}

type elbLogParser struct{}

func NewELBLogParser() WeblogParser {
	return &elbLogParser{}
}

func (p *elbLogParser) Parse(r io.Reader) (*ParseResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	result := &ParseResult{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		event, ok := p.parseLine(line)
		if !ok {
			result.SkippedLines++
			continue
		}
		result.Events = append(result.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// parseLine splits one line into its 15 fields. The request and user agent
// fields are double-quoted and may contain spaces, so the split goes through
// a csv reader with a space delimiter rather than strings.Fields.
func (p *elbLogParser) parseLine(line string) (*models.LogEvent, bool) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = ' '

	fields, err := reader.Read()
	if err != nil || len(fields) != elbFieldCount {
		return nil, false
	}

	timestamp, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return nil, false
	}

	clientAddr := fields[2]
	if host, _, _ := strings.Cut(clientAddr, ":"); host == "" {
		return nil, false
	}

	return &models.LogEvent{
		Timestamp:              timestamp,
		ELB:                    fields[1],
		ClientAddr:             clientAddr,
		BackendAddr:            fields[3],
		RequestProcessingTime:  parseFloatLenient(fields[4]),
		BackendProcessingTime:  parseFloatLenient(fields[5]),
		ResponseProcessingTime: parseFloatLenient(fields[6]),
		ELBStatusCode:          parseIntLenient(fields[7]),
		BackendStatusCode:      parseIntLenient(fields[8]),
		ReceivedBytes:          parseInt64Lenient(fields[9]),
		SentBytes:              parseInt64Lenient(fields[10]),
		Request:                fields[11],
		UserAgent:              fields[12],
		SSLCipher:              fields[13],
		SSLProtocol:            fields[14],
	}, true
}

func parseFloatLenient(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntLenient(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseInt64Lenient(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
