package aggregators

import (
	"weblog-analytics/internal/models"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=traffic_summarizer.go -destination=./mocks/traffic_summarizer_mock.go -package=mocks
type TrafficSummarizer interface {
	// Summarize counts hits per browser family across the whole batch.
	Summarize(events []*models.LogEvent) map[string]int64
}

type trafficSummarizer struct{}

func NewTrafficSummarizer() TrafficSummarizer {
	return &trafficSummarizer{}
}

func (s *trafficSummarizer) Summarize(events []*models.LogEvent) map[string]int64 {
	counts := make(map[string]int64)
	for _, event := range events {
		counts[s.normalizeUserAgent(event.UserAgent)]++
	}
	return counts
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func (s *trafficSummarizer) normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	// If parsing fails or family is empty, return original
	return ua
}
