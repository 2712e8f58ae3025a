package aggregators

import (
	"sort"
	"strings"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=unique_url_aggregator.go -destination=./mocks/unique_url_aggregator_mock.go -package=mocks
type UniqueURLAggregator interface {
	// Aggregate counts the distinct request URLs seen in each session.
	// Repeat visits to the same URL within a session count once.
	Aggregate(tagged []*models.SessionTaggedEvent) []models.SessionUniqueURLs
}

type uniqueURLAggregator struct{}

func NewUniqueURLAggregator() UniqueURLAggregator {
	return &uniqueURLAggregator{}
}

func (a *uniqueURLAggregator) Aggregate(tagged []*models.SessionTaggedEvent) []models.SessionUniqueURLs {
	urlsBySession := make(map[string]map[string]struct{})
	for _, event := range tagged {
		urls, exists := urlsBySession[event.SessionID]
		if !exists {
			urls = make(map[string]struct{})
			urlsBySession[event.SessionID] = urls
		}
		urls[requestURL(event.Event.Request)] = struct{}{}
	}

	rows := make([]models.SessionUniqueURLs, 0, len(urlsBySession))
	for sessionID, urls := range urlsBySession {
		rows = append(rows, models.SessionUniqueURLs{
			SessionID:     sessionID,
			NumUniqueHits: int64(len(urls)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].NumUniqueHits != rows[j].NumUniqueHits {
			return rows[i].NumUniqueHits > rows[j].NumUniqueHits
		}
		return rows[i].SessionID < rows[j].SessionID
	})

	return rows
}

// requestURL extracts the URL from a "METHOD URL PROTOCOL" request line. A
// request with fewer than two tokens yields the empty string, which then
// counts as one distinct URL like any other value.
func requestURL(request string) string {
	fields := strings.Fields(request)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
