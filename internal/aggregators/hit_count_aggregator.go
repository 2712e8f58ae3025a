package aggregators

import (
	"sort"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=hit_count_aggregator.go -destination=./mocks/hit_count_aggregator_mock.go -package=mocks
type HitCountAggregator interface {
	// Aggregate counts hits per (ip, session). Every input event lands in
	// exactly one row, so the TotalHits column sums to len(tagged).
	Aggregate(tagged []*models.SessionTaggedEvent) []models.SessionHitCount
}

type hitCountAggregator struct{}

func NewHitCountAggregator() HitCountAggregator {
	return &hitCountAggregator{}
}

func (a *hitCountAggregator) Aggregate(tagged []*models.SessionTaggedEvent) []models.SessionHitCount {
	type sessionKey struct {
		ip        string
		sessionID string
	}

	counts := make(map[sessionKey]int64)
	for _, event := range tagged {
		counts[sessionKey{ip: event.IP, sessionID: event.SessionID}]++
	}

	rows := make([]models.SessionHitCount, 0, len(counts))
	for key, hits := range counts {
		rows = append(rows, models.SessionHitCount{
			IP:        key.ip,
			SessionID: key.sessionID,
			TotalHits: hits,
		})
	}

	// Busiest sessions first; ties ordered by grouping key so the same
	// input always renders the same table.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalHits != rows[j].TotalHits {
			return rows[i].TotalHits > rows[j].TotalHits
		}
		if rows[i].IP != rows[j].IP {
			return rows[i].IP < rows[j].IP
		}
		return rows[i].SessionID < rows[j].SessionID
	})

	return rows
}
