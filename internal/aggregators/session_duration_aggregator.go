package aggregators

import (
	"sort"
	"time"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=session_duration_aggregator.go -destination=./mocks/session_duration_aggregator_mock.go -package=mocks
type SessionDurationAggregator interface {
	// Aggregate computes, per client IP, how many sessions it produced and
	// how long they ran on average. A session's span is last hit minus
	// first hit in whole epoch seconds, so a single-hit session spans 0.
	Aggregate(tagged []*models.SessionTaggedEvent) []models.IPSessionDuration
}

type sessionDurationAggregator struct{}

func NewSessionDurationAggregator() SessionDurationAggregator {
	return &sessionDurationAggregator{}
}

type sessionSpan struct {
	ip    string
	first time.Time
	last  time.Time
}

func (a *sessionDurationAggregator) Aggregate(tagged []*models.SessionTaggedEvent) []models.IPSessionDuration {
	spans := make(map[string]*sessionSpan)
	for _, event := range tagged {
		span, exists := spans[event.SessionID]
		if !exists {
			spans[event.SessionID] = &sessionSpan{
				ip:    event.IP,
				first: event.Event.Timestamp,
				last:  event.Event.Timestamp,
			}
			continue
		}
		if event.Event.Timestamp.Before(span.first) {
			span.first = event.Event.Timestamp
		}
		if event.Event.Timestamp.After(span.last) {
			span.last = event.Event.Timestamp
		}
	}

	type ipTotals struct {
		sessions    int64
		durationSec int64
	}
	byIP := make(map[string]*ipTotals)
	for _, span := range spans {
		totals, exists := byIP[span.ip]
		if !exists {
			totals = &ipTotals{}
			byIP[span.ip] = totals
		}
		totals.sessions++
		// Truncated to whole seconds only here, after min/max tracking at
		// full precision.
		totals.durationSec += span.last.Unix() - span.first.Unix()
	}

	rows := make([]models.IPSessionDuration, 0, len(byIP))
	for ip, totals := range byIP {
		rows = append(rows, models.IPSessionDuration{
			IP:                ip,
			TotalSessions:     totals.sessions,
			TotalDurationSec:  totals.durationSec,
			AvgSessionTimeMin: float64(totals.durationSec) / 60 / float64(totals.sessions),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgSessionTimeMin != rows[j].AvgSessionTimeMin {
			return rows[i].AvgSessionTimeMin > rows[j].AvgSessionTimeMin
		}
		return rows[i].IP < rows[j].IP
	})

	return rows
}
