package aggregators

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=engagement_aggregator.go -destination=./mocks/engagement_aggregator_mock.go -package=mocks
type EngagementAggregator interface {
	// Aggregate measures how long each user stayed inside each session.
	// A user is the client IP joined with a hash of the raw user agent, so
	// two browsers behind one address count as two users.
	Aggregate(tagged []*models.SessionTaggedEvent) []models.UserEngagement
}

type engagementAggregator struct{}

func NewEngagementAggregator() EngagementAggregator {
	return &engagementAggregator{}
}

func (a *engagementAggregator) Aggregate(tagged []*models.SessionTaggedEvent) []models.UserEngagement {
	type engagementKey struct {
		user      string
		sessionID string
	}
	type engagementSpan struct {
		first time.Time
		last  time.Time
	}

	spans := make(map[engagementKey]*engagementSpan)
	for _, event := range tagged {
		key := engagementKey{
			user:      userIdentity(event.IP, event.Event.UserAgent),
			sessionID: event.SessionID,
		}
		span, exists := spans[key]
		if !exists {
			spans[key] = &engagementSpan{first: event.Event.Timestamp, last: event.Event.Timestamp}
			continue
		}
		if event.Event.Timestamp.Before(span.first) {
			span.first = event.Event.Timestamp
		}
		if event.Event.Timestamp.After(span.last) {
			span.last = event.Event.Timestamp
		}
	}

	rows := make([]models.UserEngagement, 0, len(spans))
	for key, span := range spans {
		rows = append(rows, models.UserEngagement{
			User:        key.user,
			SessionID:   key.sessionID,
			DurationMin: float64(span.last.Unix()-span.first.Unix()) / 60,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DurationMin != rows[j].DurationMin {
			return rows[i].DurationMin > rows[j].DurationMin
		}
		if rows[i].User != rows[j].User {
			return rows[i].User < rows[j].User
		}
		return rows[i].SessionID < rows[j].SessionID
	})

	return rows
}

// userIdentity derives the user key from the client IP and the raw user
// agent string. Hashing keeps the key bounded regardless of user agent
// length while remaining stable across runs.
func userIdentity(ip string, userAgent string) string {
	sum := sha256.Sum256([]byte(userAgent))
	return ip + "_" + hex.EncodeToString(sum[:])
}
