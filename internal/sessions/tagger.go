package sessions

import (
	"strings"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=tagger.go -destination=./mocks/tagger_mock.go -package=mocks
type SessionTagger interface {
	Tag(events []*models.LogEvent) []*models.SessionTaggedEvent
}

type sessionTagger struct {
	assigner SessionAssigner
}

func NewSessionTagger(assigner SessionAssigner) SessionTagger {
	return &sessionTagger{
		assigner: assigner,
	}
}

// Tag decorates every event with its client IP and session identifier. The
// IP is the host part of the client address, everything before the first
// colon. Input order is preserved and the underlying events are shared.
func (t *sessionTagger) Tag(events []*models.LogEvent) []*models.SessionTaggedEvent {
	tagged := make([]*models.SessionTaggedEvent, 0, len(events))

	for _, event := range events {
		ip, _, _ := strings.Cut(event.ClientAddr, ":")

		tagged = append(tagged, &models.SessionTaggedEvent{
			Event:     event,
			IP:        ip,
			SessionID: t.assigner.Assign(event.Timestamp, ip),
		})
	}

	return tagged
}
