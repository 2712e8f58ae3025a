package sessions

import (
	"strings"
	"time"

	"weblog-analytics/internal/models"
)

//go:generate mockgen -source=assigner.go -destination=./mocks/assigner_mock.go -package=mocks
type SessionAssigner interface {
	Assign(ts time.Time, ip string) string
}

type quarterHourAssigner struct{}

func NewQuarterHourAssigner() SessionAssigner {
	return &quarterHourAssigner{}
}

// Assign builds the session identifier for a hit: the UTC date and hour, the
// quarter-hour bucket label, and the client IP with dots replaced by dashes,
// joined with dashes. Two hits share a session exactly when all three parts
// match, so the identifier doubles as the grouping key.
func (a *quarterHourAssigner) Assign(ts time.Time, ip string) string {
	utc := ts.UTC()

	var b strings.Builder
	b.Grow(len("20060102-15-0015-") + len(ip))
	b.WriteString(utc.Format("20060102-15"))
	b.WriteByte('-')
	b.WriteString(models.BucketOfTime(utc).Label())
	b.WriteByte('-')
	b.WriteString(strings.ReplaceAll(ip, ".", "-"))

	return b.String()
}
