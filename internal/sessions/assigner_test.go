package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuarterHourAssigner_Assign(t *testing.T) {
	t.Parallel()

	assigner := NewQuarterHourAssigner()

	tests := []struct {
		name     string
		ts       time.Time
		ip       string
		expected string
	}{
		{
			name:     "first quarter",
			ts:       time.Date(2015, 7, 22, 6, 0, 1, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-06-0015-10-0-0-1",
		},
		{
			name:     "boundary minute at zero seconds stays in earlier quarter",
			ts:       time.Date(2015, 7, 22, 6, 15, 0, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-06-0015-10-0-0-1",
		},
		{
			name:     "one second past the boundary moves to next quarter",
			ts:       time.Date(2015, 7, 22, 6, 15, 1, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-06-1630-10-0-0-1",
		},
		{
			name:     "third quarter",
			ts:       time.Date(2015, 7, 22, 6, 31, 0, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-06-3145-10-0-0-1",
		},
		{
			name:     "fourth quarter at end of hour",
			ts:       time.Date(2015, 7, 22, 6, 59, 59, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-06-4660-10-0-0-1",
		},
		{
			name:     "same quarter different hour is a different session",
			ts:       time.Date(2015, 7, 22, 7, 0, 1, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150722-07-0015-10-0-0-1",
		},
		{
			name:     "midnight rollover changes the date part",
			ts:       time.Date(2015, 7, 23, 0, 0, 0, 0, time.UTC),
			ip:       "10.0.0.1",
			expected: "20150723-00-0015-10-0-0-1",
		},
		{
			name:     "dots in the ip become dashes",
			ts:       time.Date(2015, 7, 22, 6, 0, 1, 0, time.UTC),
			ip:       "123.242.248.130",
			expected: "20150722-06-0015-123-242-248-130",
		},
		{
			name:     "non-utc timestamp is assigned by its utc wall clock",
			ts:       time.Date(2015, 7, 22, 11, 30, 1, 0, time.FixedZone("IST", 5*3600+30*60)),
			ip:       "10.0.0.1",
			expected: "20150722-06-0015-10-0-0-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, assigner.Assign(tt.ts, tt.ip))
		})
	}
}

func TestQuarterHourAssigner_Assign_Deterministic(t *testing.T) {
	t.Parallel()

	assigner := NewQuarterHourAssigner()
	ts := time.Date(2015, 7, 22, 6, 4, 30, 0, time.UTC)

	first := assigner.Assign(ts, "10.0.0.1")
	second := assigner.Assign(ts, "10.0.0.1")

	assert.Equal(t, first, second)
}
