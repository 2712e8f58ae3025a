package models

import "time"

// Bucket is one of the four fixed quarter-hour slices of an hour a hit can
// fall into. Buckets are closed on the right edge: a hit landing exactly on
// a boundary minute with zero seconds belongs to the earlier bucket.
type Bucket int

const (
	BucketQ1 Bucket = iota // minutes 00-15
	BucketQ2               // minutes 16-30
	BucketQ3               // minutes 31-45
	BucketQ4               // minutes 46-60
)

var bucketLabels = [...]string{"0015", "1630", "3145", "4660"}

// BucketOf maps a minute and second within an hour to its quarter-hour
// bucket. Boundary minutes 15, 30 and 45 belong to the earlier bucket when
// the second hand reads exactly zero and to the later bucket otherwise.
func BucketOf(minute, second int) Bucket {
	switch {
	case minute < 15, minute == 15 && second == 0:
		return BucketQ1
	case minute < 30, minute == 30 && second == 0:
		return BucketQ2
	case minute < 45, minute == 45 && second == 0:
		return BucketQ3
	default:
		return BucketQ4
	}
}

// BucketOfTime is BucketOf applied to the wall-clock minute and second of t
// in UTC.
func BucketOfTime(t time.Time) Bucket {
	utc := t.UTC()
	return BucketOf(utc.Minute(), utc.Second())
}

// Label returns the compact four-digit form used inside session identifiers,
// e.g. "0015" for the first quarter.
func (b Bucket) Label() string {
	return bucketLabels[b]
}

func (b Bucket) String() string {
	switch b {
	case BucketQ1:
		return "00-15"
	case BucketQ2:
		return "16-30"
	case BucketQ3:
		return "31-45"
	default:
		return "46-60"
	}
}
