package models

// SessionHitCount is the number of hits one client produced inside one
// quarter-hour session.
type SessionHitCount struct {
	IP        string `json:"ip"`
	SessionID string `json:"sessionId"`
	TotalHits int64  `json:"totalHits"`
}

// IPSessionDuration summarizes all sessions of one client. TotalDurationSec
// is the sum of per-session spans in whole seconds (last hit minus first
// hit); AvgSessionTimeMin is that sum expressed in minutes divided by the
// session count.
type IPSessionDuration struct {
	IP                string  `json:"ip"`
	TotalSessions     int64   `json:"totalSessions"`
	TotalDurationSec  int64   `json:"totalDurationSec"`
	AvgSessionTimeMin float64 `json:"avgSessionTimeInMin"`
}

// SessionUniqueURLs is the count of distinct request URLs seen within one
// session.
type SessionUniqueURLs struct {
	SessionID     string `json:"sessionId"`
	NumUniqueHits int64  `json:"numUniqueHits"`
}

// UserEngagement is the time one user spent inside one session, in minutes.
// User is the client IP joined with a hash of the user agent, so the same
// address running two browsers counts as two users.
type UserEngagement struct {
	User        string  `json:"user"`
	SessionID   string  `json:"sessionId"`
	DurationMin float64 `json:"durationMin"`
}

// SessionReport is the complete analysis of one ingested batch: every hit
// sessionized into quarter-hour windows and reduced four ways. Each slice is
// sorted by its metric descending, ties broken by the grouping key ascending,
// so two reports over the same batch are byte-identical.
//
// Example JSON:
//
//	{
//	  "customerId": "cus-paypay",
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "totalEvents": 3,
//	  "skippedLines": 0,
//	  "sessionHits": [
//	    {"ip": "10.0.0.1", "sessionId": "20150722-06-0015-10-0-0-1", "totalHits": 2},
//	    {"ip": "10.0.0.2", "sessionId": "20150722-06-0015-10-0-0-2", "totalHits": 1}
//	  ],
//	  "avgSessionTimes": [
//	    {"ip": "10.0.0.1", "totalSessions": 1, "totalDurationSec": 300, "avgSessionTimeInMin": 5}
//	  ],
//	  "uniqueUrlCounts": [
//	    {"sessionId": "20150722-06-0015-10-0-0-1", "numUniqueHits": 2}
//	  ],
//	  "engagements": [
//	    {"user": "10.0.0.1_9b74c9897bac770ffc029102a200c5de", "sessionId": "20150722-06-0015-10-0-0-1", "durationMin": 5}
//	  ],
//	  "requestsByUserAgent": {"Chrome": 2, "Firefox": 1}
//	}
type SessionReport struct {
	CustomerID          string              `json:"customerId"`
	BatchID             string              `json:"batchId"`
	TotalEvents         int64               `json:"totalEvents"`
	SkippedLines        int64               `json:"skippedLines"`
	SessionHits         []SessionHitCount   `json:"sessionHits"`
	AvgSessionTimes     []IPSessionDuration `json:"avgSessionTimes"`
	UniqueURLCounts     []SessionUniqueURLs `json:"uniqueUrlCounts"`
	Engagements         []UserEngagement    `json:"engagements"`
	RequestsByUserAgent map[string]int64    `json:"requestsByUserAgent"`
}
