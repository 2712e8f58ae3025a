package models

import "time"

// LogEvent is one parsed line of an ELB access log. Field order follows the
// 15-field schema:
//
//	timestamp elb client:port backend:port request_processing_time
//	backend_processing_time response_processing_time elb_status_code
//	backend_status_code received_bytes sent_bytes "request" "user_agent"
//	ssl_cipher ssl_protocol
//
// The parser guarantees Timestamp is valid and ClientAddr carries a non-empty
// host part; lines violating that never become LogEvents. All other fields are
// parsed leniently (zero value on failure). Events are immutable once parsed.
type LogEvent struct {
	Timestamp              time.Time
	ELB                    string
	ClientAddr             string
	BackendAddr            string
	RequestProcessingTime  float64
	BackendProcessingTime  float64
	ResponseProcessingTime float64
	ELBStatusCode          int
	BackendStatusCode      int
	ReceivedBytes          int64
	SentBytes              int64
	Request                string
	UserAgent              string
	SSLCipher              string
	SSLProtocol            string
}
