package models

// SessionTaggedEvent pairs a parsed log event with the session it was
// assigned to. IP is the client host with the port stripped; SessionID is the
// fully formatted identifier combining date, hour, quarter-hour bucket and
// the dash-encoded IP, e.g. "20150722-06-0015-10-0-0-1".
//
// Tagging is a pure decoration step: the underlying event is shared, not
// copied, so tagged events must be treated as read-only.
type SessionTaggedEvent struct {
	Event     *LogEvent
	IP        string
	SessionID string
}
