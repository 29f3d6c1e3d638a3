package models

import (
	"time"

	"github.com/google/uuid"
)

// stamp is the single normalization step applied to every record before a
// store write: a missing identifier gets a random UUID, a missing timestamp
// gets the current UTC time in ISO-8601.
func stamp(id, timestamp *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if *timestamp == "" {
		*timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
}

// timestampLayouts covers the RFC 3339 form written by this service and the
// zone-less ISO-8601 form written by earlier deployments.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp converts a stored timestamp into a time.Time. Empty or
// unparseable values collapse to the zero time, so they sort to the tail of
// a newest-first feed.
func ParseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}
