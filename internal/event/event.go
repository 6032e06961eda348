package event

import (
	"time"

	"github.com/google/uuid"
)

// DeviceInfo describes the environment a click originated from.
type DeviceInfo struct {
	DeviceType DeviceType `json:"deviceType"`
	Platform   string     `json:"platform"`
	Browser    string     `json:"browser"`
}

// Location is a best-effort resolved location. Fields hold either a resolved
// value or the Unknown sentinel, never an empty string.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Unknown is the sentinel substituted when a lookup cannot produce real data.
const Unknown = "Unknown"

// UnknownLocation returns a Location with both fields set to the sentinel.
func UnknownLocation() Location {
	return Location{City: Unknown, Country: Unknown}
}

// ClickEvent is the unit of persisted data: one user action, enriched with
// device and location metadata. Created once, transmitted once, never updated.
type ClickEvent struct {
	ID        string     `json:"id"`
	Button    string     `json:"button"`
	Timestamp string     `json:"timestamp"`
	PageURL   string     `json:"pageUrl"`
	Device    DeviceInfo `json:"device"`
	Location  Location   `json:"location"`
}

// NewID generates a client-side event identifier. Assigned before any
// network call so retransmissions of the same event share a key.
func NewID() string {
	return uuid.NewString()
}

// ist is the fixed offset applied to every event timestamp regardless of the
// host's local zone.
var ist = time.FixedZone("IST", 5*3600+30*60)

const timestampLayout = "2006-01-02T15:04:05"

// FormatTimestamp renders t in IST at second precision.
func FormatTimestamp(t time.Time) string {
	return t.In(ist).Format(timestampLayout)
}

// Now returns the current time formatted per FormatTimestamp.
func Now() string {
	return FormatTimestamp(time.Now())
}
