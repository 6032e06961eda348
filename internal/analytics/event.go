package analytics

import "time"

// TopicClickLogged is the stream topic for successfully ingested clicks.
const TopicClickLogged = "click.logged"

// ClickLoggedEvent is the archival record emitted after a click is persisted.
// It carries the flattened event plus the server-side ingestion time.
type ClickLoggedEvent struct {
	ID         string    `json:"id"`
	Button     string    `json:"button"`
	Timestamp  string    `json:"timestamp"`
	PageURL    string    `json:"pageUrl"`
	DeviceType string    `json:"deviceType"`
	Platform   string    `json:"platform"`
	Browser    string    `json:"browser"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	LoggedAt   time.Time `json:"loggedAt"`
}
