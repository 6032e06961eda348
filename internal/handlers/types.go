package handlers

// DeviceSubmission is the wire shape of the nested device block. Inner
// fields are never validated; presence of the block itself is.
type DeviceSubmission struct {
	DeviceType string `doc:"Coarse device classification" example:"Mobile"               json:"deviceType,omitempty"`
	Platform   string `doc:"Raw platform identifier"      example:"iPhone"               json:"platform,omitempty"`
	Browser    string `doc:"Raw user-agent string"        example:"Mozilla/5.0 (iPhone)" json:"browser,omitempty"`
}

// LocationSubmission is the wire shape of the nested location block.
type LocationSubmission struct {
	City    string `doc:"Resolved city or Unknown"    example:"Bengaluru" json:"city,omitempty"`
	Country string `doc:"Resolved country or Unknown" example:"India"     json:"country,omitempty"`
}

// ClickSubmission is the wire shape of a candidate click event. Every field
// is optional at the schema level; presence is enforced by the handler so a
// missing field yields the 400 contract rather than a schema error.
type ClickSubmission struct {
	ID        string              `doc:"Client-generated event id"              example:"8e4b8a6e-0f5c-4a3d-9d6b-0c5bb9f6f001" json:"id,omitempty"`
	Button    string              `doc:"Logical name of the clicked action"     example:"GitHub"                               json:"button,omitempty"`
	Timestamp string              `doc:"Client IST timestamp, second precision" example:"2026-09-01T18:04:05"                  json:"timestamp,omitempty"`
	PageURL   string              `doc:"Destination resolved from the button"   example:"https://github.com"                   json:"pageUrl,omitempty"`
	Device    *DeviceSubmission   `doc:"Device metadata"                        json:"device,omitempty"`
	Location  *LocationSubmission `doc:"Best-effort location"                   json:"location,omitempty"`
}

// LogClickRequest is the request for logging a click event.
type LogClickRequest struct {
	Body ClickSubmission
}

// LogClickResponse is the acknowledgement for a persisted click event.
type LogClickResponse struct {
	Body struct {
		Message string `doc:"Acknowledgement message" example:"Click logged successfully" json:"message"`
	}
}
