package event

import "strings"

// DeviceType is a coarse classification of the originating device.
type DeviceType string

const (
	Desktop DeviceType = "Desktop"
	Mobile  DeviceType = "Mobile"
	Tablet  DeviceType = "Tablet"
)

// classificationRule maps a user-agent substring to a device type.
type classificationRule struct {
	marker string
	device DeviceType
}

// classificationRules is evaluated in order, first match wins. Mobile markers
// precede tablet markers: an agent string carrying both (some Android tablets
// advertise "Mobi") classifies as Mobile.
var classificationRules = []classificationRule{
	{marker: "mobi", device: Mobile},
	{marker: "android", device: Mobile},
	{marker: "iphone", device: Mobile},
	{marker: "ipad", device: Tablet},
	{marker: "tablet", device: Tablet},
}

// ClassifyDevice derives a DeviceInfo from raw environment strings. Pure and
// total: unmatched agents classify as Desktop, the raw inputs are carried
// through untouched.
func ClassifyDevice(userAgent, platform string) DeviceInfo {
	info := DeviceInfo{
		DeviceType: Desktop,
		Platform:   platform,
		Browser:    userAgent,
	}

	agent := strings.ToLower(userAgent)
	for _, rule := range classificationRules {
		if strings.Contains(agent, rule.marker) {
			info.DeviceType = rule.device

			break
		}
	}

	return info
}
