// Package buttons holds the static button name -> destination URL mapping.
// Configuration data, not logic.
package buttons

import "errors"

var ErrUnknownButton = errors.New("unknown button")

var destinations = map[string]string{
	"Google":   "https://www.google.com",
	"YouTube":  "https://www.youtube.com",
	"Netflix":  "https://www.netflix.com",
	"AWS":      "https://aws.amazon.com",
	"GitHub":   "https://github.com",
	"LinkedIn": "https://www.linkedin.com",
	"Medium":   "https://medium.com",
}

// Resolve returns the destination URL for a logical button name.
func Resolve(name string) (string, error) {
	url, ok := destinations[name]
	if !ok {
		return "", ErrUnknownButton
	}

	return url, nil
}

// Names returns the known button names.
func Names() []string {
	names := make([]string, 0, len(destinations))
	for name := range destinations {
		names = append(names, name)
	}

	return names
}
