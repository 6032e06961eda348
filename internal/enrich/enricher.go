// Package enrich assembles normalized click events from raw environment
// signals, a best-effort coordinate source and a reverse-geocoding lookup.
package enrich

import (
	"context"
	"time"

	"github.com/rohithgowthamg4927/clickweb/internal/buttons"
	"github.com/rohithgowthamg4927/clickweb/internal/event"
	"go.uber.org/zap"
)

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CoordinatesProvider models the platform's geolocation capability.
type CoordinatesProvider interface {
	// Supported reports whether the environment offers geolocation at all.
	Supported() bool
	// PermissionDenied reports whether the user has already denied access.
	PermissionDenied() bool
	// Current returns the current coordinates. May block on a permission
	// prompt; callers bound it with the context deadline.
	Current(ctx context.Context) (Coordinates, error)
}

// Geocoder resolves coordinates to a location, degrading to sentinels
// internally rather than failing.
type Geocoder interface {
	Reverse(ctx context.Context, latitude, longitude float64) event.Location
}

// CoordinatesTimeout bounds the coordinate request so a hung permission
// prompt cannot leave an event pending forever.
const CoordinatesTimeout = 5 * time.Second

// Enricher builds ClickEvents for user actions.
type Enricher struct {
	coords    CoordinatesProvider
	geocoder  Geocoder
	userAgent string
	platform  string
	logger    *zap.Logger
}

// New creates an Enricher reading environment signals from the given strings.
func New(coords CoordinatesProvider, geocoder Geocoder, userAgent, platform string, logger *zap.Logger) *Enricher {
	return &Enricher{
		coords:    coords,
		geocoder:  geocoder,
		userAgent: userAgent,
		platform:  platform,
		logger:    logger,
	}
}

// ResolveLocation resolves an approximate location, best effort, single
// attempt. Every exit path yields a concrete Location: capability absence,
// prior denial, coordinate failure and lookup failure all degrade to the
// Unknown sentinel pair.
func (e *Enricher) ResolveLocation(ctx context.Context) event.Location {
	if e.coords == nil || !e.coords.Supported() {
		e.logger.Debug("geolocation not supported")

		return event.UnknownLocation()
	}

	if e.coords.PermissionDenied() {
		e.logger.Debug("geolocation permission previously denied")

		return event.UnknownLocation()
	}

	ctx, cancel := context.WithTimeout(ctx, CoordinatesTimeout)
	defer cancel()

	pos, err := e.coords.Current(ctx)
	if err != nil {
		e.logger.Debug("coordinate request failed", zap.Error(err))

		return event.UnknownLocation()
	}

	return e.geocoder.Reverse(ctx, pos.Latitude, pos.Longitude)
}

// BuildEvent assembles a ClickEvent for the named button: fresh id, IST
// timestamp at call time, classified device, resolved location and the
// button's destination URL. Total; unknown buttons yield an empty PageURL
// and are caught by server-side validation.
func (e *Enricher) BuildEvent(ctx context.Context, button string) event.ClickEvent {
	pageURL, err := buttons.Resolve(button)
	if err != nil {
		e.logger.Warn("no destination for button", zap.String("button", button))
	}

	return event.ClickEvent{
		ID:        event.NewID(),
		Button:    button,
		Timestamp: event.Now(),
		PageURL:   pageURL,
		Device:    event.ClassifyDevice(e.userAgent, e.platform),
		Location:  e.ResolveLocation(ctx),
	}
}
