// The agent is the client counterpart of the ingestion server: it plays the
// role of the browser app, enriching one click event per invocation and
// submitting it fire-and-forget style after reporting the destination.
package main

import (
	"context"
	"os"
	"strconv"

	"github.com/jaevor/go-nanoid"
	"github.com/rohithgowthamg4927/clickweb/internal/buttons"
	"github.com/rohithgowthamg4927/clickweb/internal/client"
	"github.com/rohithgowthamg4927/clickweb/internal/enrich"
	"github.com/rohithgowthamg4927/clickweb/internal/feedback"
	"github.com/rohithgowthamg4927/clickweb/internal/geocode"
	"go.uber.org/zap"
)

const sessionIDLength = 12

func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	newSessionID, _ := nanoid.Standard(sessionIDLength)
	sessionID := newSessionID()
	logger = logger.With(zap.String("session", sessionID))

	button := getEnv("BUTTON", "Google")
	serverURL := getEnv("SERVER_URL", "http://localhost:5000")
	userAgent := getEnv("USER_AGENT", "Mozilla/5.0 (X11; Linux x86_64)")
	platform := getEnv("PLATFORM", "Linux x86_64")

	// Navigation is not gated on logging: report the destination first.
	destination, err := buttons.Resolve(button)
	if err != nil {
		logger.Fatal("unknown button",
			zap.String("button", button),
			zap.Strings("known", buttons.Names()),
		)
	}

	logger.Info("opening destination",
		zap.String("button", button),
		zap.String("url", destination),
	)

	geocoder := geocode.NewClient(getEnv("GEOCODE_URL", geocode.DefaultBaseURL), logger)
	enricher := enrich.New(coordinatesFromEnv(), geocoder, userAgent, platform, logger)

	tracker := feedback.NewTracker()
	tracker.Begin(button)
	logger.Info("feedback", zap.String("status", string(feedback.Pending)))

	ctx := context.Background()
	ev := enricher.BuildEvent(ctx, button)

	ack, err := client.New(serverURL).LogClick(ctx, ev)
	if err != nil {
		tracker.Fail(button, err)
	} else {
		tracker.Succeed(button)
	}

	status := tracker.Status()
	logger.Info("feedback",
		zap.String("status", string(status.State)),
		zap.String("message", status.Message),
		zap.String("id", ev.ID),
		zap.String("ack", ack),
	)

	if status.State == feedback.Failed {
		os.Exit(1)
	}
}

// coordinatesFromEnv builds the coordinate source the way a browser would
// expose it: absent capability, denied permission, or a position.
func coordinatesFromEnv() enrich.CoordinatesProvider {
	switch getEnv("GEO", "granted") {
	case "unsupported":
		return enrich.NoProvider{}
	case "denied":
		return &enrich.StaticProvider{Denied: true}
	default:
		return &enrich.StaticProvider{
			Coordinates: enrich.Coordinates{
				Latitude:  parseFloat(getEnv("LATITUDE", "12.9716")),
				Longitude: parseFloat(getEnv("LONGITUDE", "77.5946")),
			},
		}
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}
