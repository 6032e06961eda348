package enrich

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when coordinates are requested from an
// environment without geolocation.
var ErrUnsupported = errors.New("geolocation not supported")

// StaticProvider serves a fixed coordinate pair, standing in for a platform
// geolocation API in the agent and in tests.
type StaticProvider struct {
	Coordinates Coordinates
	Denied      bool
}

func (p *StaticProvider) Supported() bool { return true }

func (p *StaticProvider) PermissionDenied() bool { return p.Denied }

func (p *StaticProvider) Current(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	return p.Coordinates, nil
}

// NoProvider reports geolocation as unavailable.
type NoProvider struct{}

func (NoProvider) Supported() bool { return false }

func (NoProvider) PermissionDenied() bool { return false }

func (NoProvider) Current(context.Context) (Coordinates, error) {
	return Coordinates{}, ErrUnsupported
}
