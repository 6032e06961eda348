package analytics

import "context"

// Store defines the interface for persisting archived click events.
type Store interface {
	SaveClickLogged(ctx context.Context, event *ClickLoggedEvent) error
}
