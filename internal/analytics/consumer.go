package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rohithgowthamg4927/clickweb/internal/messaging"
	"go.uber.org/zap"
)

// NewClickLoggedConsumer creates a consumer that persists click.logged
// events into the archive store.
func NewClickLoggedConsumer(
	subscriber message.Subscriber,
	store Store,
	logger *zap.Logger,
) *messaging.Consumer[ClickLoggedEvent] {
	handler := func(ctx context.Context, event *ClickLoggedEvent) error {
		return store.SaveClickLogged(ctx, event)
	}

	return messaging.NewConsumer(subscriber, TopicClickLogged, handler, logger)
}
