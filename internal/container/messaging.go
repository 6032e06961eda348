package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/rohithgowthamg4927/clickweb/internal/messaging"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// archiveConsumerGroup names the Redis stream consumer group for the click
// archive pipeline.
const archiveConsumerGroup = "click-archive"

// PublisherGroupPackage provides the stream publisher and the typed publish
// function the ingestion handler uses.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: client,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.ClickLoggedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ClickLoggedEvent](
			group.Publisher(), analytics.TopicClickLogged,
		), nil
	})
}

// ConsumerGroupPackage provides the archive consumer group.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		client := do.MustInvoke[*redis.Client](i)
		logger := do.MustInvoke[*zap.Logger](i)
		archive := do.MustInvoke[analytics.Store](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: archiveConsumerGroup,
		}, watermill.NopLogger{})
		if err != nil {
			return nil, err
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(analytics.NewClickLoggedConsumer(subscriber, archive, logger))

		return group, nil
	})
}
