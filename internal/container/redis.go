package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/rohithgowthamg4927/clickweb/internal/store"
	"github.com/samber/do"
)

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// StorePackage provides the primary click store backed by Redis.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (store.ClickStore, error) {
		client := do.MustInvoke[*redis.Client](i)

		return store.NewRedisStore(client), nil
	})
}
