package container

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// ArchiveStorePackage provides the click archive store: Postgres when a DSN
// is configured, in-memory otherwise.
func ArchiveStorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if options.PostgresDSN == "" {
			logger.Warn("no postgres dsn configured, archiving clicks in memory")

			return analytics.NewMemoryStore(), nil
		}

		pool, err := pgxpool.New(context.Background(), options.PostgresDSN)
		if err != nil {
			return nil, err
		}

		return analytics.NewPostgresStore(pool), nil
	})
}
