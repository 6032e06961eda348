package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a PostgreSQL implementation of Store. The archive mirrors
// the primary store's last-write-wins semantics: a replayed id replaces the
// prior row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed archive store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) SaveClickLogged(ctx context.Context, event *ClickLoggedEvent) error {
	query := `
		INSERT INTO click_events (id, button, ts, page_url, device_type, platform, browser, city, country, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			button = EXCLUDED.button,
			ts = EXCLUDED.ts,
			page_url = EXCLUDED.page_url,
			device_type = EXCLUDED.device_type,
			platform = EXCLUDED.platform,
			browser = EXCLUDED.browser,
			city = EXCLUDED.city,
			country = EXCLUDED.country,
			logged_at = EXCLUDED.logged_at
	`

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.Button,
		event.Timestamp,
		event.PageURL,
		event.DeviceType,
		event.Platform,
		event.Browser,
		event.City,
		event.Country,
		event.LoggedAt,
	)

	return err
}

// Compile-time check.
var _ Store = (*PostgresStore)(nil)
