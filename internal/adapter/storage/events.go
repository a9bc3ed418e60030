package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/cocoa-apparel/storefront/pkg/retry"
)

var _ port.ShopperEventsSaver = (*ShopperEventsRepository)(nil)

// A ShopperEventsRepository appends consumed activity events to the
// events table.
type ShopperEventsRepository struct {
	sqldb sqldb
}

func NewShopperEventsRepository(sqldb sqldb) ShopperEventsRepository {
	return ShopperEventsRepository{sqldb}
}

func (r ShopperEventsRepository) SaveEvents(
	ctx context.Context, evts []domain.ShopperEvent,
) error {
	const op = "ShopperEventsRepository.SaveEvents"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO shopper_events (
			shopper, kind, product_id, product_name, category, price, at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LineareBackoff(50 * time.Millisecond),
	}

	for _, evt := range evts {
		err := retry.Do(ctx, retryCfg, func() error {
			_, err := r.sqldb.ExecContext(ctx, query,
				evt.Shopper, string(evt.Kind), evt.ProductID,
				evt.ProductName, evt.Category, evt.Price, evt.At,
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
