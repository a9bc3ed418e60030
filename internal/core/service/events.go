package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
)

var _ port.EventRecorder = (*Events)(nil)

// Events bridges storefront interactions to the shopper-activity stream.
type Events struct {
	producer port.ShopperEventsProducer
	counter  port.ActivityCounter
}

func NewEvents(
	producer port.ShopperEventsProducer, counter port.ActivityCounter,
) *Events {
	return &Events{producer, counter}
}

// RecordView emits a product-viewed event. Best-effort: failures are
// logged, never surfaced to the browsing flow.
func (s *Events) RecordView(
	ctx context.Context, shopper string, p domain.Product,
) {
	const op = "Events.RecordView"
	log := slog.With("op", op)

	evt := domain.ShopperEvent{
		Shopper:     shopper,
		Kind:        domain.EventProductViewed,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Price:       p.Price,
		At:          time.Now(),
	}

	if err := s.producer.ProduceEvents(ctx, []domain.ShopperEvent{evt}); err != nil {
		log.Warn("failed to produce event", "err", err)
	}
}

func (s *Events) ShopperActivity(
	shopper string,
) (domain.ShopperActivity, error) {
	const op = "Events.ShopperActivity"

	act, err := s.counter.Activity(shopper)
	if err != nil {
		return domain.ShopperActivity{}, fmt.Errorf("%s: %w", op, err)
	}
	return act, nil
}

// NopEventsProducer discards events. Wired when no seed brokers are
// configured so the storefront runs without the pipeline.
type NopEventsProducer struct{}

var _ port.ShopperEventsProducer = NopEventsProducer{}

func (NopEventsProducer) ProduceEvents(
	context.Context, []domain.ShopperEvent,
) error {
	return nil
}

// NopActivityCounter reports empty activity when the pipeline is off.
type NopActivityCounter struct{}

var _ port.ActivityCounter = NopActivityCounter{}

func (NopActivityCounter) Activity(
	shopper string,
) (domain.ShopperActivity, error) {
	return domain.ShopperActivity{Shopper: shopper}, nil
}
