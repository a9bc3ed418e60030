package kafka

import (
	"context"
	"log/slog"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ShopperEventsProducer = (*ShopperEventsProducer)(nil)

// A ShopperEventsProducer publishes [domain.ShopperEvent] values to the
// activity stream, keyed by shopper so one shopper's events stay ordered
// within a partition.
type ShopperEventsProducer struct {
	opPrefix string
	cl       ProducerClient
	encoder  Encoder
}

func NewShopperEventsProducer(
	opts ...ProducerOpt,
) (ShopperEventsProducer, error) {
	const op = "NewShopperEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ShopperEventsProducer{}, opErr(err, op)
		}
	}

	return ShopperEventsProducer{
		opPrefix: "ShopperEventsProducer",
		cl:       options.cl,
		encoder:  options.encoder,
	}, nil
}

func (p ShopperEventsProducer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ShopperEventsProducer) ProduceEvents(
	ctx context.Context, evts []domain.ShopperEvent,
) error {
	const op = "ProduceEvents"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	rs, err := p.createRecords(evts)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p ShopperEventsProducer) createRecords(
	evts []domain.ShopperEvent,
) (rs []*kgo.Record, err error) {
	const op = "createRecords"

	for _, evt := range evts {
		s := eventToSchemaV1(evt)
		b, err := p.encoder.Encode(s)
		if err != nil {
			return nil, opErr(err, p.opPrefix, op)
		}
		r := &kgo.Record{Key: []byte(s.Shopper), Value: b}
		rs = append(rs, r)
	}
	return rs, nil
}
