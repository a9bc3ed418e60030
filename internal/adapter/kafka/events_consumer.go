package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/cocoa-apparel/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

type ConsumerOpt func(*consumerOpts) error

func ConsumerClientOpt(
	seedBrokers []string, topic, group string, extra ...kgo.Opt,
) ConsumerOpt {
	return func(co *consumerOpts) error {
		clOpts := append([]kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.ConsumeTopics(topic),
			kgo.ConsumerGroup(group),
			kgo.DisableAutoCommit(),
		}, extra...)
		cl, err := kgo.NewClient(clOpts...)
		if err != nil {
			return err
		}
		co.cl = cl
		return nil
	}
}

func ConsumerDecoderOpt(decoder Decoder) ConsumerOpt {
	return func(co *consumerOpts) error {
		if decoder == nil {
			return errors.New("decoder is nil")
		}
		co.decoder = decoder
		return nil
	}
}

func ConsumerEventsSaverOpt(s port.ShopperEventsSaver) ConsumerOpt {
	return func(co *consumerOpts) error {
		if s == nil {
			return errors.New("events saver is nil")
		}
		co.saver = s
		return nil
	}
}

type consumerOpts struct {
	cl      ConsumerClient
	decoder Decoder
	saver   port.ShopperEventsSaver
}

// A ShopperEventsConsumer drains the activity stream into the events
// store. Offsets are committed only after a successful save.
type ShopperEventsConsumer struct {
	opPrefix string
	cl       ConsumerClient
	decoder  Decoder
	saver    port.ShopperEventsSaver
	errTimer *time.Timer
}

func NewShopperEventsConsumer(opts ...ConsumerOpt) ShopperEventsConsumer {
	const op = "NewShopperEventsConsumer"

	if len(opts) != 3 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options consumerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			panic(opErr(err, op)) // develop mistake
		}
	}

	return ShopperEventsConsumer{
		opPrefix: "ShopperEventsConsumer",
		cl:       options.cl,
		decoder:  options.decoder,
		saver:    options.saver,
		errTimer: time.NewTimer(0),
	}
}

func (c ShopperEventsConsumer) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(c.opPrefix, op))

	log.Info("closing consumer...")
	c.errTimer.Stop()
	c.cl.Close()
	log.Info("consumer is closed")
}

func (c ShopperEventsConsumer) Run(ctx context.Context) {
	const op = "Run"
	log := slog.With("op", makeOp(c.opPrefix, op))

	log.Info("running")

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				log.Error("failed to consume", "err", err)
				c.slowDown()
				continue
			}
			if err := c.commit(ctx); err != nil {
				log.Error("failed to commit offsets", "err", err)
			}
		}
	}
}

func (c ShopperEventsConsumer) consume(ctx context.Context) error {
	const op = "consume"

	fetches, err := c.pollFetches(ctx)
	if err != nil {
		return opErr(err, c.opPrefix, op)
	}

	if fetches.Empty() {
		return nil
	}

	evts := c.toEvents(fetches)
	if len(evts) == 0 {
		return nil
	}

	if err := c.saver.SaveEvents(ctx, evts); err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c ShopperEventsConsumer) commit(ctx context.Context) error {
	const op = "commit"

	if err := ctx.Err(); err != nil {
		return opErr(err, c.opPrefix, op)
	}

	if err := c.cl.CommitUncommittedOffsets(ctx); err != nil {
		return opErr(err, c.opPrefix, op)
	}
	return nil
}

func (c ShopperEventsConsumer) pollFetches(
	ctx context.Context,
) (kgo.Fetches, error) {
	const op = "pollFetches"

	fetches := c.cl.PollFetches(ctx)
	if err := fetches.Err0(); err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}

	if err := c.handleErrs(fetches); err != nil {
		return nil, opErr(err, c.opPrefix, op)
	}
	return fetches, nil
}

func (c ShopperEventsConsumer) handleErrs(fetches kgo.Fetches) error {
	var errsData []string
	fetches.EachError(func(t string, p int32, err error) {
		if err != nil {
			errsData = append(errsData, fmt.Sprintf(
				"topic %q partition %d: %q", t, p, err,
			))
		}
	})

	if len(errsData) != 0 {
		return errors.New(strings.Join(errsData, "; "))
	}
	return nil
}

func (c ShopperEventsConsumer) toEvents(
	fetches kgo.Fetches,
) (evts []domain.ShopperEvent) {
	const op = "toEvents"
	log := slog.With("op", makeOp(c.opPrefix, op))

	fetches.EachRecord(func(r *kgo.Record) {
		var s schema.ShopperEventV1
		if err := c.decoder.Decode(r.Value, &s); err != nil {
			log.Error("failed to decode value", "err", err)
			return
		}
		evts = append(evts, eventToDomain(s))
	})
	return evts
}

func (c ShopperEventsConsumer) slowDown() {
	const timeout = 1 * time.Second
	c.errTimer.Reset(timeout)
	<-c.errTimer.C
}
