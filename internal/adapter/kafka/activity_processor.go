package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/pkg/schema"
	"github.com/lovoo/goka"
)

// A shopperEventCodec used for serde [schema.ShopperEventV1]
type shopperEventCodec struct {
	serde Serde
}

func newShopperEventCodec(s Serde) shopperEventCodec {
	return shopperEventCodec{s}
}

func (c shopperEventCodec) Encode(v any) ([]byte, error) {
	const op = "shopperEventCodec.Encode"
	if _, ok := v.(schema.ShopperEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c shopperEventCodec) Decode(data []byte) (any, error) {
	const op = "shopperEventCodec.Decode"
	var s schema.ShopperEventV1
	if err := c.serde.Decode(data, &s); err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// An activityTally is the per-shopper group table value.
type activityTally struct {
	Viewed int64 `json:"viewed"`
	Added  int64 `json:"added"`
}

type activityTallyCodec struct{}

func (activityTallyCodec) Encode(v any) ([]byte, error) {
	const op = "activityTallyCodec.Encode"
	tv, ok := v.(activityTally)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return json.Marshal(tv)
}

func (activityTallyCodec) Decode(data []byte) (any, error) {
	const op = "activityTallyCodec.Decode"
	var tv activityTally
	if err := json.Unmarshal(data, &tv); err != nil {
		return nil, opErr(err, op)
	}
	return tv, nil
}

// An ActivityProcessor tallies shopper events from the activity stream
// into a per-shopper group table.
type ActivityProcessor struct {
	opPrefix string
	gp       *goka.Processor
}

func NewActivityProcessor(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	eventSerde Serde,
) (*ActivityProcessor, error) {
	const op = "NewActivityProcessor"

	var p ActivityProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newShopperEventCodec(eventSerde),
			p.processFn,
		),
		goka.Persist(activityTallyCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "ActivityProcessor"
	p.gp = gp
	return &p, nil
}

func (p *ActivityProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "Run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *ActivityProcessor) Close() {
	const op = "Close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p *ActivityProcessor) runProc(
	ctx context.Context, stopFn context.CancelFunc,
) {
	const op = "runProc"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	if err := p.gp.Run(ctx); err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *ActivityProcessor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("fall down while preparing", "err", err)
	}
}

func (p *ActivityProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.ShopperEventV1)

	var tally activityTally
	if v := ctx.Value(); v != nil {
		tally, _ = v.(activityTally)
	}

	switch domain.EventKind(event.Kind) {
	case domain.EventProductViewed:
		tally.Viewed++
	case domain.EventAddedToCart:
		tally.Added++
	default:
		log.Warn("unknown event kind", "kind", event.Kind)
		return
	}

	ctx.SetValue(tally)
	log.Info(
		"tallied event",
		"shopper", event.Shopper,
		"kind", event.Kind,
	)
}
