package kafka

import (
	"context"
	"log/slog"

	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/cocoa-apparel/storefront/internal/core/port"
	"github.com/lovoo/goka"
)

var _ port.ActivityCounter = (*ActivityView)(nil)

// An ActivityView reads the tallied per-shopper counts from the
// processor's group table.
type ActivityView struct {
	gv *goka.View
}

func NewActivityView(
	seedBrokers []string, groupTable string,
) (*ActivityView, error) {
	const op = "NewActivityView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		activityTallyCodec{},
		withNonlogViewOpt(),
	)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &ActivityView{gv}, nil
}

func (v *ActivityView) Run(ctx context.Context) {
	const op = "ActivityView.Run"
	log := slog.With("op", op)

	if err := v.gv.Run(ctx); err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// Activity returns the tallied counts for one shopper. A shopper absent
// from the table has zero counts, not an error.
func (v *ActivityView) Activity(
	shopper string,
) (domain.ShopperActivity, error) {
	const op = "ActivityView.Activity"

	raw, err := v.gv.Get(shopper)
	if err != nil {
		return domain.ShopperActivity{}, opErr(err, op)
	}

	act := domain.ShopperActivity{Shopper: shopper}
	if raw == nil {
		return act, nil
	}

	tally, ok := raw.(activityTally)
	if !ok {
		return domain.ShopperActivity{}, opErr(ErrInvalidValueType, op)
	}

	act.Viewed = tally.Viewed
	act.Added = tally.Added
	return act, nil
}
